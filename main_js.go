package main

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"syscall/js"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/seqsense/pcgol/mat"
	webgl "github.com/seqsense/webgl-go"

	"github.com/seqsense/phonemockup/blob"
	"github.com/seqsense/phonemockup/capture"
	"github.com/seqsense/phonemockup/config"
	"github.com/seqsense/phonemockup/embed"
	"github.com/seqsense/phonemockup/mockup"
	"github.com/seqsense/phonemockup/rig"
)

// initialConfig loads the YAML file given by the config query parameter.
func initialConfig() (*config.Config, error) {
	search := js.Global().Get("location").Get("search").String()
	q, err := url.ParseQuery(strings.TrimPrefix(search, "?"))
	if err != nil {
		return nil, err
	}
	path := q.Get("config")
	if path == "" {
		return config.Default(), nil
	}
	b, err := fetchBytes(path)
	if err != nil {
		return nil, err
	}
	return config.Parse(b)
}

func main() {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "mockupCanvas")

	log.SetFlags(0)
	log.SetOutput(newLogWriter(doc.Call("getElementById", "log")))

	c, err := initialConfig()
	if err != nil {
		log.Printf("failed to load config: %v", err)
		c = config.Default()
	}
	cmd, err := newCommandContext(c)
	if err != nil {
		log.Print(err)
		return
	}
	con := &console{cmd: cmd}
	session := cmd.Session()

	phone, err := mockup.NewPhone(mockup.DefaultDimensions, pointStep)
	if err != nil {
		log.Print(err)
		return
	}
	corners, err := phone.Corners()
	if err != nil {
		log.Print(err)
		return
	}
	r, err := newRenderer(canvas, phone)
	if err != nil {
		log.Print(err)
		return
	}
	rec := newVideoRecorder(canvas, doc.Call("getElementById", "recBadge"))
	canvas.Set("tabIndex", 0)

	pixelRatio := func() float64 {
		if v := js.Global().Get("devicePixelRatio"); v.Truthy() {
			return v.Float()
		}
		return 1
	}

	var (
		frame       rig.Frame
		view        mat.Mat4
		mvp         mat.Mat4
		px, py      float32
		hover       bool
		texture     string
		contextLost bool
		lastErr     string
	)

	// syncScene uploads the material when it has changed and loads a new
	// screen image.
	var scene string
	syncScene := func(c *config.Config) error {
		key := fmt.Sprint(c.LightingPreset, c.BackgroundType, c.BackgroundGradientStart,
			c.BackgroundGradientEnd, c.BackgroundGradientAngle)
		if cmd.Model().TakeDirty() || key != scene {
			if err := r.applyMaterial(c, cmd.Model()); err != nil {
				return err
			}
			scene = key
		}
		if c.TextureURL == texture {
			return nil
		}
		texture = c.TextureURL
		if texture == "" {
			r.clearTexture()
			return nil
		}
		img, err := loadImage(texture)
		if err != nil {
			r.clearTexture()
			return err
		}
		r.setTexture(img)
		return nil
	}

	cg := &clickGuard{}
	wn := &wheelNormalizer{}
	g := newGesture()
	g.onDragStart = func(x, y int) bool {
		cg.DragStart(x, y)
		if !hitPhone(corners, mvp, r.cssWidth, r.cssHeight, x, y) {
			return false
		}
		return session.PointerDown(float32(x), float32(y))
	}
	g.onDrag = func(x, y int) {
		session.PointerMove(float32(x), float32(y))
	}
	g.onDragEnd = func() {
		session.PointerUp()
		cg.DragEnd(time.Now())
	}
	g.onPinchStart = session.BeginOrbit
	g.onPinch = session.Zoom
	g.onPinchEnd = session.EndOrbit
	g.onTap = func(x, y int) {
		if cg.DoubleTap(time.Now()) {
			cmd.ResetOrientation()
			log.Print("orientation reset")
		}
	}

	updateCursor := func() {
		setCursor(canvas, cursorFor(cmd.Config().UserInteraction, session.Dragging(), hover))
	}

	handlers := map[string]apiHandler{
		"mockupSetConfig": func(args []js.Value) (interface{}, error) {
			b, err := argBytes(args, 0)
			if err != nil {
				return nil, err
			}
			next := cmd.Config()
			if err := yaml.Unmarshal(b, next); err != nil {
				return nil, fmt.Errorf("%w: %v", errInvalidCommand, err)
			}
			return nil, cmd.SetConfig(next)
		},
		"mockupGetConfig": func(args []js.Value) (interface{}, error) {
			b, err := cmd.Config().Marshal()
			if err != nil {
				return nil, err
			}
			return string(b), nil
		},
		"mockupCommand": func(args []js.Value) (interface{}, error) {
			return con.Run(argString(args, 0))
		},
		"mockupResetOrientation": func(args []js.Value) (interface{}, error) {
			cmd.ResetOrientation()
			return nil, nil
		},
		"mockupCaptureDefault": func(args []js.Value) (interface{}, error) {
			p, cam, err := cmd.CaptureDefault()
			if err != nil {
				return nil, err
			}
			log.Print("default orientation captured")
			return poseJS(p, cam), nil
		},
		"mockupScreenshot": func(args []js.Value) (interface{}, error) {
			f, err := capture.ParseFormat(argString(args, 0))
			if err != nil {
				return nil, err
			}
			setCursor(canvas, cursorProgress)
			defer updateCursor()
			return r.screenshot(cmd.Config(), frame, view, f, argInt(args, 1), time.Now())
		},
		"mockupRecordVideo": func(args []js.Value) (interface{}, error) {
			d := time.Duration(argInt(args, 0)) * time.Millisecond
			return nil, rec.start(time.Now(), d)
		},
		"mockupEmbedCode": func(args []js.Value) (interface{}, error) {
			c := cmd.Config()
			if strings.HasPrefix(c.TextureURL, "blob:") {
				if b, err := fetchBytes(c.TextureURL); err == nil {
					c.TextureURL = embed.DataURL(b)
				} else {
					log.Printf("screen image is not embedded: %v", err)
				}
			}
			s, err := embed.String(c, embed.Options{BaseURL: argString(args, 0)})
			if err != nil {
				return nil, err
			}
			if cb := js.Global().Get("navigator").Get("clipboard"); cb.Truthy() {
				cb.Call("writeText", s)
			}
			return s, nil
		},
		"mockupSetTexture": func(args []js.Value) (interface{}, error) {
			u := argString(args, 0)
			if len(args) > 0 && args[0].Type() == js.TypeObject {
				b, err := blob.JS(args[0])
				if err != nil {
					return nil, err
				}
				u = b.URL()
			}
			if u != "" {
				img, err := loadImage(u)
				if err != nil {
					return nil, err
				}
				r.setTexture(img)
			} else {
				r.clearTexture()
			}
			texture = u
			return nil, cmd.Update(func(c *config.Config) error {
				c.TextureURL = u
				return nil
			})
		},
	}
	chRequest := make(chan request)
	installAPI(chRequest, handlers)

	chFrame := make(chan float64, 1)
	var onFrame js.Func
	onFrame = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		select {
		case chFrame <- args[0].Float():
		default:
		}
		js.Global().Call("requestAnimationFrame", onFrame)
		return nil
	})
	js.Global().Call("requestAnimationFrame", onFrame)

	chPointerDown := make(chan webgl.PointerEvent)
	gl := r.gl
	gl.Canvas.OnPointerDown(func(e webgl.PointerEvent) {
		e.PreventDefault()
		chPointerDown <- e
	})
	chPointerMove := make(chan webgl.PointerEvent)
	gl.Canvas.OnPointerMove(func(e webgl.PointerEvent) {
		e.PreventDefault()
		chPointerMove <- e
	})
	chPointerUp := make(chan webgl.PointerEvent)
	gl.Canvas.OnPointerUp(func(e webgl.PointerEvent) {
		e.PreventDefault()
		chPointerUp <- e
	})
	chPointerOut := make(chan webgl.PointerEvent)
	gl.Canvas.OnPointerOut(func(e webgl.PointerEvent) {
		chPointerOut <- e
	})
	chWheel := make(chan webgl.WheelEvent)
	gl.Canvas.OnWheel(func(e webgl.WheelEvent) {
		e.PreventDefault()
		chWheel <- e
	})
	gl.Canvas.OnContextMenu(func(e webgl.MouseEvent) {
		e.PreventDefault()
	})
	chKey := make(chan webgl.KeyboardEvent)
	gl.Canvas.OnKeyDown(func(e webgl.KeyboardEvent) {
		chKey <- e
	})
	chContextLost := make(chan struct{})
	gl.Canvas.OnWebGLContextLost(func(e webgl.WebGLContextEvent) {
		e.PreventDefault()
		chContextLost <- struct{}{}
	})
	chContextRestored := make(chan struct{})
	gl.Canvas.OnWebGLContextRestored(func(e webgl.WebGLContextEvent) {
		chContextRestored <- struct{}{}
	})

	var t0 float64 = -1
	for {
		select {
		case ts := <-chFrame:
			if t0 < 0 {
				t0 = ts
			}
			now := time.Now()
			rec.update(now)
			if contextLost {
				break
			}

			c := cmd.Config()
			if aspect, err := config.ParseAspectRatio(c.AspectRatio); err == nil {
				r.resize(aspect, pixelRatio())
			}
			err := syncScene(c)
			if err == nil {
				frame = session.Frame((ts-t0)/1000, px, py)
				cmd.Model().SetTransform(frame.Model)
				view = session.ViewMatrix()
				mvp = r.mvp(frame, view)
				err = r.draw(c, frame, view)
			}
			if err != nil {
				if msg := err.Error(); msg != lastErr {
					log.Print(err)
					lastErr = msg
				}
			} else {
				lastErr = ""
			}
		case req := <-chRequest:
			handleRequest(handlers, req)
		case e := <-chPointerDown:
			p := pointerOf(e)
			g.pointerDown(p)
			if g.Grabbed() {
				capturePointer(canvas, p.id)
			}
			updateCursor()
			canvas.Call("focus")
		case e := <-chPointerMove:
			p := pointerOf(e)
			px, py = normalizedPointer(p.x, p.y, r.cssWidth, r.cssHeight)
			hover = hitPhone(corners, mvp, r.cssWidth, r.cssHeight, p.x, p.y)
			if g.Active() {
				cg.Move(p.x, p.y)
			}
			g.pointerMove(p)
			updateCursor()
		case e := <-chPointerUp:
			p := pointerOf(e)
			g.pointerUp(p)
			releasePointer(canvas, p.id)
			updateCursor()
		case e := <-chPointerOut:
			hover = false
			releasePointer(canvas, e.PointerId)
			if g.cancel() == gestureDrag {
				session.PointerLeave()
				cg.DragEnd(time.Now())
			}
			updateCursor()
		case e := <-chWheel:
			if n, _ := wn.Normalize(e.DeltaY, time.Now()); n != 0 {
				session.BeginOrbit()
				session.Zoom(zoomScale(n))
				session.EndOrbit()
			}
		case e := <-chKey:
			switch e.Code {
			case "KeyR":
				cmd.ResetOrientation()
			case "KeyC":
				if _, _, err := cmd.CaptureDefault(); err != nil {
					log.Print(err)
				}
			case "KeyU":
				if !cmd.Undo() {
					log.Print(errNothingToUndo)
				}
			}
		case <-chContextLost:
			log.Print(errContextLostEvent)
			contextLost = true
		case <-chContextRestored:
			if err := r.init(); err != nil {
				log.Print(err)
				break
			}
			texture, scene = "", ""
			contextLost = false
			log.Print("WebGL context restored")
		}
	}
}
