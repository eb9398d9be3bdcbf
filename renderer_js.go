package main

import (
	"fmt"
	"syscall/js"

	"github.com/seqsense/pcgol/mat"
	webgl "github.com/seqsense/webgl-go"

	"github.com/seqsense/phonemockup/config"
	"github.com/seqsense/phonemockup/mockup"
	"github.com/seqsense/phonemockup/rig"
)

const (
	aVertexPosition = 0
	aVertexLabel    = 1
	aVertexNormal   = 2
)

// renderer draws the phone point cloud over the background.
type renderer struct {
	gl     *webgl.WebGL
	canvas js.Value
	phone  *mockup.Phone

	program   webgl.Program
	programBg webgl.Program

	uModel, uView, uProjection    webgl.Location
	uPointSizeBase, uScreenSize   webgl.Location
	uBodyColor, uBodyMaterial     webgl.Location
	uScreenColor, uScreenMaterial webgl.Location
	uHasTexture, uScreenTexture   webgl.Location
	uLightDirection, uLightColor  webgl.Location
	uAmbient, uCameraPosition     webgl.Location
	uStartColor, uEndColor        webgl.Location
	uDirection                    webgl.Location

	posBuf, normalBuf, bgBuf webgl.Buffer
	texture                  webgl.Texture
	hasTexture               bool

	// CSS size and drawing buffer size of the canvas.
	cssWidth, cssHeight int
	width, height       int
	pixelRatio          float64

	projection mat.Mat4
}

func newRenderer(canvas js.Value, phone *mockup.Phone) (*renderer, error) {
	gl, err := webgl.New(canvas)
	if err != nil {
		return nil, err
	}
	showDebugInfo(gl)

	r := &renderer{
		gl:     gl,
		canvas: canvas,
		phone:  phone,
	}
	if err := r.init(); err != nil {
		return nil, err
	}
	return r, nil
}

// init creates the GPU resources. It is called again after the context is
// restored.
func (r *renderer) init() error {
	gl := r.gl

	program, err := initProgram(gl, vsSource, fsSource)
	if err != nil {
		return err
	}
	programBg, err := initProgram(gl, vsBackgroundSource, fsBackgroundSource)
	if err != nil {
		return err
	}
	r.program, r.programBg = program, programBg

	r.uModel = gl.GetUniformLocation(program, "uModelMatrix")
	r.uView = gl.GetUniformLocation(program, "uViewMatrix")
	r.uProjection = gl.GetUniformLocation(program, "uProjectionMatrix")
	r.uPointSizeBase = gl.GetUniformLocation(program, "uPointSizeBase")
	r.uScreenSize = gl.GetUniformLocation(program, "uScreenSize")
	r.uBodyColor = gl.GetUniformLocation(program, "uBodyColor")
	r.uBodyMaterial = gl.GetUniformLocation(program, "uBodyMaterial")
	r.uScreenColor = gl.GetUniformLocation(program, "uScreenColor")
	r.uScreenMaterial = gl.GetUniformLocation(program, "uScreenMaterial")
	r.uHasTexture = gl.GetUniformLocation(program, "uHasTexture")
	r.uScreenTexture = gl.GetUniformLocation(program, "uScreenTexture")
	r.uLightDirection = gl.GetUniformLocation(program, "uLightDirection")
	r.uLightColor = gl.GetUniformLocation(program, "uLightColor")
	r.uAmbient = gl.GetUniformLocation(program, "uAmbient")
	r.uCameraPosition = gl.GetUniformLocation(program, "uCameraPosition")
	r.uStartColor = gl.GetUniformLocation(programBg, "uStartColor")
	r.uEndColor = gl.GetUniformLocation(programBg, "uEndColor")
	r.uDirection = gl.GetUniformLocation(programBg, "uDirection")

	r.posBuf = gl.CreateBuffer()
	gl.BindBuffer(gl.ARRAY_BUFFER, r.posBuf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.ByteArrayBuffer(r.phone.Cloud.Data), gl.STATIC_DRAW)

	r.normalBuf = gl.CreateBuffer()
	gl.BindBuffer(gl.ARRAY_BUFFER, r.normalBuf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(r.phone.NormalData()), gl.STATIC_DRAW)

	r.bgBuf = gl.CreateBuffer()
	gl.BindBuffer(gl.ARRAY_BUFFER, r.bgBuf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer([]float32{
		-1, -1, 1, -1, -1, 1, 1, 1,
	}), gl.STATIC_DRAW)

	r.texture = gl.CreateTexture()
	r.hasTexture = false

	gl.UseProgram(program)
	sw, sh := r.phone.ScreenSize()
	gl.Uniform3fv(r.uScreenSize, mat.Vec3{sw, sh, 0})
	gl.Uniform3fv(r.uBodyMaterial, mat.Vec3{mockup.BodyRoughness, mockup.BodyMetalness, 0})
	gl.Uniform1i(r.uScreenTexture, 0)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearDepth(1.0)

	r.width, r.height = 0, 0
	return nil
}

// resize fits the canvas into its container with the aspect ratio. It
// returns true if the drawing buffer size changed.
func (r *renderer) resize(a config.AspectRatio, pixelRatio float64) bool {
	parent := r.canvas.Get("parentElement")
	cw, ch := parent.Get("clientWidth").Int(), parent.Get("clientHeight").Int()
	w, h, bw, bh := canvasSize(a, cw, ch, pixelRatio)
	if w == r.cssWidth && h == r.cssHeight && bw == r.width && bh == r.height {
		return false
	}
	r.cssWidth, r.cssHeight = w, h
	r.width, r.height = bw, bh
	r.pixelRatio = pixelRatio

	style := r.canvas.Get("style")
	if a.Native() {
		style.Set("width", "100%")
		style.Set("height", "100%")
	} else {
		style.Set("width", fmt.Sprintf("%dpx", w))
		style.Set("height", fmt.Sprintf("%dpx", h))
	}
	r.gl.Canvas.SetWidth(bw)
	r.gl.Canvas.SetHeight(bh)
	r.gl.Viewport(0, 0, bw, bh)

	if bh > 0 {
		r.projection = rig.ProjectionMatrix(float32(bw)/float32(bh), nearClip, farClip)
	}
	r.gl.UseProgram(r.program)
	r.gl.UniformMatrix4fv(r.uProjection, false, r.projection)
	r.gl.Uniform1f(r.uPointSizeBase, pointSizeBase(bh))
	return true
}

func (r *renderer) setTexture(img js.Value) {
	gl := r.gl
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, gl.RGBA, gl.UNSIGNED_BYTE, img)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	r.hasTexture = true
}

func (r *renderer) clearTexture() {
	r.hasTexture = false
}

// applyMaterial uploads the uniforms depending on the configuration.
func (r *renderer) applyMaterial(c *config.Config, m *mockup.State) error {
	l, err := lightingOf(c.LightingPreset)
	if err != nil {
		return err
	}
	gl := r.gl
	gl.UseProgram(r.program)
	gl.Uniform3fv(r.uBodyColor, rgb(m.BaseColor))
	gl.Uniform3fv(r.uScreenColor, rgb(m.ScreenColor()))
	gl.Uniform3fv(r.uScreenMaterial, mat.Vec3{m.Screen.Roughness, mockup.ScreenMetalness, m.Screen.Emissive})
	gl.Uniform3fv(r.uLightDirection, l.direction)
	gl.Uniform3fv(r.uLightColor, l.color)
	gl.Uniform1f(r.uAmbient, l.ambient)

	if c.BackgroundType == config.BackgroundGradient {
		g, err := c.Gradient()
		if err != nil {
			return err
		}
		start, end, dir := gradientUniforms(g)
		gl.UseProgram(r.programBg)
		gl.Uniform3fv(r.uStartColor, start)
		gl.Uniform3fv(r.uEndColor, end)
		gl.Uniform3fv(r.uDirection, dir)
	}
	return nil
}

// mvp returns the model-view-projection matrix of the frame.
func (r *renderer) mvp(f rig.Frame, view mat.Mat4) mat.Mat4 {
	return modelViewProjection(r.projection, view, mockup.ModelMatrix(f.Model))
}

func (r *renderer) draw(c *config.Config, f rig.Frame, view mat.Mat4) error {
	gl := r.gl
	if gl.IsContextLost() {
		return errContextLost
	}
	bg, err := c.Background()
	if err != nil {
		return err
	}
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if c.BackgroundType == config.BackgroundGradient {
		gl.UseProgram(r.programBg)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.bgBuf)
		gl.EnableVertexAttribArray(aVertexPosition)
		gl.JS().Call("disableVertexAttribArray", aVertexLabel)
		gl.JS().Call("disableVertexAttribArray", aVertexNormal)
		gl.VertexAttribPointer(aVertexPosition, 2, gl.FLOAT, false, 2*4, 0)
		gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uModel, false, mockup.ModelMatrix(f.Model))
	gl.UniformMatrix4fv(r.uView, false, view)
	gl.Uniform3fv(r.uCameraPosition, f.Camera.Position)
	if r.hasTexture {
		gl.Uniform1i(r.uHasTexture, 1)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.texture)
	} else {
		gl.Uniform1i(r.uHasTexture, 0)
	}

	pc := r.phone.Cloud
	gl.EnableVertexAttribArray(aVertexPosition)
	gl.EnableVertexAttribArray(aVertexLabel)
	gl.EnableVertexAttribArray(aVertexNormal)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.posBuf)
	gl.VertexAttribPointer(aVertexPosition, 3, gl.FLOAT, false, pc.Stride(), 0)
	gl.VertexAttribIPointer(aVertexLabel, 1, gl.UNSIGNED_INT, pc.Stride(), 3*4)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.normalBuf)
	gl.VertexAttribPointer(aVertexNormal, 3, gl.FLOAT, false, 3*4, 0)
	gl.DrawArrays(gl.POINTS, 0, pc.Points)
	return nil
}
