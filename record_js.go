package main

import (
	"errors"
	"fmt"
	"log"
	"syscall/js"
	"time"

	"github.com/seqsense/phonemockup/blob"
	"github.com/seqsense/phonemockup/capture"
)

const (
	recordFrameRate = 60
	recordMIMEType  = "video/webm;codecs=vp9"
)

var errRecordUnsupported = errors.New("video recording is not supported by the browser")

// videoRecorder records the canvas with MediaRecorder for a fixed
// duration and shows the remaining seconds on the badge element.
type videoRecorder struct {
	capture.Recorder

	canvas js.Value
	badge  js.Value

	media  js.Value
	chunks []js.Value
	funcs  []js.Func
}

func newVideoRecorder(canvas, badge js.Value) *videoRecorder {
	return &videoRecorder{canvas: canvas, badge: badge}
}

func (v *videoRecorder) start(now time.Time, d time.Duration) error {
	mr := js.Global().Get("MediaRecorder")
	if !mr.Truthy() || !v.canvas.Get("captureStream").Truthy() {
		return errRecordUnsupported
	}
	if err := v.Start(now, d); err != nil {
		return err
	}

	mime := recordMIMEType
	if !mr.Call("isTypeSupported", mime).Bool() {
		mime = "video/webm"
	}
	stream := v.canvas.Call("captureStream", recordFrameRate)
	v.media = mr.New(stream, map[string]interface{}{"mimeType": mime})
	v.chunks = nil

	onData := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if data := args[0].Get("data"); data.Get("size").Int() > 0 {
			v.chunks = append(v.chunks, data)
		}
		return nil
	})
	onStop := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		v.save(time.Now())
		return nil
	})
	v.funcs = append(v.funcs, onData, onStop)
	v.media.Set("ondataavailable", onData)
	v.media.Set("onstop", onStop)
	v.media.Call("start")

	v.showBadge(v.Countdown(now))
	log.Printf("recording video for %s", v.Remaining(now))
	return nil
}

func (v *videoRecorder) save(now time.Time) {
	chunks := make([]interface{}, len(v.chunks))
	for i, c := range v.chunks {
		chunks[i] = c
	}
	v.chunks = nil
	for _, f := range v.funcs {
		f.Release()
	}
	v.funcs = nil

	b, err := blob.JS(js.Global().Get("Blob").New(chunks, map[string]interface{}{
		"type": "video/webm",
	}))
	if err != nil {
		log.Print(err)
		return
	}
	name := capture.FileName(capture.VideoPrefix, now, capture.VideoExt)
	b.Download(name)
	log.Printf("video saved as %s (%d bytes)", name, b.Size())
}

// update stops the recording once the duration has passed.
func (v *videoRecorder) update(now time.Time) {
	if !v.Recording() {
		return
	}
	if v.Stop(now) {
		v.media.Call("stop")
		v.hideBadge()
		return
	}
	v.showBadge(v.Countdown(now))
}

func (v *videoRecorder) showBadge(sec int) {
	if !v.badge.Truthy() {
		return
	}
	v.badge.Set("textContent", fmt.Sprintf("REC %ds", sec))
	v.badge.Get("style").Set("display", "block")
}

func (v *videoRecorder) hideBadge() {
	if !v.badge.Truthy() {
		return
	}
	v.badge.Get("style").Set("display", "none")
}
