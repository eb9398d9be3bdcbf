package main

import (
	"fmt"
	"syscall/js"
)

// loadImage fetches an image element. It blocks until the image is
// decoded, so it must not be called from a JavaScript callback.
func loadImage(url string) (js.Value, error) {
	img := js.Global().Get("Image").New()
	img.Set("crossOrigin", "anonymous")

	chOK := make(chan bool, 1)
	onLoad := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		chOK <- true
		return nil
	})
	defer onLoad.Release()
	onError := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		chOK <- false
		return nil
	})
	defer onError.Release()

	img.Call("addEventListener", "load", onLoad)
	img.Call("addEventListener", "error", onError)
	img.Set("src", url)

	if !<-chOK {
		return js.Null(), fmt.Errorf("failed to load screen image %q", url)
	}
	return img, nil
}
