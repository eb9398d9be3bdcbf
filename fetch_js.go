package main

import (
	"fmt"
	"syscall/js"
)

// fetchBytes downloads the configuration file or screen image at url.
func fetchBytes(url string) ([]byte, error) {
	var b []byte
	var errored bool
	chErr := make(chan error, 1)
	fn := func(f func(args []js.Value) interface{}) js.Func {
		return js.FuncOf(func(this js.Value, args []js.Value) interface{} { return f(args) })
	}

	js.Global().Call("fetch", url, map[string]interface{}{
		"credentials": fetchCredentials(url),
	}).Call("then",
		fn(func(args []js.Value) interface{} {
			if !args[0].Get("ok").Bool() {
				chErr <- fmt.Errorf("failed to fetch %s: %d %s",
					url, args[0].Get("status").Int(), args[0].Get("statusText").String())
				errored = true
				return nil
			}
			return args[0].Call("arrayBuffer")
		}),
		fn(func(args []js.Value) interface{} {
			chErr <- fmt.Errorf("failed to fetch %s", url)
			errored = true
			return nil
		}),
	).Call("then",
		fn(func(args []js.Value) interface{} {
			if errored {
				return nil
			}
			array := js.Global().Get("Uint8Array").New(args[0])
			b = make([]byte, array.Get("byteLength").Int())
			js.CopyBytesToGo(b, array)
			chErr <- nil
			return nil
		}),
		fn(func(args []js.Value) interface{} {
			chErr <- fmt.Errorf("failed to read %s", url)
			return nil
		}),
	)

	if err := <-chErr; err != nil {
		return nil, err
	}
	return b, nil
}
