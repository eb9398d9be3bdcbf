package main

import (
	"fmt"
	"io"
	"syscall/js"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/phonemockup/blob"
	"github.com/seqsense/phonemockup/rig"
)

// request is a JavaScript API call handled by the main loop.
type request struct {
	name    string
	args    []js.Value
	resolve js.Value
	reject  js.Value
}

type apiHandler func(args []js.Value) (interface{}, error)

// installAPI sets a global function per handler. Each call returns a
// Promise which is settled after the main loop ran the handler.
func installAPI(ch chan<- request, handlers map[string]apiHandler) {
	promise := js.Global().Get("Promise")
	for name := range handlers {
		name := name
		js.Global().Set(name, js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			var executor js.Func
			executor = js.FuncOf(func(this js.Value, pargs []js.Value) interface{} {
				executor.Release()
				req := request{name: name, args: args, resolve: pargs[0], reject: pargs[1]}
				go func() { ch <- req }()
				return nil
			})
			return promise.New(executor)
		}))
	}
}

func handleRequest(handlers map[string]apiHandler, req request) {
	v, err := handlers[req.name](req.args)
	if err != nil {
		req.reject.Invoke(errorToJS(err))
		return
	}
	req.resolve.Invoke(v)
}

func argString(args []js.Value, i int) string {
	if i >= len(args) || args[i].Type() != js.TypeString {
		return ""
	}
	return args[i].String()
}

func argInt(args []js.Value, i int) int {
	if i >= len(args) || args[i].Type() != js.TypeNumber {
		return 0
	}
	return args[i].Int()
}

// argBytes reads a string, a Blob or a plain object (as JSON) argument.
func argBytes(args []js.Value, i int) ([]byte, error) {
	if i >= len(args) {
		return nil, errArgumentNumber
	}
	v := args[i]
	switch v.Type() {
	case js.TypeString:
		return []byte(v.String()), nil
	case js.TypeObject:
		if b, err := blob.JS(v); err == nil {
			r, err := b.Reader()
			if err != nil {
				return nil, err
			}
			return io.ReadAll(r)
		}
		return []byte(js.Global().Get("JSON").Call("stringify", v).String()), nil
	}
	return nil, fmt.Errorf("unsupported argument type %s", v.Type())
}

func vecJS(v mat.Vec3) []interface{} {
	return []interface{}{v[0], v[1], v[2]}
}

func poseJS(p rig.Pose, cam rig.CameraPose) map[string]interface{} {
	return map[string]interface{}{
		"model": map[string]interface{}{
			"position": vecJS(p.Position),
			"rotation": vecJS(p.Rotation),
		},
		"camera": map[string]interface{}{
			"position": vecJS(cam.Position),
			"target":   vecJS(cam.Target),
		},
	}
}
