// Package blob exchanges binary data with browser Blob objects.
package blob

import (
	"errors"
	"io"
	"syscall/js"
)

type Blob js.Value

var (
	blobJS = js.Global().Get("Blob")
	urlJS  = js.Global().Get("URL")
)

// New copies the bytes into a new Blob of the media type.
func New(b []byte, typ string) Blob {
	array := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(array, b)

	return Blob(blobJS.New([]interface{}{array}, map[string]interface{}{
		"type": typ,
	}))
}

func JS(j interface{}) (Blob, error) {
	jv, ok := j.(js.Value)
	if !ok {
		return Blob{}, errors.New("requires JavaScript object")
	}
	if !jv.InstanceOf(blobJS) {
		return Blob{}, errors.New("requires Blob object")
	}
	return Blob(jv), nil
}

func (blob Blob) JS() js.Value {
	return js.Value(blob)
}

// Size returns the length in bytes.
func (blob Blob) Size() int {
	return js.Value(blob).Get("size").Int()
}

// URL creates an object URL referring to the Blob. The URL stays valid
// until it is revoked.
func (blob Blob) URL() string {
	return urlJS.Call("createObjectURL", js.Value(blob)).String()
}

// Download saves the Blob as a file through a temporary link.
func (blob Blob) Download(name string) {
	url := blob.URL()
	a := js.Global().Get("document").Call("createElement", "a")
	a.Set("href", url)
	a.Set("download", name)
	a.Call("click")

	var revoke js.Func
	revoke = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		urlJS.Call("revokeObjectURL", url)
		revoke.Release()
		return nil
	})
	js.Global().Call("setTimeout", revoke, 1000)
}

func (blob Blob) Reader() (io.Reader, error) {
	var r *blobReader
	chErr := make(chan error)
	js.Value(blob).Call("arrayBuffer").Call("then",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			array := js.Global().Get("Uint8Array").New(args[0])
			n := array.Get("byteLength").Int()
			r = &blobReader{
				jsArray: array,
				n:       n,
			}
			chErr <- nil
			return nil
		}),
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			chErr <- errors.New("failed to handle received data")
			return nil
		}),
	)

	if err := <-chErr; err != nil {
		return nil, err
	}

	return r, nil
}

type blobReader struct {
	jsArray js.Value
	n       int
	pos     int
}

func (r *blobReader) Read(b []byte) (int, error) {
	if r.n == r.pos {
		return 0, io.EOF
	}
	end := r.pos + len(b)
	if end > r.n {
		end = r.n
	}
	n := end - r.pos
	sa := r.jsArray.Call("subarray", js.ValueOf(r.pos), js.ValueOf(end))
	js.CopyBytesToGo(b, sa)
	r.pos = end
	return n, nil
}
