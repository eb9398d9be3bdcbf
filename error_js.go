package main

import (
	"errors"
	"syscall/js"
)

var errContextLostEvent = errors.New("received context lost event")

// errorToJS converts err to a JavaScript Error. Known failures get a code
// property so that callers can branch without parsing the message.
func errorToJS(err error) js.Value {
	e := js.Global().Get("Error").New(err.Error())
	if code := errorCode(err); code != "" {
		e.Set("code", code)
	}
	return e
}
