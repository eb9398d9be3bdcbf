package main

import (
	"fmt"
	"html"
	"syscall/js"
)

// newLogWriter writes log lines to the browser console and, if present,
// to the page log element.
func newLogWriter(div js.Value) *logWriter {
	console := js.Global().Get("console")
	w := &logWriter{sinks: []func(string){
		func(s string) { console.Call("log", s) },
	}}
	if div.Truthy() {
		w.sinks = append(w.sinks, func(s string) {
			prev := div.Get("innerHTML").String()
			div.Set("innerHTML", fmt.Sprintf("%s%s<br/>", prev, html.EscapeString(s)))
		})
	}
	return w
}
