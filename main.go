//go:build !js

package main

import (
	"log"
)

// The configurator runs in the browser. Build it with
// GOOS=js GOARCH=wasm and serve it with mockupctl serve.
func main() {
	log.SetFlags(0)
	log.Fatal("phonemockup must be built for GOOS=js GOARCH=wasm; see mockupctl for native tools")
}
