// Package embed generates a standalone HTML page showing a configured
// mockup, for pasting into another site.
package embed

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/seqsense/phonemockup/config"
)

// TexturePlaceholder replaces screen images which only exist in the
// configurator page.
const TexturePlaceholder = "YOUR_IMAGE_URL_HERE"

const (
	DefaultTitle    = "3D Phone Mockup"
	DefaultWasmName = "phonemockup.wasm"
)

// Options controls where the generated page loads the viewer from.
type Options struct {
	// BaseURL is the directory serving wasm_exec.js and the wasm binary.
	BaseURL  string
	WasmName string
	Title    string
}

type page struct {
	Title      string
	Background template.CSS
	ExecURL    string
	WasmURL    string
	Config     string
	Camera     template.JS
}

var pageTemplate = template.Must(template.New("embed").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { margin: 0; overflow: hidden; background: {{.Background}}; }
canvas { display: block; width: 100vw; height: 100vh; touch-action: none; }
#log { display: none; }
</style>
<script src="{{.ExecURL}}"></script>
</head>
<body>
<canvas id="mockupCanvas" tabindex="0"></canvas>
<div id="log"></div>
<script>
const CONFIG = {{.Config}};
const CAMERA = {{.Camera}};
const go = new Go();
WebAssembly.instantiateStreaming(fetch({{.WasmURL}}), go.importObject).then((result) => {
  go.run(result.instance);
  mockupSetConfig(CONFIG);
  if (CAMERA) {
    mockupCommand("camera " + CAMERA.position.concat(CAMERA.target).join(" "));
  }
});
</script>
</body>
</html>
`))

// Texture returns the screen image URL usable outside the configurator.
// blob: URLs are replaced by TexturePlaceholder; data: URLs are kept
// inline.
func Texture(url string) string {
	if strings.HasPrefix(url, "blob:") {
		return TexturePlaceholder
	}
	return url
}

// DataURL returns a data: URL holding the image, so that it can be
// embedded in place of a blob: URL.
func DataURL(b []byte) string {
	return "data:" + http.DetectContentType(b) + ";base64," + base64.StdEncoding.EncodeToString(b)
}

// Background returns the CSS background of the page body.
func Background(c *config.Config) string {
	switch c.BackgroundType {
	case config.BackgroundSolid:
		return c.BackgroundColor
	case config.BackgroundGradient:
		return fmt.Sprintf("linear-gradient(%gdeg, %s, %s)",
			c.BackgroundGradientAngle, c.BackgroundGradientStart, c.BackgroundGradientEnd)
	}
	return "transparent"
}

// Generate writes the page for the configuration.
func Generate(w io.Writer, c *config.Config, opts Options) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.WasmName == "" {
		opts.WasmName = DefaultWasmName
	}
	base := strings.TrimSuffix(opts.BaseURL, "/")
	if base != "" {
		base += "/"
	}

	cc := c.Clone()
	cc.TextureURL = Texture(cc.TextureURL)
	y, err := cc.Marshal()
	if err != nil {
		return err
	}
	camera, err := json.Marshal(cc.DefaultCameraPosition)
	if err != nil {
		return fmt.Errorf("camera pose: %w", err)
	}

	return pageTemplate.Execute(w, &page{
		Title:      opts.Title,
		Background: template.CSS(Background(cc)),
		ExecURL:    base + "wasm_exec.js",
		WasmURL:    base + opts.WasmName,
		Config:     string(y),
		Camera:     template.JS(camera),
	})
}

// String returns the page for the configuration.
func String(c *config.Config, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := Generate(&buf, c, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}
