package main

import (
	"bytes"
	"errors"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/seqsense/phonemockup/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func run(args ...string) (string, error) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidate(t *testing.T) {
	testCases := map[string]struct {
		input    string
		contains string
		err      error
	}{
		"Normalized": {
			input:    "movementType: autoRotate\nrotationSpeed: 9\n",
			contains: "rotationSpeed: 5\n",
		},
		"UnknownMode": {
			input: "movementType: spin\n",
			err:   config.ErrUnknownMode,
		},
		"InvalidColor": {
			input: "backgroundColor: gray\n",
			err:   config.ErrInvalidColor,
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			out, err := run("validate", writeConfig(t, tt.input))
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("Expected error %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(out, tt.contains) {
				t.Errorf("Expected %q in:\n%s", tt.contains, out)
			}
		})
	}
}

func TestEmbed(t *testing.T) {
	p := writeConfig(t, "color: \"#9bb5ce\"\n")
	out := filepath.Join(t.TempDir(), "out.html")
	if _, err := run("embed", "-c", p, "-o", out, "--base-url", "https://example.com/app"); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "https://example.com/app/phonemockup.wasm") {
		t.Errorf("Unexpected page:\n%s", b)
	}

	stdout, err := run("embed", "-c", p)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "<!DOCTYPE html>") {
		t.Errorf("Page must be written to stdout, got:\n%s", stdout)
	}
}

func TestBackground(t *testing.T) {
	p := writeConfig(t, "backgroundType: gradient\naspectRatio: \"1:1\"\n")
	dir := t.TempDir()

	out := filepath.Join(dir, "bg.png")
	if _, err := run("background", "-c", p, "-o", out, "-W", "64", "-H", "32"); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 32 {
		t.Errorf("Aspect ratio must be applied, got %v", img.Bounds())
	}

	if _, err := run("background", "-c", p, "-o", filepath.Join(dir, "bg.webp"), "-W", "16", "-H", "16"); err != nil {
		t.Fatal(err)
	}
	if _, err := run("background", "-c", p, "-o", filepath.Join(dir, "bg.gif")); err == nil {
		t.Error("Unknown format must fail")
	}
}

func TestBackgroundImage(t *testing.T) {
	c := config.Default()
	img, err := backgroundImage(c, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if p := img.NRGBAAt(1, 1); p.R != 0xe5 || p.G != 0xe7 || p.B != 0xeb || p.A != 0xff {
		t.Errorf("Unexpected solid color %v", p)
	}

	c.BackgroundType = config.BackgroundTransparent
	img, err = backgroundImage(c, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if p := img.NRGBAAt(0, 0); p.A != 0 {
		t.Errorf("Transparent background must have zero alpha, got %v", p)
	}
}

func TestNoCache(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("mockup"), 0644); err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(&noCache{Handler: http.FileServer(http.Dir(dir))})
	defer ts.Close()

	res, err := http.Get(ts.URL + "/index.html")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("Unexpected status %d", res.StatusCode)
	}
	if cc := res.Header.Get("Cache-Control"); cc != "no-cache" {
		t.Errorf("Expected no-cache, got %q", cc)
	}
}
