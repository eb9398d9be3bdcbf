package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seqsense/phonemockup/capture"
	"github.com/seqsense/phonemockup/config"
)

// backgroundImage renders the page background of the configuration.
func backgroundImage(c *config.Config, w, h int) (*image.NRGBA, error) {
	switch c.BackgroundType {
	case config.BackgroundGradient:
		g, err := c.Gradient()
		if err != nil {
			return nil, err
		}
		return g.Image(w, h), nil
	}
	bg, err := c.Background()
	if err != nil {
		return nil, err
	}
	col := color.NRGBA{
		R: uint8(bg[0]*255 + 0.5),
		G: uint8(bg[1]*255 + 0.5),
		B: uint8(bg[2]*255 + 0.5),
		A: uint8(bg[3]*255 + 0.5),
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = col.R
		img.Pix[i+1] = col.G
		img.Pix[i+2] = col.B
		img.Pix[i+3] = col.A
	}
	return img, nil
}

func newBackgroundCommand() *cobra.Command {
	var (
		configPath string
		outPath    string
		width      int
		height     int
	)
	cmd := &cobra.Command{
		Use:   "background -c config.yaml -o background.webp",
		Short: "Export the configured background as an image",
		Long: `Export the configured background as an image.

The format is chosen by the output extension, png or webp. The aspect
ratio of the configuration is applied to the requested size.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}
			format, err := capture.ParseFormat(strings.TrimPrefix(filepath.Ext(outPath), "."))
			if err != nil {
				return err
			}
			a, err := config.ParseAspectRatio(c.AspectRatio)
			if err != nil {
				return err
			}
			w, h := a.Fit(width, height)
			if w <= 0 || h <= 0 {
				return fmt.Errorf("invalid size %dx%d", width, height)
			}
			img, err := backgroundImage(c, w, h)
			if err != nil {
				return err
			}

			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := capture.Encode(f, img, format); err != nil {
				return err
			}
			log.Printf("wrote %dx%d %s background to %s", w, h, format, outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration YAML file")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output image file (.png or .webp)")
	cmd.Flags().IntVarP(&width, "width", "W", 1920, "Image width")
	cmd.Flags().IntVarP(&height, "height", "H", 1080, "Image height")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
