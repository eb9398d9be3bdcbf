package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqsense/phonemockup/config"
	"github.com/seqsense/phonemockup/embed"
)

func newEmbedCommand() *cobra.Command {
	var (
		configPath string
		outPath    string
		opts       embed.Options
	)
	cmd := &cobra.Command{
		Use:   "embed -c config.yaml",
		Short: "Generate a standalone HTML page showing the mockup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}
			if embed.Texture(c.TextureURL) == embed.TexturePlaceholder {
				log.Printf("screen image is a local blob, replace %s in the output", embed.TexturePlaceholder)
			}

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return embed.Generate(w, c, opts)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration YAML file")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output HTML file (default stdout)")
	cmd.Flags().StringVar(&opts.BaseURL, "base-url", "", "URL of the directory serving the wasm files")
	cmd.Flags().StringVar(&opts.Title, "title", embed.DefaultTitle, "Page title")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
