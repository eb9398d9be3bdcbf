// Command mockupctl validates mockup configurations, generates embed pages
// and serves the configurator.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mockupctl",
		Short: "Phone mockup configurator tools",
		Long: `mockupctl - Phone mockup configurator tools

Configurations are YAML files with the keys of the configurator panel,
as returned by mockupGetConfig() in the browser.`,
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newEmbedCommand(),
		newValidateCommand(),
		newBackgroundCommand(),
		newServeCommand(),
	)
	return cmd
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("mockupctl: ")
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
