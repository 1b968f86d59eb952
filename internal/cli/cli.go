package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/particles"
)

const appName = "particlegen"

// rootOpts holds the persistent flags shared by every command.
type rootOpts struct {
	verbose bool
	config  string // TOML file with defaults for the generation flags
}

// Execute runs the particlegen CLI with ctx and returns an error if any
// command fails.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var ro rootOpts

	root := &cobra.Command{
		Use:          appName,
		Short:        "particlegen seeds particles along the outline of an image or text",
		Long:         `particlegen extracts the silhouette of an image or a rasterized phrase, seeds particles in a band around its outline, spreads them evenly and writes the resulting particle buffer.`,
		Version:      particles.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if ro.verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			installLogger(logger)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\n", appName, particles.Version))
	root.PersistentFlags().BoolVarP(&ro.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&ro.config, "config", "", "TOML file with default flag values")

	root.AddCommand(newImageCmd(&ro))
	root.AddCommand(newTextCmd(&ro))

	return root
}
