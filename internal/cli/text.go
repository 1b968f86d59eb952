package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/particles/text"
)

// textOpts holds the text rasterization flags.
type textOpts struct {
	size    float64
	padding int
	font    string // path to a TTF/OTF file; empty selects Go Bold
}

func newTextCmd(ro *rootOpts) *cobra.Command {
	o := defaultGenOpts()
	to := textOpts{
		size:    text.DefaultSize,
		padding: text.DefaultPadding,
	}

	cmd := &cobra.Command{
		Use:   "text [phrase...]",
		Short: "Seed particles from the outline of a rasterized phrase",
		Long:  `Rasterize a phrase in white on a transparent canvas and seed particles around the outline of its glyphs. Multiple arguments are joined with spaces.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := cmd.Flags().Changed
			seedSet := changed("seed")
			if ro.config != "" {
				cfg, err := loadConfig(ro.config)
				if err != nil {
					return err
				}
				seedSet = cfg.applyGen(changed, &o) || seedSet
				setFloat(changed, "size", cfg.Size, &to.size)
				setInt(changed, "padding", cfg.Padding, &to.padding)
				setString(changed, "font", cfg.Font, &to.font)
			}
			return runText(cmd, strings.Join(args, " "), &o, &to, seedSet)
		},
	}

	addGenFlags(cmd, &o)
	cmd.Flags().Float64Var(&to.size, "size", to.size, "font size in pixels")
	cmd.Flags().IntVar(&to.padding, "padding", to.padding, "transparent margin around the text in pixels")
	cmd.Flags().StringVar(&to.font, "font", "", "TTF/OTF font file (default Go Bold)")

	return cmd
}

func runText(cmd *cobra.Command, phrase string, o *genOpts, to *textOpts, seedSet bool) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	opts := []text.Option{text.WithSize(to.size), text.WithPadding(to.padding)}
	if to.font != "" {
		f, err := loadFont(to.font)
		if err != nil {
			return err
		}
		logger.Debug("Loaded font", "path", to.font, "family", f.Name())
		opts = append(opts, text.WithFont(f))
	}

	img, err := text.Rasterize(phrase, opts...)
	if err != nil {
		return err
	}
	logger.Debug("Rasterized text", "phrase", phrase, "bounds", img.Bounds())

	return generate(ctx, cmd, img, o, seedSet)
}

func loadFont(path string) (*text.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return text.ParseFont(data)
}
