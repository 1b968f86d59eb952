package cli

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/particles"
)

const (
	formatBin  = "bin"  // raw little-endian float32
	formatJSON = "json" // JSON document with dimensions and data
)

// genOpts holds the flags shared by the image and text commands.
type genOpts struct {
	step       int
	alpha      int
	mode       string
	seed       uint32
	iterations int
	format     string
	output     string
}

func defaultGenOpts() genOpts {
	return genOpts{
		step:       particles.DefaultStep,
		alpha:      particles.DefaultAlphaThreshold,
		mode:       particles.ModeOutline.String(),
		iterations: particles.DefaultIterations,
		format:     formatBin,
	}
}

func addGenFlags(cmd *cobra.Command, o *genOpts) {
	cmd.Flags().IntVar(&o.step, "step", o.step, "sampling step in pixels (larger means fewer particles)")
	cmd.Flags().IntVar(&o.alpha, "alpha", o.alpha, "alpha threshold, 0-255; pixels above it are inside")
	cmd.Flags().StringVar(&o.mode, "mode", o.mode, "sampling mode: outline (default), grid")
	cmd.Flags().Uint32Var(&o.seed, "seed", 0, "random seed (default depends on mode)")
	cmd.Flags().IntVar(&o.iterations, "iterations", o.iterations, "relaxation rounds")
	cmd.Flags().StringVarP(&o.format, "format", "f", o.format, "output format: bin (default), json")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output file (default stdout)")
}

// options validates the flags and converts them to pipeline options.
// seedSet reports whether a seed was given on the command line or in the
// config file.
func (o *genOpts) options(seedSet bool) ([]particles.Option, error) {
	if o.alpha < 0 || o.alpha > 255 {
		return nil, fmt.Errorf("alpha threshold %d out of range 0-255", o.alpha)
	}
	if o.step < 1 {
		return nil, fmt.Errorf("step must be at least 1, got %d", o.step)
	}
	if err := validateFormat(o.format); err != nil {
		return nil, err
	}
	mode, err := particles.ParseMode(o.mode)
	if err != nil {
		return nil, err
	}

	opts := []particles.Option{
		particles.WithStep(o.step),
		particles.WithAlphaThreshold(uint8(o.alpha)),
		particles.WithMode(mode),
		particles.WithIterations(o.iterations),
	}
	if seedSet {
		opts = append(opts, particles.WithSeed(o.seed))
	}
	return opts, nil
}

func validateFormat(f string) error {
	switch f {
	case formatBin, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want bin or json)", f)
	}
}

// generate runs the pipeline on img and writes the result.
func generate(ctx context.Context, cmd *cobra.Command, img image.Image, o *genOpts, seedSet bool) error {
	opts, err := o.options(seedSet)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	logger := loggerFromContext(ctx)
	b := img.Bounds()
	logger.Debug("Generating particles", "width", b.Dx(), "height", b.Dy(), "step", o.step, "mode", o.mode)

	prog := newProgress(logger)
	set := particles.FromImage(img, opts...)
	prog.done(fmt.Sprintf("Seeded %d particles", set.Len()))

	if err := ctx.Err(); err != nil {
		return err
	}
	return emit(cmd, set, o, o.output, prog.elapsed())
}

// emit writes set to path (stdout when empty) and prints the summary.
func emit(cmd *cobra.Command, set *particles.Set, o *genOpts, path string, elapsed time.Duration) error {
	if err := writeOutput(cmd, set, o.format, path); err != nil {
		return err
	}
	printSummary(cmd.ErrOrStderr(), summary{
		count:   set.Len(),
		width:   set.Width,
		height:  set.Height,
		step:    o.step,
		mode:    o.mode,
		path:    path,
		elapsed: elapsed,
	})
	return nil
}
