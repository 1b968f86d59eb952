package cli

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/particles"
)

func newImageCmd(ro *rootOpts) *cobra.Command {
	o := defaultGenOpts()
	var maxSize, jobs int

	cmd := &cobra.Command{
		Use:   "image [file...]",
		Short: "Seed particles from the alpha channel of an image",
		Long: `Decode a PNG, JPEG, GIF, WebP, BMP or TIFF image and seed particles around the outline of its opaque region. Images without transparency are fully inside and yield no outline.

With several files, the images are processed concurrently and --output names a directory that receives one <name>.<format> file per input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seedSet := cmd.Flags().Changed("seed")
			if ro.config != "" {
				cfg, err := loadConfig(ro.config)
				if err != nil {
					return err
				}
				seedSet = cfg.applyGen(cmd.Flags().Changed, &o) || seedSet
				setInt(cmd.Flags().Changed, "max-size", cfg.MaxSize, &maxSize)
				setInt(cmd.Flags().Changed, "jobs", cfg.Jobs, &jobs)
			}
			if len(args) > 1 {
				return runImageBatch(cmd, args, &o, maxSize, jobs, seedSet)
			}
			return runImage(cmd, args[0], &o, maxSize, seedSet)
		},
	}

	addGenFlags(cmd, &o)
	cmd.Flags().IntVar(&maxSize, "max-size", 0, "downscale images larger than this many pixels on a side (0 keeps the original)")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "images processed concurrently (default GOMAXPROCS)")

	return cmd
}

func runImage(cmd *cobra.Command, path string, o *genOpts, maxSize int, seedSet bool) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	img, format, err := decodeImage(path)
	if err != nil {
		return err
	}
	logger.Debug("Decoded image", "path", path, "format", format, "bounds", img.Bounds())

	if maxSize > 0 {
		img = particles.Fit(img, maxSize, maxSize)
		logger.Debug("Fitted image", "bounds", img.Bounds())
	}
	return generate(ctx, cmd, img, o, seedSet)
}

func runImageBatch(cmd *cobra.Command, paths []string, o *genOpts, maxSize, jobs int, seedSet bool) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if o.output == "" {
		return errors.New("several input files need --output to name a directory")
	}
	opts, err := o.options(seedSet)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(o.output, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	imgs := make([]image.Image, len(paths))
	for i, path := range paths {
		img, format, err := decodeImage(path)
		if err != nil {
			return err
		}
		logger.Debug("Decoded image", "path", path, "format", format, "bounds", img.Bounds())
		imgs[i] = particles.Fit(img, maxSize, maxSize)
	}

	prog := newProgress(logger)
	sets, err := particles.New(opts...).FromImages(ctx, imgs, jobs)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Processed %d images", len(sets)))

	for i, set := range sets {
		out := filepath.Join(o.output, outputName(paths[i], o.format))
		if err := emit(cmd, set, o, out, prog.elapsed()); err != nil {
			return err
		}
	}
	return nil
}

// outputName maps an input path to "<base>.<format>".
func outputName(path, format string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + format
}

func decodeImage(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	return img, format, nil
}
