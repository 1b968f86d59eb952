package particles

import (
	"context"
	"image"

	"github.com/gogpu/particles/internal/parallel"
)

// FromImages runs the pipeline on every image concurrently, using up to
// workers goroutines (GOMAXPROCS when workers <= 0). Results are in input
// order and identical to calling FromImage on each image in turn.
//
// Images not yet started when ctx is cancelled are left nil in the result
// and ctx.Err() is returned.
func (g *Generator) FromImages(ctx context.Context, imgs []image.Image, workers int) ([]*Set, error) {
	return parallel.Map(ctx, workers, imgs, func(_ context.Context, img image.Image) *Set {
		return g.FromImage(img)
	})
}
