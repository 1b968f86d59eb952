package text_test

import (
	"fmt"

	"github.com/gogpu/particles"
	"github.com/gogpu/particles/text"
)

func ExampleRasterize() {
	img, err := text.Rasterize("A", text.WithSize(40), text.WithPadding(8))
	if err != nil {
		fmt.Println(err)
		return
	}
	set := particles.FromImage(img)
	fmt.Println(img.Bounds().Dy(), set.Len() > 0)
	// Output: 64 true
}
