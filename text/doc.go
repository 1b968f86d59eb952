// Package text rasterizes a line of text into an RGBA canvas suitable as
// input to the particle pipeline.
//
// Text is NFC-normalized, shaped with go-text/typesetting (kerning,
// ligatures) and drawn from the font's glyph outlines with the
// golang.org/x/image/vector rasterizer. Glyph coverage lands in the alpha
// channel over white, so the silhouette of the text is exactly the opaque
// region of the canvas.
//
// # Example
//
//	img, err := text.Rasterize("TEXT GOES BOOM", text.WithSize(140))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	set := particles.FromImage(img)
package text
