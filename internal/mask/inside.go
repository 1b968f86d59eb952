package mask

// Inside thresholds the alpha channel of a tightly packed RGBA buffer
// (4 bytes per pixel, row-major) into a mask. A pixel is inside iff its alpha
// byte is strictly greater than threshold.
//
// The caller guarantees len(rgba) >= w*h*4.
func Inside(w, h int, rgba []byte, threshold uint8) *Mask {
	m := New(w, h)
	for i := range m.data {
		m.data[i] = rgba[i*4+3] > threshold
	}
	return m
}
