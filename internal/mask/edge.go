package mask

// Band holds the radii of the edge band.
//
// The band is the union of an inner ring (the boundary dilated by Thick1)
// and an outer shell: the inside dilated by Gap+Thick2 minus the inside
// dilated by Gap.
type Band struct {
	Thick1 int
	Gap    int
	Thick2 int
}

// DefaultBand is the band used by the particle pipeline.
var DefaultBand = Band{Thick1: 2, Gap: 3, Thick2: 2}

// Edge builds the edge band of inside with DefaultBand.
func Edge(inside *Mask) *Mask {
	return EdgeWith(inside, DefaultBand)
}

// EdgeWith builds the edge band of inside with the given radii. The band
// straddles the silhouette: the inner ring hugs the true boundary, the outer
// shell floats at a fixed offset outside the shape.
func EdgeWith(inside *Mask, b Band) *Mask {
	edge := Dilate(Boundary(inside), b.Thick1)

	outer := Dilate(inside, b.Gap+b.Thick2)
	outer.AndNot(Dilate(inside, b.Gap))

	edge.Or(outer)
	return edge
}
