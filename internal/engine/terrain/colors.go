package terrain

// Shade bounds for the elevation ramp.
const (
	lowGreen  = 0.25
	highGreen = 0.85
)

// Colors maps every vertex elevation to a shade of green (flat rgb per vertex).
// Low ground is dark, peaks are bright. A flat field gets the mid shade.
func Colors(f *HeightField) []float32 {
	lo, hi := f.Range()
	span := hi - lo

	colors := make([]float32, 0, len(f.Heights)*3)
	for _, h := range f.Heights {
		t := float32(0.5)
		if span > 0 {
			t = (h - lo) / span
		}
		g := lowGreen + t*(highGreen-lowGreen)
		colors = append(colors, 0.2*g, g, 0.15*g)
	}
	return colors
}
