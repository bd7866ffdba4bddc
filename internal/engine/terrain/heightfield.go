package terrain

import (
	gomath "math"
	"math/rand/v2"
)

// Flat returns a size x size field of zero elevation.
func Flat(size int) *HeightField {
	return &HeightField{
		Size:    size,
		Heights: make([]float32, size*size),
	}
}

// At returns the elevation at column col, row row.
func (f *HeightField) At(col, row int) float32 {
	return f.Heights[row*f.Size+col]
}

func (f *HeightField) set(col, row int, h float32) {
	f.Heights[row*f.Size+col] = h
}

// CenterIndex returns the column (and row) of the centre cell.
func (f *HeightField) CenterIndex() int {
	return f.Size / 2
}

// Center returns the elevation of the centre cell.
func (f *HeightField) Center() float32 {
	c := f.CenterIndex()
	return f.At(c, c)
}

// Range returns the lowest and highest elevation in the field.
func (f *HeightField) Range() (lo, hi float32) {
	if len(f.Heights) == 0 {
		return 0, 0
	}
	lo, hi = f.Heights[0], f.Heights[0]
	for _, h := range f.Heights[1:] {
		lo = min(lo, h)
		hi = max(hi, h)
	}
	return lo, hi
}

// Params controls height field generation.
type Params struct {
	Exponent  int     // Grid is 2^Exponent + 1 vertices per side
	Roughness float32 // Amplitude falls by 2^-Roughness per subdivision
	Amplitude float32 // Displacement range of the first pass
}

// Generate builds a height field with the diamond-square algorithm.
// Corners start at zero; every pass displaces new points by a uniform random
// offset in [-amp, amp] and then shrinks amp.
func Generate(p Params, rng *rand.Rand) *HeightField {
	n := 1<<p.Exponent + 1
	f := Flat(n)

	amp := p.Amplitude
	decay := float32(gomath.Pow(2, -float64(p.Roughness)))
	offset := func() float32 {
		return (rng.Float32()*2 - 1) * amp
	}

	for step := n - 1; step > 1; step /= 2 {
		half := step / 2

		// Diamond step: centre of every square
		for row := half; row < n; row += step {
			for col := half; col < n; col += step {
				avg := (f.At(col-half, row-half) + f.At(col+half, row-half) +
					f.At(col-half, row+half) + f.At(col+half, row+half)) / 4
				f.set(col, row, avg+offset())
			}
		}

		// Square step: midpoint of every edge, averaging the neighbours in range
		for row := 0; row < n; row += half {
			for col := (row + half) % step; col < n; col += step {
				var sum float32
				var count int
				for _, d := range [4][2]int{{-half, 0}, {half, 0}, {0, -half}, {0, half}} {
					c, r := col+d[0], row+d[1]
					if c < 0 || r < 0 || c >= n || r >= n {
						continue
					}
					sum += f.At(c, r)
					count++
				}
				f.set(col, row, sum/float32(count)+offset())
			}
		}

		amp *= decay
	}

	return f
}
