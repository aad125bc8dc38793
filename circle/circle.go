// Package circle locates the heuristic dot region of a logo image and clears
// it.
//
// The region is derived only from the image dimensions, never from its
// content: the center sits at half the width and 65% of the height, and the
// radius is 12% of the width.
package circle

import (
	"fmt"
	"image"
	"math"
)

const (
	CenterX      = 0.5
	CenterY      = 0.65
	RadiusFactor = 0.12
)

type Circle struct {
	CX     float64
	CY     float64
	Radius float64
}

// Locate returns the dot region for an image of the given size.
func Locate(width, height int) Circle {
	return Circle{
		CX:     float64(width) * CenterX,
		CY:     float64(height) * CenterY,
		Radius: float64(width) * RadiusFactor,
	}
}

// Contains reports whether the pixel at (x, y) lies strictly inside c.
// Pixels exactly on the boundary are outside.
func (c Circle) Contains(x, y int) bool {
	dx := float64(x) - c.CX
	dy := float64(y) - c.CY
	// explicit conversions keep the compiler from fusing into an FMA
	return float64(dx*dx)+float64(dy*dy) < float64(c.Radius*c.Radius)
}

// Bounds is the smallest rectangle holding every pixel c contains.
func (c Circle) Bounds() image.Rectangle {
	if !(c.Radius > 0) {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(c.CX-c.Radius)),
		int(math.Floor(c.CY-c.Radius)),
		int(math.Ceil(c.CX+c.Radius))+1,
		int(math.Ceil(c.CY+c.Radius))+1,
	)
}

func (c Circle) String() string {
	return fmt.Sprintf("center=(%g, %g) radius=%g", c.CX, c.CY, c.Radius)
}
