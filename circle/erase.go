package circle

import (
	"image"
	"sync/atomic"

	"dotwipe/parallel"
)

// Erase sets every pixel of img inside c to fully transparent black and
// returns how many pixels it cleared. Coordinates are relative to
// img.Rect.Min. A nil pool scans on the calling goroutine.
func Erase(img *image.NRGBA, c Circle, pool *parallel.Pool) int {
	origin := img.Rect.Min
	area := c.Bounds().Add(origin).Intersect(img.Rect)
	if area.Empty() {
		return 0
	}

	var cleared atomic.Int64
	scan := func(band image.Rectangle) {
		var n int64
		for y := band.Min.Y; y < band.Max.Y; y++ {
			for x := band.Min.X; x < band.Max.X; x++ {
				if !c.Contains(x-origin.X, y-origin.Y) {
					continue
				}
				i := img.PixOffset(x, y)
				px := img.Pix[i : i+4 : i+4]
				px[0], px[1], px[2], px[3] = 0, 0, 0, 0
				n++
			}
		}
		cleared.Add(n)
	}

	if pool == nil {
		scan(area)
	} else {
		pool.Rows(area, scan)
	}
	return int(cleared.Load())
}
