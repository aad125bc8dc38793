package parallel

import (
	"image"
	"sync/atomic"
	"testing"
)

func TestBands(t *testing.T) {
	cases := []struct {
		r     image.Rectangle
		n     int
		bands int
	}{
		{image.Rect(0, 0, 10, 10), 1, 1},
		{image.Rect(0, 0, 10, 10), 3, 3},
		{image.Rect(0, 5, 10, 8), 8, 3},
		{image.Rect(2, 2, 4, 9), 0, 1},
		{image.Rectangle{}, 4, 0},
	}

	for _, c := range cases {
		bands := Bands(c.r, c.n)
		if len(bands) != c.bands {
			t.Errorf("Bands(%v, %d) gave %d bands, want %d", c.r, c.n, len(bands), c.bands)
			continue
		}
		y := c.r.Min.Y
		for _, b := range bands {
			if b.Min.Y != y || b.Min.X != c.r.Min.X || b.Max.X != c.r.Max.X || b.Empty() {
				t.Errorf("Bands(%v, %d): unexpected band %v", c.r, c.n, b)
			}
			y = b.Max.Y
		}
		if len(bands) > 0 && y != c.r.Max.Y {
			t.Errorf("Bands(%v, %d) stop at y=%d, want %d", c.r, c.n, y, c.r.Max.Y)
		}
	}
}

func TestPoolRows(t *testing.T) {
	r := image.Rect(0, 0, 7, 1000)
	for _, workers := range []int{1, 4, 0} {
		pool := Start(workers)
		var rows atomic.Int64
		pool.Rows(r, func(b image.Rectangle) {
			rows.Add(int64(b.Dy()))
		})
		pool.Rows(r, func(b image.Rectangle) {
			rows.Add(int64(b.Dy()))
		})
		pool.Wait(true)

		if got := rows.Load(); got != 2000 {
			t.Errorf("workers=%d: visited %d rows, want 2000", workers, got)
		}
	}
}

func TestPoolDo(t *testing.T) {
	pool := Start(3)
	var n atomic.Int64
	for range 50 {
		pool.Do(func() { n.Add(1) })
	}
	pool.Wait(true)

	if got := n.Load(); got != 50 {
		t.Errorf("ran %d functions, want 50", got)
	}
	if pool.Size() != 3 {
		t.Errorf("Size() = %d, want 3", pool.Size())
	}
}
