package parallel

import (
	"image"
	"runtime"
	"sync"
)

// Pool runs submitted functions on a fixed number of goroutines. A pool of
// one worker runs everything inline on the caller.
type Pool struct {
	wg     sync.WaitGroup
	work   chan func()
	size   int
	cancel func()
}

func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		size:   numWorkers,
		cancel: func() {},
	}

	if numWorkers > 1 {
		pool.work = make(chan func(), numWorkers)
		for range numWorkers {
			pool.wg.Go(func() {
				for f := range pool.work {
					f()
				}
			})
		}
		pool.cancel = sync.OnceFunc(func() { close(pool.work) })
	}

	return pool
}

// Size is the number of workers.
func (p *Pool) Size() int {
	return p.size
}

func (p *Pool) Do(f func()) {
	if p.work == nil {
		f()
		return
	}
	p.work <- f
}

// Wait blocks until all submitted work is done. When done is true the pool
// is shut down and must not be used again.
func (p *Pool) Wait(done bool) {
	if done {
		p.cancel()
	}
	p.wg.Wait()
}

// Rows runs fn over horizontal bands of r, one band per worker, and returns
// once every band has been processed. The pool stays usable afterwards.
func (p *Pool) Rows(r image.Rectangle, fn func(band image.Rectangle)) {
	bands := Bands(r, p.size)
	if p.work == nil || len(bands) < 2 {
		for _, b := range bands {
			fn(b)
		}
		return
	}

	var wg sync.WaitGroup
	for _, b := range bands {
		wg.Add(1)
		p.Do(func() {
			defer wg.Done()
			fn(b)
		})
	}
	wg.Wait()
}

// Bands splits r into at most n contiguous horizontal bands of near equal
// height covering r exactly. An empty r yields no bands.
func Bands(r image.Rectangle, n int) []image.Rectangle {
	if r.Empty() {
		return nil
	}
	h := r.Dy()
	if n < 1 {
		n = 1
	}
	if n > h {
		n = h
	}

	bands := make([]image.Rectangle, 0, n)
	y := r.Min.Y
	for i := range n {
		rows := h / n
		if i < h%n {
			rows++
		}
		bands = append(bands, image.Rect(r.Min.X, y, r.Max.X, y+rows))
		y += rows
	}
	return bands
}
