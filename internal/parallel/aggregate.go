package parallel

import "sync"

// Aggregate reduces the index range [0, total) in parallel.
//
// The range is cut into contiguous blocks whose length is a multiple of
// granularity (typically the channel count of an interleaved pixel buffer),
// so a block never splits a pixel. Each block starts from a copy of init and
// is folded by sum over its own [begin, end) range; blocks never share an
// accumulator. The partial results are handed to merge one at a time under
// a single lock, in no particular order.
//
// A nil pool runs everything on the calling goroutine as one block.
// Aggregate returns after every merge has completed.
func Aggregate[T any](p *WorkerPool, total, granularity int, init T, sum func(acc *T, begin, end int), merge func(part T)) {
	if total <= 0 {
		return
	}
	if granularity <= 0 {
		granularity = 1
	}

	workers := 1
	if p != nil {
		workers = p.Workers()
	}
	span := granularity * workers
	block := (total + span - 1) / span * granularity
	if p == nil || block >= total {
		acc := init
		sum(&acc, 0, total)
		merge(acc)
		return
	}

	var mu sync.Mutex
	work := make([]func(), 0, (total+block-1)/block)
	for begin := 0; begin < total; begin += block {
		end := min(begin+block, total)
		work = append(work, func() {
			acc := init
			sum(&acc, begin, end)

			mu.Lock()
			defer mu.Unlock()
			merge(acc)
		})
	}
	p.ExecuteAll(work)
}

// ForRows calls fn once for every row in [0, height), spreading contiguous
// bands of rows over the pool. Rows are independent: fn must only touch
// memory belonging to its own row.
//
// A nil pool runs the rows sequentially on the calling goroutine.
func ForRows(p *WorkerPool, height int, fn func(y int)) {
	if height <= 0 {
		return
	}
	if p == nil || p.Workers() == 1 || height == 1 {
		for y := range height {
			fn(y)
		}
		return
	}

	// A few bands per worker so stealing can even out slow rows.
	bands := min(height, p.Workers()*4)
	rows := (height + bands - 1) / bands

	work := make([]func(), 0, bands)
	for y0 := 0; y0 < height; y0 += rows {
		y1 := min(y0+rows, height)
		work = append(work, func() {
			for y := y0; y < y1; y++ {
				fn(y)
			}
		})
	}
	p.ExecuteAll(work)
}
