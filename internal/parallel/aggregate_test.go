package parallel

import (
	"sync"
	"sync/atomic"
	"testing"
)

// =============================================================================
// Aggregate Tests
// =============================================================================

func TestAggregate_Sum(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	tests := []struct {
		name        string
		total       int
		granularity int
	}{
		{"single", 1, 1},
		{"exact", 1200, 3},
		{"ragged", 1001, 1},
		{"rgba", 4 * 37, 4},
		{"smaller than workers", 6, 3},
		{"zero granularity", 17, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got int
			Aggregate(pool, tt.total, tt.granularity, 0,
				func(acc *int, begin, end int) {
					for i := begin; i < end; i++ {
						*acc += i
					}
				},
				func(part int) { got += part },
			)

			want := tt.total * (tt.total - 1) / 2
			if got != want {
				t.Errorf("sum = %d, want %d", got, want)
			}
		})
	}
}

func TestAggregate_BlocksAligned(t *testing.T) {
	pool := NewWorkerPool(5)
	defer pool.Close()

	const granularity, total = 3, 3 * 101

	var (
		mu      sync.Mutex
		covered = make([]int, total)
	)
	Aggregate(pool, total, granularity, struct{}{},
		func(_ *struct{}, begin, end int) {
			if begin%granularity != 0 {
				t.Errorf("block begins at %d, not a multiple of %d", begin, granularity)
			}
			if (end-begin)%granularity != 0 {
				t.Errorf("block [%d,%d) splits a pixel", begin, end)
			}
			mu.Lock()
			for i := begin; i < end; i++ {
				covered[i]++
			}
			mu.Unlock()
		},
		func(struct{}) {},
	)

	for i, n := range covered {
		if n != 1 {
			t.Fatalf("index %d covered %d times, want 1", i, n)
		}
	}
}

func TestAggregate_MergeSerialized(t *testing.T) {
	pool := NewWorkerPool(8)
	defer pool.Close()

	var inMerge atomic.Int32
	var merges int
	Aggregate(pool, 8*1000, 1, 0,
		func(acc *int, begin, end int) { *acc = end - begin },
		func(int) {
			if inMerge.Add(1) != 1 {
				t.Error("merge called concurrently")
			}
			merges++
			inMerge.Add(-1)
		},
	)

	if merges < 2 {
		t.Errorf("merges = %d, want the range split across workers", merges)
	}
}

func TestAggregate_FreshAccumulatorPerBlock(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var total int
	Aggregate(pool, 400, 1, [2]int{},
		func(acc *[2]int, begin, end int) {
			if acc[0] != 0 || acc[1] != 0 {
				t.Error("block started from a used accumulator")
			}
			acc[0] = end - begin
		},
		func(part [2]int) { total += part[0] },
	)

	if total != 400 {
		t.Errorf("total = %d, want 400", total)
	}
}

func TestAggregate_NilPool(t *testing.T) {
	var blocks, got int
	Aggregate(nil, 10, 2, 0,
		func(acc *int, begin, end int) {
			blocks++
			*acc = end - begin
		},
		func(part int) { got += part },
	)

	if blocks != 1 || got != 10 {
		t.Errorf("blocks=%d got=%d, want 1 and 10", blocks, got)
	}
}

func TestAggregate_Empty(t *testing.T) {
	called := false
	Aggregate(Default(), 0, 3, 0,
		func(*int, int, int) { called = true },
		func(int) { called = true },
	)
	if called {
		t.Error("empty range should not call sum or merge")
	}
}

// =============================================================================
// ForRows Tests
// =============================================================================

func TestForRows(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	for _, height := range []int{1, 3, 16, 97} {
		rows := make([]atomic.Int32, height)
		ForRows(pool, height, func(y int) { rows[y].Add(1) })

		for y := range rows {
			if n := rows[y].Load(); n != 1 {
				t.Errorf("height %d: row %d visited %d times, want 1", height, y, n)
			}
		}
	}
}

func TestForRows_NilPool(t *testing.T) {
	var order []int
	ForRows(nil, 4, func(y int) { order = append(order, y) })

	for i, y := range order {
		if y != i {
			t.Fatalf("order = %v, want sequential", order)
		}
	}
	if len(order) != 4 {
		t.Errorf("visited %d rows, want 4", len(order))
	}
}

func BenchmarkAggregate(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	data := make([]float32, 3*512*512)
	for i := range data {
		data[i] = float32(i%255) / 255
	}

	for b.Loop() {
		var sum [3]float64
		Aggregate(pool, len(data), 3, [3]float64{},
			func(acc *[3]float64, begin, end int) {
				for i := begin; i < end; i += 3 {
					acc[0] += float64(data[i])
					acc[1] += float64(data[i+1])
					acc[2] += float64(data[i+2])
				}
			},
			func(part [3]float64) {
				sum[0] += part[0]
				sum[1] += part[1]
				sum[2] += part[2]
			},
		)
	}
}
