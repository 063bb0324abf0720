package convolve

import (
	"runtime"
	"sync"

	"edge-segmenter/internal/field"
)

// Engine applies an operator across a field using a fixed set of
// workers with static column-band partitioning. Each worker owns an
// exclusive, contiguous x-range of the output field and reads the
// shared input field, so the only synchronization is the final join.
type Engine struct {
	workers int
}

// NewEngine creates an engine with the given worker count; values
// below 1 select the available hardware parallelism.
func NewEngine(workers int) *Engine {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}
	return &Engine{workers: workers}
}

func (e *Engine) Workers() int {
	return e.workers
}

// Apply runs the operator over every coordinate of in and returns the
// freshly allocated result. The column range [0, width) splits into
// workers bands of ⌊width/workers⌋ columns, with the final band
// absorbing the remainder; bands may be empty when width < workers.
// Apply blocks until every worker has joined, so the result is fully
// materialized on return and passes stay strictly sequential.
func (e *Engine) Apply(in *field.Field, op Operator) *field.Field {
	out := field.New(in.Width, in.Height)
	if in.Width == 0 || in.Height == 0 {
		return out
	}

	bandSize := in.Width / e.workers

	var wg sync.WaitGroup
	for i := 0; i < e.workers; i++ {
		bandStart := bandSize * i
		bandEnd := bandStart + bandSize
		if i == e.workers-1 {
			bandEnd = in.Width
		}

		wg.Add(1)
		go func(startX, endX int) {
			defer wg.Done()
			for y := 0; y < in.Height; y++ {
				rowOffset := y * in.Width
				for x := startX; x < endX; x++ {
					out.Samples[rowOffset+x] = op.Sample(in, x, y)
				}
			}
		}(bandStart, bandEnd)
	}
	wg.Wait()

	return out
}
