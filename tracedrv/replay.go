package tracedrv

import (
	"fmt"
	"time"

	"modernc.org/malloc"
)

// Report summarizes one trace replay: how much of the heap it touched,
// how full that heap ran, and how long the replay took. Utilization is
// the classical malloc-lab definition, bytes requested divided by bytes
// the heap actually grew to, so fragmentation and bootstrap/metadata
// overhead both pull it below 1.
type Report struct {
	PeakHeap       int
	BytesRequested int64
	Utilization    float64
	Elapsed        time.Duration
}

// Replay drives a, in order, through ops. Index values are scoped to
// one Replay call: a Malloc op records its resulting Ptr under Index,
// and a later Free or Realloc with the same Index looks that Ptr back
// up. Reusing an Index after freeing it (as a fresh Malloc) is allowed
// and simply overwrites the mapping.
func Replay(a *malloc.Allocator, ops []Op) (Report, error) {
	live := make(map[int]malloc.Ptr, len(ops))
	var requested int64

	start := time.Now()
	for i, op := range ops {
		switch op.Kind {
		case KindMalloc:
			p, err := a.Malloc(op.Size)
			if err != nil {
				return Report{}, fmt.Errorf("tracedrv: op %d: malloc(%d): %w", i, op.Size, err)
			}
			live[op.Index] = p
			requested += int64(op.Size)

		case KindFree:
			p, ok := live[op.Index]
			if !ok {
				return Report{}, fmt.Errorf("tracedrv: op %d: free of unknown index %d", i, op.Index)
			}
			if err := a.Free(p); err != nil {
				return Report{}, fmt.Errorf("tracedrv: op %d: free(%d): %w", i, op.Index, err)
			}
			delete(live, op.Index)

		case KindRealloc:
			p, ok := live[op.Index]
			if !ok {
				return Report{}, fmt.Errorf("tracedrv: op %d: realloc of unknown index %d", i, op.Index)
			}
			q, err := a.Realloc(p, op.Size)
			if err != nil {
				return Report{}, fmt.Errorf("tracedrv: op %d: realloc(%d, %d): %w", i, op.Index, op.Size, err)
			}
			live[op.Index] = q
			requested += int64(op.Size)
		}
	}
	elapsed := time.Since(start)

	peak := a.HeapSize()
	var util float64
	if peak > 0 {
		util = float64(requested) / float64(peak)
	}

	return Report{
		PeakHeap:       peak,
		BytesRequested: requested,
		Utilization:    util,
		Elapsed:        elapsed,
	}, nil
}
