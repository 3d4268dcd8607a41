package malloc

import (
	"testing"

	"modernc.org/mathutil"
)

// Scenario 6: a long randomized malloc/free trace, driven by a
// seeded PRNG so failures reproduce, must never leave the heap or the
// free lists in a state CheckHeap/CheckList reject, and every live
// block's payload must still hold the byte it was stamped with.
func TestRandomizedTraceStaysConsistent(t *testing.T) {
	a := newHeap(t)

	rng, err := mathutil.NewFC32(1, 2000, false)
	if err != nil {
		t.Fatal(err)
	}

	type live struct {
		p     Ptr
		stamp byte
		n     int
	}
	var blocks []live

	const ops = 4000
	for i := 0; i < ops; i++ {
		switch {
		case len(blocks) == 0 || rng.Next()%3 != 0:
			n := rng.Next()%500 + 1
			p, err := a.Malloc(n)
			if err != nil {
				if err != ErrOutOfMemory {
					t.Fatalf("Malloc(%d): unexpected error %v", n, err)
				}
				continue
			}
			stamp := byte(rng.Next())
			buf := make([]byte, n)
			for j := range buf {
				buf[j] = stamp
			}
			a.Write(p, buf)
			blocks = append(blocks, live{p, stamp, n})

		default:
			idx := rng.Next() % len(blocks)
			b := blocks[idx]
			if err := a.Free(b.p); err != nil {
				t.Fatalf("Free(%d): %v", b.p, err)
			}
			blocks[idx] = blocks[len(blocks)-1]
			blocks = blocks[:len(blocks)-1]
		}

		if i%200 == 0 {
			if err := a.CheckHeap(false); err != nil {
				t.Fatalf("op %d: CheckHeap: %v", i, err)
			}
			if err := a.CheckList(false); err != nil {
				t.Fatalf("op %d: CheckList: %v", i, err)
			}
		}
	}

	for _, b := range blocks {
		got := a.Read(b.p, b.n)
		for j, v := range got {
			if v != b.stamp {
				t.Fatalf("block %d byte %d corrupted: got %x want %x", b.p, j, v, b.stamp)
			}
		}
	}
	if err := a.CheckHeap(false); err != nil {
		t.Fatalf("final CheckHeap: %v", err)
	}
	if err := a.CheckList(false); err != nil {
		t.Fatalf("final CheckList: %v", err)
	}
}
