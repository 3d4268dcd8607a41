package malloc

import "testing"

func TestClassIndexBoundaries(t *testing.T) {
	a := newHeap(t)
	cases := []struct {
		size uint32
		want int
	}{
		{16, 4},
		{31, 4},
		{32, 5},
		{4095, 11},
		{4096, 12},
		{1 << 20, 12}, // clamps at the last class regardless of how far above 4096
	}
	for _, c := range cases {
		if got := a.classIndex(c.size); got != c.want {
			t.Errorf("classIndex(%d) = %d, want %d", c.size, got, c.want)
		}
	}
}

// Insert must keep each class's list sorted ascending by size, and
// detach must remove exactly the requested node without disturbing its
// neighbors' links.
func TestInsertKeepsAscendingOrderAndDetachIsPrecise(t *testing.T) {
	a := newHeap(t)

	// Separate each measured block with allocated "walls" so freeing
	// them doesn't trigger coalescing between the measurements
	// themselves — each must land in the free list as its own node.
	// place carves small blocks from the low side of a free run and
	// blocks of 96 bytes or more from the high side, so each wall is a
	// pair: a small one (low side) and a large one (high side).
	wall := func() {
		for _, w := range []int{8, 96} {
			if _, err := a.Malloc(w); err != nil {
				t.Fatalf("wall malloc: %v", err)
			}
		}
	}
	sizes := []int{256, 64, 192, 128}
	var blocks []Ptr
	for _, s := range sizes {
		wall()
		p, err := a.Malloc(s)
		if err != nil {
			t.Fatalf("Malloc(%d): %v", s, err)
		}
		blocks = append(blocks, p)
	}
	wall()
	for _, p := range blocks {
		if err := a.Free(p); err != nil {
			t.Fatal(err)
		}
	}

	// 128- and 192-byte requests land in the same size class, giving a
	// real two-element ordering to check.
	class := a.classIndex(uint32(alignedBlockSize(128)))
	var gotOrder []uint32
	for bp := a.head(class); bp != 0; bp = a.getNext(bp) {
		if a.classIndex(a.size(bp)) != class {
			continue
		}
		gotOrder = append(gotOrder, a.size(bp))
	}
	for i := 1; i < len(gotOrder); i++ {
		if gotOrder[i] < gotOrder[i-1] {
			t.Fatalf("class %d not ascending: %v", class, gotOrder)
		}
	}

	// Detach the second-from-head node of some class and confirm the
	// list is still consistent both directions.
	mid := addr(blocks[2])
	midClass := a.classIndex(a.size(mid))
	a.detach(mid)
	for bp := a.head(midClass); bp != 0; bp = a.getNext(bp) {
		if bp == mid {
			t.Fatalf("detach(%d) left it reachable from class %d", mid, midClass)
		}
		if next := a.getNext(bp); next != 0 && a.getPrev(next) != bp {
			t.Fatalf("detach broke doubly-linked list at %d", bp)
		}
	}
}

func TestFindFitAdvancesToNonEmptyClass(t *testing.T) {
	a := newHeap(t)
	// The class for size 4096 may be empty; findFit(4096) must still
	// find the seed free block's class if nothing smaller fits, or
	// correctly report no fit by extending. Here we just verify it
	// never returns a block smaller than requested.
	// extendHeap inserts the new free block itself.
	if _, err := a.extendHeap(8192); err != nil {
		t.Fatal(err)
	}

	got := a.findFit(128)
	if got == 0 {
		t.Fatal("findFit(128) found nothing despite an 8192-byte free block")
	}
	if a.size(got) < 128 {
		t.Fatalf("findFit returned a block smaller than requested: %d", a.size(got))
	}
}
