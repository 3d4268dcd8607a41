package malloc

import (
	"fmt"
	"os"
)

// CheckHeap walks the heap by physical address from the prologue to
// the epilogue and verifies the structural invariants that must hold
// between any two completed public calls: header/footer agreement,
// 8-byte alignment, no two adjacent free blocks, and a well-formed
// prologue/epilogue pair. It is read-only and meant for debugging and
// tests, never the allocation hot path.
func (a *Allocator) CheckHeap(verbose bool) error {
	if a.sub == nil {
		return ErrNotInitialized
	}

	bp := a.heapListp
	if a.size(bp) != 2*wordSize || !a.isAlloc(bp) {
		return fmt.Errorf("malloc: bad prologue header at %d", bp)
	}
	fw := a.getWord(a.footer(bp))
	if unpackSize(fw) != 2*wordSize || !unpackAlloc(fw) {
		return fmt.Errorf("malloc: bad prologue footer at %d", bp)
	}

	for bp = a.nextBlock(bp); a.size(bp) > 0; bp = a.nextBlock(bp) {
		if verbose {
			fmt.Fprintf(os.Stderr, "malloc: block %d size=%d alloc=%v\n", bp, a.size(bp), a.isAlloc(bp))
		}
		if err := a.checkBlock(bp); err != nil {
			return err
		}
	}

	if !a.isAlloc(bp) {
		return fmt.Errorf("malloc: bad epilogue header at %d", bp)
	}
	if bp != a.sub.hi() {
		return fmt.Errorf("malloc: epilogue at %d is not the heap's high end %d", bp, a.sub.hi())
	}
	return nil
}

func (a *Allocator) checkBlock(bp addr) error {
	if uint32(bp)%alignment != 0 {
		return fmt.Errorf("malloc: block %d is not %d-byte aligned", bp, alignment)
	}
	h := a.getWord(a.header(bp))
	f := a.getWord(a.footer(bp))
	if h != f {
		return fmt.Errorf("malloc: header/footer mismatch at block %d", bp)
	}
	if a.size(bp) < minBlock {
		return fmt.Errorf("malloc: block %d smaller than the minimum block size", bp)
	}
	if !a.isAlloc(bp) {
		if !a.isAlloc(a.prevBlock(bp)) || !a.isAlloc(a.nextBlock(bp)) {
			return fmt.Errorf("malloc: block %d is free and adjacent to a free neighbor", bp)
		}
	}
	return nil
}

// CheckList walks every size-class list and verifies the doubly-linked
// list invariants: no allocated block is listed, sizes are
// non-decreasing from head to tail, every block sits in the class its
// own size maps to, and next/prev agree with each other.
func (a *Allocator) CheckList(verbose bool) error {
	if a.sub == nil {
		return ErrNotInitialized
	}

	for class := 0; class < numClasses; class++ {
		var prevSize uint32
		for bp := a.head(class); bp != 0; bp = a.getNext(bp) {
			if verbose {
				fmt.Fprintf(os.Stderr, "malloc: class %d block %d size=%d\n", class, bp, a.size(bp))
			}
			if a.isAlloc(bp) {
				return fmt.Errorf("malloc: allocated block %d found in free list class %d", bp, class)
			}
			if got := a.classIndex(a.size(bp)); got != class {
				return fmt.Errorf("malloc: block %d (size %d) misfiled in class %d, belongs in %d", bp, a.size(bp), class, got)
			}
			if a.size(bp) < prevSize {
				return fmt.Errorf("malloc: class %d is not size-ordered at block %d", class, bp)
			}
			if next := a.getNext(bp); next != 0 && a.getPrev(next) != bp {
				return fmt.Errorf("malloc: broken doubly-linked list around block %d", bp)
			}
			prevSize = a.size(bp)
		}
	}
	return nil
}
