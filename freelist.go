package malloc

import "modernc.org/mathutil"

// classIndex returns the size-class list a block of the given size
// belongs in: the position of its highest set bit, clamped to
// numClasses-1. Class n holds sizes in [2^n, 2^(n+1)); the last class
// (index numClasses-1, i.e. 4096) holds everything at or above 4096.
func (a *Allocator) classIndex(size uint32) int {
	n := mathutil.BitLen(int(size)) - 1
	if n < 0 {
		n = 0
	}
	if n > numClasses-1 {
		n = numClasses - 1
	}
	return n
}

func (a *Allocator) headWordAddr(class int) addr {
	return addr(headSlotsOffset + class*wordSize)
}

func (a *Allocator) head(class int) addr       { return addr(a.getWord(a.headWordAddr(class))) }
func (a *Allocator) setHead(class int, v addr) { a.putWord(a.headWordAddr(class), uint32(v)) }

// insert threads bp into its size class's doubly-linked list, in
// ascending order by size: it walks from the head, advancing while the
// candidate's size is smaller than bp's, and splices bp in before the
// first block of equal or greater size (or at the tail).
func (a *Allocator) insert(bp addr) {
	size := a.size(bp)
	class := a.classIndex(size)

	var prev addr
	cur := a.head(class)
	for cur != 0 && a.size(cur) < size {
		prev = cur
		cur = a.getNext(cur)
	}

	a.putPrev(bp, prev)
	a.putNext(bp, cur)
	if prev == 0 {
		a.setHead(class, bp)
	} else {
		a.putNext(prev, bp)
	}
	if cur != 0 {
		a.putPrev(cur, bp)
	}
}

// detach unlinks bp from whichever size-class list it belongs to. The
// caller must know bp is currently a free, listed block.
func (a *Allocator) detach(bp addr) {
	class := a.classIndex(a.size(bp))
	prev := a.getPrev(bp)
	next := a.getNext(bp)

	if prev == 0 {
		a.setHead(class, next)
	} else {
		a.putNext(prev, next)
	}
	if next != 0 {
		a.putPrev(next, prev)
	}
}

// findFit searches for the first free block of size >= asize, starting
// at asize's own size class and moving to higher classes as needed.
// Because each class is kept in ascending size order, the first hit
// found is the best fit available without crossing into another class.
func (a *Allocator) findFit(asize uint32) addr {
	for class := a.classIndex(asize); class < numClasses; class++ {
		for bp := a.head(class); bp != 0; bp = a.getNext(bp) {
			if a.size(bp) >= asize {
				return bp
			}
		}
	}
	return 0
}
