package malloc

// place transitions a chosen, already-detached free block bp of size
// f to allocated, for a request needing asize bytes. When the
// remainder (f - asize) is itself a legal block (>= minBlock), bp is
// split; otherwise the whole block is consumed.
//
// Side selection on split: requests under 96 bytes are carved from the
// low side of bp, leaving the free remainder on the high side; larger
// requests are carved from the high side, leaving the remainder low.
// Workloads that alternate small and large allocations keep the small
// ones clustered on one side this way, leaving a single large free run
// on the other instead of fragmenting it.
func (a *Allocator) place(bp addr, asize uint32) addr {
	fsize := a.size(bp)
	if fsize-asize < minBlock {
		a.writeTags(bp, fsize, true)
		return bp
	}

	if asize < 96 {
		a.writeTags(bp, asize, true)
		rem := a.nextBlock(bp)
		a.writeTags(rem, fsize-asize, false)
		a.insert(rem)
		return bp
	}

	rem := bp
	a.writeTags(rem, fsize-asize, false)
	allocated := a.nextBlock(rem)
	a.writeTags(allocated, asize, true)
	a.insert(rem)
	return allocated
}

// placeWhole marks bp's entire block allocated without considering a
// split. It is used by Realloc, which never splits a grown-in-place
// block (see allocator.go).
func (a *Allocator) placeWhole(bp addr) addr {
	a.writeTags(bp, a.size(bp), true)
	return bp
}
