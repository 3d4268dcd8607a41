package malloc

const (
	wordSize  = 4 // bytes per header/footer/link word
	alignment = 8 // payload alignment, in bytes
	minBlock  = 16 // header + footer + 2 link words

	// chunkSize is how far the heap grows on a failed fit search, absent
	// a larger request (spec: extend by max(asize, 4096)).
	chunkSize = 1 << 12

	// numClasses is the number of size-class list heads. Class n holds
	// blocks of size in [2^n, 2^(n+1)), save the last class which holds
	// everything of size >= 4096 (any n that would exceed it clamps to
	// numClasses-1).
	numClasses = 13

	headSlotsOffset = wordSize            // free-list heads start right after the padding word
	headSlotsBytes  = numClasses * wordSize

	// prologuePad keeps the prologue's bp on the 8-byte grid: the
	// padding word plus the 13 head words (52 bytes) already sums to a
	// multiple of 8, but bp sits one word past the header, so without
	// this pad the prologue (and everything physically after it) would
	// be misaligned.
	prologuePad    = wordSize
	prologueOffset = headSlotsOffset + headSlotsBytes + prologuePad // byte offset of the prologue header

	// bootstrapBytes is the size of the fixed heap prefix written by
	// Init: the padding word, the free-list heads, the alignment pad,
	// the 8-byte prologue block and the epilogue header. It must itself
	// be a multiple of 8 — substrate.extend would otherwise silently
	// round it up, leaving the epilogue header short of the buffer's
	// actual end and the first real extension landing past it instead
	// of reusing its slot.
	bootstrapBytes = prologueOffset + 2*wordSize + wordSize

	// MaxHeap bounds the simulated heap's grow-only region.
	MaxHeap = 20 << 20
)

// roundUp8 rounds n up to the next multiple of 8.
func roundUp8(n int) int { return (n + 7) &^ 7 }
