package malloc

import "encoding/binary"

// addr identifies a byte offset within a substrate's backing region.
// The zero value is a null reference: no valid block payload ever
// starts at offset 0, since the heap's padding word and free-list
// heads occupy the low end of the region ahead of the prologue.
type addr uint32

// Ptr is the public, caller-facing form of a heap address: the value
// Malloc hands back and Free/Realloc accept. Nil is the null pointer.
type Ptr uint32

// Nil is the null Ptr, returned by Malloc on failure or a zero-size
// request and accepted by Free/Realloc as a no-op / pass-through.
const Nil Ptr = 0

// pack composes a header/footer tag word from a block size (a multiple
// of 8) and its allocation bit.
func pack(size uint32, allocated bool) uint32 {
	w := size &^ 0x7
	if allocated {
		w |= 1
	}
	return w
}

func unpackSize(word uint32) uint32 { return word &^ 0x7 }
func unpackAlloc(word uint32) bool  { return word&1 != 0 }

func (a *Allocator) getWord(p addr) uint32 {
	return binary.LittleEndian.Uint32(a.sub.buf[p : p+wordSize])
}

func (a *Allocator) putWord(p addr, v uint32) {
	binary.LittleEndian.PutUint32(a.sub.buf[p:p+wordSize], v)
}

// header returns the address of bp's header word.
func (a *Allocator) header(bp addr) addr { return bp - wordSize }

func (a *Allocator) size(bp addr) uint32  { return unpackSize(a.getWord(a.header(bp))) }
func (a *Allocator) isAlloc(bp addr) bool { return unpackAlloc(a.getWord(a.header(bp))) }

// footer returns the address of bp's footer word, given its current
// size.
func (a *Allocator) footer(bp addr) addr { return bp + addr(a.size(bp)) - 2*wordSize }

// nextBlock returns the address of the block physically following bp.
// When bp is the last real block, this is the epilogue's bp.
func (a *Allocator) nextBlock(bp addr) addr { return bp + addr(a.size(bp)) }

// prevBlock returns the address of the block physically preceding bp,
// read via the boundary tag duplicated in the previous block's footer.
func (a *Allocator) prevBlock(bp addr) addr {
	prevSize := unpackSize(a.getWord(bp - 2*wordSize))
	return bp - addr(prevSize)
}

// writeTags stamps both the header and footer of the block at bp with
// size and the given allocation bit.
func (a *Allocator) writeTags(bp addr, size uint32, allocated bool) {
	w := pack(size, allocated)
	a.putWord(a.header(bp), w)
	a.putWord(bp+addr(size)-2*wordSize, w)
}

// setAlloc flips only the allocation bit of bp's existing block,
// leaving its size untouched.
func (a *Allocator) setAlloc(bp addr, allocated bool) {
	a.writeTags(bp, a.size(bp), allocated)
}

// Free-block link words: the first two words of a free block's payload
// thread it into its size-class list (next, then prev).
func (a *Allocator) getNext(bp addr) addr    { return addr(a.getWord(bp)) }
func (a *Allocator) putNext(bp addr, v addr) { a.putWord(bp, uint32(v)) }
func (a *Allocator) getPrev(bp addr) addr    { return addr(a.getWord(bp + wordSize)) }
func (a *Allocator) putPrev(bp addr, v addr) { a.putWord(bp+wordSize, uint32(v)) }

// alignedBlockSize computes the aligned block size for a size-byte
// payload request: header + footer overhead, rounded up to 8, floored
// at the minimum block size.
func alignedBlockSize(size int) int {
	a := roundUp8(size + 2*wordSize)
	if a < minBlock {
		a = minBlock
	}
	return a
}
