// Copyright 2024 The Malloc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package malloc implements a dynamic storage allocator over a
// simulated, contiguous, grow-only heap region of bounded maximum
// size. It mirrors the classical C allocator interface — init, malloc,
// free, realloc — as methods on an Allocator value, so a process can
// own several independent heaps at once.
//
// The heap is a size-segregated, ordered free list with immediate
// boundary-tag coalescing: every block carries a header and footer
// word encoding its size and allocation bit, free blocks are threaded
// into one of thirteen size-class lists kept in ascending size order,
// and freeing a block immediately merges it with any free physical
// neighbor before reinserting it.
//
// Addresses are offsets into the simulated region (type Ptr), not
// native pointers — there is no unsafe.Pointer arithmetic anywhere in
// this package.
package malloc
