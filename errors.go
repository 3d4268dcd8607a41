package malloc

import "errors"

// ErrOutOfMemory is returned when growing the simulated heap would
// exceed MaxHeap. It propagates from Malloc and Realloc as a nil Ptr.
var ErrOutOfMemory = errors.New("malloc: out of memory")

// ErrNotInitialized is returned by Malloc, Free and Realloc when called
// on an Allocator that has not had Init called on it yet.
var ErrNotInitialized = errors.New("malloc: allocator not initialized")
