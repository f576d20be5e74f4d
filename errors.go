package growbuf

import "errors"

var (
	// ErrInvalidCapacity is returned by New when the chunk capacity is not positive
	// or the chunk would not fit in the address space.
	ErrInvalidCapacity = errors.New("growbuf: invalid chunk capacity")

	// ErrAllocation reports that Memory could not supply a chunk.
	ErrAllocation = errors.New("growbuf: chunk allocation failed")

	// ErrGroupTooLarge reports a group write that can never fit in a single chunk.
	ErrGroupTooLarge = errors.New("growbuf: group larger than chunk capacity")
)
