package tensor

import "fmt"

// ChunkRange is a half-open index range [Start, End) over a logical vector,
// covered by a single chunk.
type ChunkRange struct {
	Start, End int
}

// Len returns the number of indices in the range.
func (r ChunkRange) Len() int {
	return r.End - r.Start
}

// Plan partitions a logical vector of length n into ceil(n/slots) chunk
// ranges covering [0, n), in order. All ranges have length slots, except
// possibly the last one, which may be shorter. A vector of length 0 yields
// no ranges.
//
// Plan panics if slots is not strictly positive, as the slot capacity is a
// fixed property of the scheme context.
func Plan(n, slots int) []ChunkRange {
	if slots <= 0 {
		panic(fmt.Sprintf("invalid slot capacity %d", slots))
	}
	if n <= 0 {
		return nil
	}
	m := (n + slots - 1) / slots
	ranges := make([]ChunkRange, m)
	for i := range ranges {
		ranges[i] = ChunkRange{Start: i * slots, End: (i + 1) * slots}
	}
	ranges[m-1].End = n
	return ranges
}
