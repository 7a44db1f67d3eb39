package tensor

import "fmt"

// LengthMismatchError is the error returned by elementwise operations over
// operand tensors of unequal chunk count. The operation fails before
// touching any chunk.
type LengthMismatchError struct {
	Expected, Actual int
}

func (e LengthMismatchError) Error() string {
	return fmt.Sprintf("tensor length mismatch: expected %d chunks, got %d", e.Expected, e.Actual)
}

// SchemeMismatchError is the error returned by operations over tensors from
// different parameter sets, or from a parameter set other than the one of
// the operator.
type SchemeMismatchError struct {
	Expected, Actual string
}

func (e SchemeMismatchError) Error() string {
	return fmt.Sprintf("parameter-set mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// EncodingOverflowError is the error returned when a chunk of values
// cannot be represented under the encoding parameters of the context.
type EncodingOverflowError struct {
	Chunk int
	Err   error
}

func (e EncodingOverflowError) Error() string {
	return fmt.Sprintf("values of chunk %d exceed the encoding capacity: %s", e.Chunk, e.Err)
}

func (e EncodingOverflowError) Unwrap() error {
	return e.Err
}

// ChunkError is the error returned when a scalar scheme operation fails for
// a specific chunk. It carries the chunk index so that the caller can
// correlate the failure with the corresponding logical-vector region.
type ChunkError struct {
	Index int
	Err   error
}

func (e ChunkError) Error() string {
	return fmt.Sprintf("chunk %d: %s", e.Index, e.Err)
}

func (e ChunkError) Unwrap() error {
	return e.Err
}

// DeserializationError is the error returned when a serialized chunk buffer
// is malformed. Position is the index of the buffer in the input sequence.
type DeserializationError struct {
	Position int
	Err      error
}

func (e DeserializationError) Error() string {
	return fmt.Sprintf("malformed chunk buffer at position %d: %s", e.Position, e.Err)
}

func (e DeserializationError) Unwrap() error {
	return e.Err
}
