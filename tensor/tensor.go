// Package tensor implements the chunked tensor layer of the hetensor
// framework: the batching logic that lifts the scalar encode, encrypt,
// decrypt, evaluate and serialize primitives of the scheme package over
// ordered sequences of slot-capacity-sized chunks.
//
// A tensor models a logical vector of arbitrary length as M = ceil(N/S)
// independent scheme-native values, where S is the slot capacity of the
// context. Chunk i always holds the logical slice [i*S, (i+1)*S); the last
// chunk is zero-padded up to S. All chunks of a tensor are valid under a
// single parameter set, and all operations over tensors are value-to-value:
// operands are never mutated.
//
// Chunk-level work is data-parallel. The encoder, encryptor, decryptor and
// evaluator types fan chunk operations out over a bounded number of workers
// (see WithParallelism) and collect results in chunk order. Every
// multi-chunk operation is all-or-nothing: the first chunk to fail aborts
// the call and no partial tensor is returned.
package tensor

import (
	"runtime"

	"github.com/ChristianMct/hetensor/scheme"
	"github.com/tuneinsight/lattigo/v5/core/rlwe"
)

// Plaintext is an ordered sequence of plaintext chunks representing one
// logical vector.
type Plaintext struct {
	params scheme.ParamsID
	chunks []*rlwe.Plaintext
}

// Ciphertext is an ordered sequence of ciphertext chunks representing one
// encrypted logical vector.
type Ciphertext struct {
	params scheme.ParamsID
	chunks []*rlwe.Ciphertext
}

// NewPlaintext creates a plaintext tensor from scheme-native chunks created
// under the given context. The chunk slice is not copied.
func NewPlaintext(c *scheme.Context, chunks []*rlwe.Plaintext) *Plaintext {
	return &Plaintext{params: c.ID(), chunks: chunks}
}

// NewCiphertext creates a ciphertext tensor from scheme-native chunks
// created under the given context. The chunk slice is not copied.
func NewCiphertext(c *scheme.Context, chunks []*rlwe.Ciphertext) *Ciphertext {
	return &Ciphertext{params: c.ID(), chunks: chunks}
}

// Len returns the number of chunks in the tensor.
func (t *Plaintext) Len() int {
	return len(t.chunks)
}

// ParamsID returns the identifier of the parameter set the tensor was
// created under.
func (t *Plaintext) ParamsID() scheme.ParamsID {
	return t.params
}

// Chunk returns the i-th plaintext chunk. The returned value is shared with
// the tensor and must be treated as read-only.
func (t *Plaintext) Chunk(i int) *rlwe.Plaintext {
	return t.chunks[i]
}

// Len returns the number of chunks in the tensor.
func (t *Ciphertext) Len() int {
	return len(t.chunks)
}

// ParamsID returns the identifier of the parameter set the tensor was
// created under.
func (t *Ciphertext) ParamsID() scheme.ParamsID {
	return t.params
}

// Chunk returns the i-th ciphertext chunk. The returned value is shared with
// the tensor and must be treated as read-only.
func (t *Ciphertext) Chunk(i int) *rlwe.Ciphertext {
	return t.chunks[i]
}

type options struct {
	degree int
}

// Option configures the chunk-level parallelism of the tensor operations.
type Option func(*options)

// WithParallelism bounds the number of chunks processed concurrently by the
// receiver. A degree of 1 disables parallelism. The default is the number of
// available processor cores.
func WithParallelism(degree int) Option {
	return func(o *options) {
		if degree > 0 {
			o.degree = degree
		}
	}
}

func newOptions(opts []Option) options {
	o := options{degree: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
