package tensor

import (
	"fmt"
	"math"

	"github.com/ChristianMct/hetensor/scheme"
	"github.com/tuneinsight/lattigo/v5/core/rlwe"
)

// Encoder converts logical vectors to and from plaintext tensors, by
// chunking them at the slot capacity of the context and delegating each
// chunk to the scalar encoder.
type Encoder struct {
	ecd  *scheme.Encoder
	opts options
}

// NewEncoder creates a new tensor encoder on top of the given scalar
// encoder.
func NewEncoder(ecd *scheme.Encoder, opts ...Option) *Encoder {
	return &Encoder{ecd: ecd, opts: newOptions(opts)}
}

// Encode encodes a logical vector of arbitrary length into a plaintext
// tensor of ceil(len(values)/Slots()) chunks, at the default scale of the
// context. The last chunk is zero-padded up to the slot capacity. An empty
// vector yields a tensor of zero chunks.
func (e *Encoder) Encode(values []float64) (*Plaintext, error) {
	return e.EncodeAtScale(values, e.ecd.Context().DefaultScale())
}

// EncodeAtScale is Encode with an explicit encoding scale.
func (e *Encoder) EncodeAtScale(values []float64, scale rlwe.Scale) (*Plaintext, error) {
	c := e.ecd.Context()
	slots := c.Slots()
	ranges := Plan(len(values), slots)

	chunks := make([]*rlwe.Plaintext, len(ranges))
	ecds := e.workers()
	err := forEachChunk(len(ranges), e.opts.degree, func(w, i int) error {
		r := ranges[i]
		chunk := values[r.Start:r.End]
		if r.Len() < slots {
			padded := make([]float64, slots)
			copy(padded, chunk)
			chunk = padded
		}
		for j, v := range chunk {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return EncodingOverflowError{Chunk: i, Err: fmt.Errorf("value at offset %d is not finite", j)}
			}
		}
		pt, err := ecds(w).EncodeAtScale(chunk, scale)
		if err != nil {
			return EncodingOverflowError{Chunk: i, Err: err}
		}
		chunks[i] = pt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Plaintext{params: c.ID(), chunks: chunks}, nil
}

// Decode decodes a plaintext tensor into a vector of Len()*Slots() values,
// by decoding each chunk and concatenating the outputs in chunk order.
//
// The returned vector always has the full padded length: the zero padding
// introduced by Encode on the last chunk is not truncated, as the tensor
// does not record the logical length of the vector it was encoded from.
// Callers needing the original length must track it out of band.
func (e *Encoder) Decode(pt *Plaintext) ([]float64, error) {
	c := e.ecd.Context()
	if pt.params != c.ID() {
		return nil, SchemeMismatchError{Expected: string(c.ID()), Actual: string(pt.params)}
	}
	slots := c.Slots()
	out := make([]float64, pt.Len()*slots)
	ecds := e.workers()
	err := forEachChunk(pt.Len(), e.opts.degree, func(w, i int) error {
		values, err := ecds(w).Decode(pt.chunks[i])
		if err != nil {
			return ChunkError{Index: i, Err: err}
		}
		copy(out[i*slots:], values)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// workers returns an accessor for per-worker scalar encoders. Worker 0 uses
// the encoder itself; the others are created on first use, which is safe
// because each worker index is owned by a single goroutine.
func (e *Encoder) workers() func(w int) *scheme.Encoder {
	ecds := make([]*scheme.Encoder, e.opts.degree)
	return func(w int) *scheme.Encoder {
		if w == 0 {
			return e.ecd
		}
		if ecds[w] == nil {
			ecds[w] = e.ecd.ShallowCopy()
		}
		return ecds[w]
	}
}
