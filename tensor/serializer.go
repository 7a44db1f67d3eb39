package tensor

import (
	"github.com/ChristianMct/hetensor/scheme"
	"github.com/tuneinsight/lattigo/v5/core/rlwe"
)

// MarshalChunks serializes the tensor into one self-contained byte buffer
// per chunk, in chunk order. Each buffer is the complete scalar
// serialization of one ciphertext and can be stored or transmitted on its
// own, e.g. to respect a transport's maximum message size. The layer
// defines no framing beyond the scalar serialization itself.
func (t *Ciphertext) MarshalChunks() ([][]byte, error) {
	bufs := make([][]byte, t.Len())
	for i, ct := range t.chunks {
		b, err := ct.MarshalBinary()
		if err != nil {
			return nil, ChunkError{Index: i, Err: err}
		}
		bufs[i] = b
	}
	return bufs, nil
}

// UnmarshalChunks deserializes an ordered sequence of chunk buffers against
// the given context, reconstructing the ciphertext tensor. A malformed
// buffer fails the whole call with a DeserializationError naming its
// position; no partial tensor is returned.
func UnmarshalChunks(c *scheme.Context, bufs [][]byte) (*Ciphertext, error) {
	chunks := make([]*rlwe.Ciphertext, len(bufs))
	for i, b := range bufs {
		ct, err := c.ReadCiphertext(b)
		if err != nil {
			return nil, DeserializationError{Position: i, Err: err}
		}
		chunks[i] = ct
	}
	return &Ciphertext{params: c.ID(), chunks: chunks}, nil
}
