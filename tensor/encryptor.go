package tensor

import (
	"github.com/ChristianMct/hetensor/scheme"
	"github.com/tuneinsight/lattigo/v5/core/rlwe"
)

// Encryptor lifts the scalar encrypt primitive over plaintext tensors.
type Encryptor struct {
	enc  *scheme.Encryptor
	opts options
}

// NewEncryptor creates a new tensor encryptor on top of the given scalar
// encryptor.
func NewEncryptor(enc *scheme.Encryptor, opts ...Option) *Encryptor {
	return &Encryptor{enc: enc, opts: newOptions(opts)}
}

// Encrypt encrypts every chunk of the plaintext tensor independently, in
// order. The call is all-or-nothing: the first chunk to fail aborts it and
// the error reports the failing chunk index.
func (e *Encryptor) Encrypt(pt *Plaintext) (*Ciphertext, error) {
	c := e.enc.Context()
	if pt.params != c.ID() {
		return nil, SchemeMismatchError{Expected: string(c.ID()), Actual: string(pt.params)}
	}
	chunks := make([]*rlwe.Ciphertext, pt.Len())
	encs := make([]*scheme.Encryptor, e.opts.degree)
	err := forEachChunk(pt.Len(), e.opts.degree, func(w, i int) error {
		enc := e.enc
		if w > 0 {
			if encs[w] == nil {
				encs[w] = e.enc.ShallowCopy()
			}
			enc = encs[w]
		}
		ct, err := enc.EncryptNew(pt.chunks[i])
		if err != nil {
			return ChunkError{Index: i, Err: err}
		}
		chunks[i] = ct
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Ciphertext{params: pt.params, chunks: chunks}, nil
}

// Decryptor lifts the scalar decrypt primitive over ciphertext tensors.
type Decryptor struct {
	dec  *scheme.Decryptor
	opts options
}

// NewDecryptor creates a new tensor decryptor on top of the given scalar
// decryptor.
func NewDecryptor(dec *scheme.Decryptor, opts ...Option) *Decryptor {
	return &Decryptor{dec: dec, opts: newOptions(opts)}
}

// Decrypt decrypts every chunk of the ciphertext tensor independently, in
// order.
func (d *Decryptor) Decrypt(ct *Ciphertext) (*Plaintext, error) {
	c := d.dec.Context()
	if ct.params != c.ID() {
		return nil, SchemeMismatchError{Expected: string(c.ID()), Actual: string(ct.params)}
	}
	chunks := make([]*rlwe.Plaintext, ct.Len())
	decs := make([]*scheme.Decryptor, d.opts.degree)
	err := forEachChunk(ct.Len(), d.opts.degree, func(w, i int) error {
		dec := d.dec
		if w > 0 {
			if decs[w] == nil {
				decs[w] = d.dec.ShallowCopy()
			}
			dec = decs[w]
		}
		chunks[i] = dec.DecryptNew(ct.chunks[i])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Plaintext{params: ct.params, chunks: chunks}, nil
}
