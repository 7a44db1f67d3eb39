package scheme

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v5/core/rlwe"
	"github.com/tuneinsight/lattigo/v5/he/hefloat"
)

// Encoder encodes and decodes single slot-capacity-sized chunks of values.
// An Encoder is not safe for concurrent use; concurrent workers must each
// use their own ShallowCopy.
type Encoder struct {
	ctx *Context
	ecd *hefloat.Encoder
}

// NewEncoder creates a new scalar encoder for the context.
func NewEncoder(c *Context) *Encoder {
	return &Encoder{ctx: c, ecd: hefloat.NewEncoder(c.params)}
}

// Context returns the context of the encoder.
func (e *Encoder) Context() *Context {
	return e.ctx
}

// Encode encodes up to Slots() values into a new plaintext at the maximum
// level and the default scale of the context.
func (e *Encoder) Encode(values []float64) (*rlwe.Plaintext, error) {
	return e.EncodeAtScale(values, e.ctx.DefaultScale())
}

// EncodeAtScale encodes up to Slots() values into a new plaintext at the
// maximum level of the context and the given scale.
func (e *Encoder) EncodeAtScale(values []float64, scale rlwe.Scale) (*rlwe.Plaintext, error) {
	if len(values) > e.ctx.Slots() {
		return nil, fmt.Errorf("cannot encode %d values in %d slots", len(values), e.ctx.Slots())
	}
	pt := hefloat.NewPlaintext(e.ctx.params, e.ctx.params.MaxLevel())
	pt.Scale = scale
	if err := e.ecd.Encode(values, pt); err != nil {
		return nil, err
	}
	return pt, nil
}

// Decode decodes a plaintext into a slice of Slots() values.
func (e *Encoder) Decode(pt *rlwe.Plaintext) ([]float64, error) {
	values := make([]float64, e.ctx.Slots())
	if err := e.ecd.Decode(pt, values); err != nil {
		return nil, err
	}
	return values, nil
}

// ShallowCopy returns a copy of the encoder that can be used concurrently
// with the receiver.
func (e *Encoder) ShallowCopy() *Encoder {
	return &Encoder{ctx: e.ctx, ecd: e.ecd.ShallowCopy()}
}

// Encryptor encrypts single plaintext chunks. An Encryptor is not safe for
// concurrent use; concurrent workers must each use their own ShallowCopy.
type Encryptor struct {
	ctx *Context
	enc *rlwe.Encryptor
}

// NewEncryptor creates a new scalar encryptor for the context and the given
// encryption key (a public key or a secret key).
func NewEncryptor(c *Context, key rlwe.EncryptionKey) *Encryptor {
	return &Encryptor{ctx: c, enc: rlwe.NewEncryptor(c.params, key)}
}

// Context returns the context of the encryptor.
func (e *Encryptor) Context() *Context {
	return e.ctx
}

// EncryptNew encrypts a plaintext into a new ciphertext.
func (e *Encryptor) EncryptNew(pt *rlwe.Plaintext) (*rlwe.Ciphertext, error) {
	return e.enc.EncryptNew(pt)
}

// ShallowCopy returns a copy of the encryptor that can be used concurrently
// with the receiver.
func (e *Encryptor) ShallowCopy() *Encryptor {
	return &Encryptor{ctx: e.ctx, enc: e.enc.ShallowCopy()}
}

// Decryptor decrypts single ciphertext chunks. A Decryptor is not safe for
// concurrent use; concurrent workers must each use their own ShallowCopy.
type Decryptor struct {
	ctx *Context
	dec *rlwe.Decryptor
}

// NewDecryptor creates a new scalar decryptor for the context and secret key.
func NewDecryptor(c *Context, sk *rlwe.SecretKey) *Decryptor {
	return &Decryptor{ctx: c, dec: rlwe.NewDecryptor(c.params, sk)}
}

// Context returns the context of the decryptor.
func (d *Decryptor) Context() *Context {
	return d.ctx
}

// DecryptNew decrypts a ciphertext into a new plaintext.
func (d *Decryptor) DecryptNew(ct *rlwe.Ciphertext) *rlwe.Plaintext {
	return d.dec.DecryptNew(ct)
}

// ShallowCopy returns a copy of the decryptor that can be used concurrently
// with the receiver.
func (d *Decryptor) ShallowCopy() *Decryptor {
	return &Decryptor{ctx: d.ctx, dec: d.dec.ShallowCopy()}
}

// Evaluator exposes the scalar homomorphic operations of the scheme over
// single ciphertext chunks. It embeds the lattigo evaluator and is therefore
// not safe for concurrent use; concurrent workers must each use their own
// ShallowCopy.
type Evaluator struct {
	*hefloat.Evaluator
	ctx *Context
}

// NewEvaluator creates a new scalar evaluator for the context and the given
// evaluation key material (see KeySet.EvaluationKeySet).
func NewEvaluator(c *Context, evk rlwe.EvaluationKeySet) *Evaluator {
	return &Evaluator{Evaluator: hefloat.NewEvaluator(c.params, evk), ctx: c}
}

// Context returns the context of the evaluator.
func (e *Evaluator) Context() *Context {
	return e.ctx
}

// NegateNew returns the negation of the ciphertext in a new ciphertext.
func (e *Evaluator) NegateNew(ct *rlwe.Ciphertext) (*rlwe.Ciphertext, error) {
	return e.MulNew(ct, -1)
}

// RescaleNew divides the ciphertext by the last modulus in the chain and
// returns the result in a new ciphertext.
func (e *Evaluator) RescaleNew(ct *rlwe.Ciphertext) (*rlwe.Ciphertext, error) {
	out := ct.CopyNew()
	if err := e.Rescale(ct, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ShallowCopy returns a copy of the evaluator that can be used concurrently
// with the receiver.
func (e *Evaluator) ShallowCopy() *Evaluator {
	return &Evaluator{Evaluator: e.Evaluator.ShallowCopy(), ctx: e.ctx}
}
