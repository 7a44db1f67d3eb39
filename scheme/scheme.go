// Package scheme wraps the scalar (single-ciphertext) primitives of the
// lattigo CKKS implementation behind the narrow surface consumed by the
// tensor package: encode, encrypt, decrypt, evaluate, serialize.
//
// The package does not reimplement any cryptographic operation; it only
// fixes the parameterization, gives a context an identity that can be
// compared across tensors, and exposes per-worker copies of the non
// thread-safe lattigo objects.
package scheme

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v5/core/rlwe"
	"github.com/tuneinsight/lattigo/v5/he/hefloat"
	"golang.org/x/crypto/blake2b"
)

// ParamsID is the identifier of a parameter set. Two contexts created from
// the same parameter literal have the same ParamsID, and all chunks of a
// tensor are valid under a single ParamsID.
type ParamsID string

// Context holds the fixed scheme configuration under which plaintexts and
// ciphertexts are created, evaluated and compared. It is read-only after
// creation and safe for concurrent use.
type Context struct {
	params hefloat.Parameters
	id     ParamsID
}

// NewContext creates a new scheme context from the given CKKS parameter
// literal.
func NewContext(literal hefloat.ParametersLiteral) (*Context, error) {
	params, err := hefloat.NewParametersFromLiteral(literal)
	if err != nil {
		return nil, fmt.Errorf("could not create parameters: %w", err)
	}
	return newContext(params)
}

func newContext(params hefloat.Parameters) (*Context, error) {
	pb, err := params.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("could not marshal parameters: %w", err)
	}
	h := blake2b.Sum256(pb)
	return &Context{params: params, id: ParamsID(fmt.Sprintf("%x", h[:8]))}, nil
}

// Params returns the lattigo parameters of the context.
func (c *Context) Params() hefloat.Parameters {
	return c.params
}

// ID returns the parameter-set identifier of the context.
func (c *Context) ID() ParamsID {
	return c.id
}

// Slots returns the slot capacity of the context: the number of scalar
// values one plaintext or ciphertext can carry.
func (c *Context) Slots() int {
	return c.params.MaxSlots()
}

// DefaultScale returns the default encoding scale of the context.
func (c *Context) DefaultScale() rlwe.Scale {
	return c.params.DefaultScale()
}

// ReadCiphertext deserializes a single ciphertext from its binary
// representation and checks that it is valid under the context.
func (c *Context) ReadCiphertext(data []byte) (*rlwe.Ciphertext, error) {
	ct := new(rlwe.Ciphertext)
	if err := ct.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("could not unmarshal ciphertext: %w", err)
	}
	if ct.Level() > c.params.MaxLevel() {
		return nil, fmt.Errorf("ciphertext level %d exceeds parameter maximum %d", ct.Level(), c.params.MaxLevel())
	}
	return ct, nil
}
