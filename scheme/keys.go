package scheme

import (
	"context"
	"fmt"

	"github.com/tuneinsight/lattigo/v5/core/rlwe"
)

// PublicKeyProvider is an interface for retrieving public key material.
// It is not specified whether implementations should block or return an
// error if the keys are not available.
type PublicKeyProvider interface {
	// GetPublicKey returns the encryption public key.
	GetPublicKey(ctx context.Context) (*rlwe.PublicKey, error)
	// GetGaloisKey returns the galois key for the given Galois element.
	GetGaloisKey(ctx context.Context, galEl uint64) (*rlwe.GaloisKey, error)
	// GetRelinearizationKey returns the relinearization key.
	GetRelinearizationKey(ctx context.Context) (*rlwe.RelinearizationKey, error)
}

// KeySet holds the key material for a context: the secret key and the
// public key material derived from it. The galois keys are indexed by
// Galois element.
type KeySet struct {
	Sk  *rlwe.SecretKey
	Pk  *rlwe.PublicKey
	Rlk *rlwe.RelinearizationKey
	Gks map[uint64]*rlwe.GaloisKey
}

// GenKeySet generates a fresh key set for the context, with galois keys
// enabling rotations by the given steps.
func GenKeySet(c *Context, rotations ...int) *KeySet {
	kgen := rlwe.NewKeyGenerator(c.params)
	sk, pk := kgen.GenKeyPairNew()

	gks := make(map[uint64]*rlwe.GaloisKey, len(rotations))
	for _, k := range rotations {
		galEl := c.params.GaloisElement(k)
		gks[galEl] = kgen.GenGaloisKeyNew(galEl, sk)
	}

	return &KeySet{
		Sk:  sk,
		Pk:  pk,
		Rlk: kgen.GenRelinearizationKeyNew(sk),
		Gks: gks,
	}
}

// EvaluationKeySet returns the key set as a lattigo evaluation key set, as
// expected by the evaluator constructors.
func (ks *KeySet) EvaluationKeySet() rlwe.EvaluationKeySet {
	gks := make([]*rlwe.GaloisKey, 0, len(ks.Gks))
	for _, gk := range ks.Gks {
		gks = append(gks, gk)
	}
	return rlwe.NewMemEvaluationKeySet(ks.Rlk, gks...)
}

// GetPublicKey implements PublicKeyProvider.
func (ks *KeySet) GetPublicKey(_ context.Context) (*rlwe.PublicKey, error) {
	if ks.Pk == nil {
		return nil, fmt.Errorf("no public key in this key set")
	}
	return ks.Pk, nil
}

// GetGaloisKey implements PublicKeyProvider.
func (ks *KeySet) GetGaloisKey(_ context.Context, galEl uint64) (*rlwe.GaloisKey, error) {
	gk, has := ks.Gks[galEl]
	if !has {
		return nil, fmt.Errorf("no galois key for element %d in this key set", galEl)
	}
	return gk, nil
}

// GetRelinearizationKey implements PublicKeyProvider.
func (ks *KeySet) GetRelinearizationKey(_ context.Context) (*rlwe.RelinearizationKey, error) {
	if ks.Rlk == nil {
		return nil, fmt.Errorf("no relinearization key in this key set")
	}
	return ks.Rlk, nil
}
