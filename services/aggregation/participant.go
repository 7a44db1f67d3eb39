package aggregation

import (
	"fmt"

	"github.com/ChristianMct/hetensor"
	"github.com/ChristianMct/hetensor/scheme"
	"github.com/ChristianMct/hetensor/tensor"
	"github.com/ChristianMct/hetensor/transport"
	"github.com/tuneinsight/lattigo/v5/core/rlwe"
)

// Participant is the client-side of the aggregation protocol. It prepares
// the encrypted updates that are shipped to the aggregator, and recovers
// the cleartext result of a round.
type Participant struct {
	id  hetensor.NodeID
	sc  *scheme.Context
	ecd *tensor.Encoder
	enc *tensor.Encryptor
}

// NewParticipant creates a new participant encrypting its updates under
// the given public key.
func NewParticipant(id hetensor.NodeID, sc *scheme.Context, pk *rlwe.PublicKey, opts ...tensor.Option) *Participant {
	return &Participant{
		id:  id,
		sc:  sc,
		ecd: tensor.NewEncoder(scheme.NewEncoder(sc), opts...),
		enc: tensor.NewEncryptor(scheme.NewEncryptor(sc, pk), opts...),
	}
}

// EncryptUpdate encodes and encrypts an update vector into a wire-level
// tensor ready to be shipped to the aggregator.
func (p *Participant) EncryptUpdate(tid hetensor.TensorID, values []float64) (transport.Tensor, error) {
	pt, err := p.ecd.Encode(values)
	if err != nil {
		return transport.Tensor{}, fmt.Errorf("could not encode update %s: %w", tid, err)
	}
	ct, err := p.enc.Encrypt(pt)
	if err != nil {
		return transport.Tensor{}, fmt.Errorf("could not encrypt update %s: %w", tid, err)
	}
	bufs, err := ct.MarshalChunks()
	if err != nil {
		return transport.Tensor{}, fmt.Errorf("could not serialize update %s: %w", tid, err)
	}
	return transport.Tensor{ID: tid, LogicalLen: len(values), Chunks: bufs}, nil
}

// DecryptResult decrypts a wire-level tensor and returns its values,
// trimmed to the logical length of the tensor.
func (p *Participant) DecryptResult(sk *rlwe.SecretKey, t transport.Tensor) ([]float64, error) {
	ct, err := tensor.UnmarshalChunks(p.sc, t.Chunks)
	if err != nil {
		return nil, fmt.Errorf("could not deserialize tensor %s: %w", t.ID, err)
	}
	pt, err := tensor.NewDecryptor(scheme.NewDecryptor(p.sc, sk)).Decrypt(ct)
	if err != nil {
		return nil, fmt.Errorf("could not decrypt tensor %s: %w", t.ID, err)
	}
	values, err := p.ecd.Decode(pt)
	if err != nil {
		return nil, fmt.Errorf("could not decode tensor %s: %w", t.ID, err)
	}
	if t.LogicalLen > len(values) {
		return nil, fmt.Errorf("tensor %s declares %d values but decodes to %d", t.ID, t.LogicalLen, len(values))
	}
	return values[:t.LogicalLen], nil
}
