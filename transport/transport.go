// Package transport defines a client-server transport for chunked
// ciphertext tensors. This transport is based on a gRPC streaming service
// that ships one serialized ciphertext chunk per message, so that tensors
// larger than a single message size limit can be moved between nodes.
package transport

import (
	"context"
	"net"
	"time"

	"github.com/ChristianMct/hetensor"
	"golang.org/x/crypto/blake2b"
)

const (
	MaxMsgSize           = 1024 * 1024 * 32
	ClientConnectTimeout = 3 * time.Second
)

// Dialer is a function that returns a net.Conn to the provided address.
type Dialer = func(c context.Context, addr string) (net.Conn, error)

// Tensor is the wire-level representation of a ciphertext tensor: its
// identifier, the number of scalar values it encodes and its serialized
// chunks in index order. LogicalLen travels with the tensor because the
// chunks themselves only carry the padded slot-aligned values.
type Tensor struct {
	ID         hetensor.TensorID
	LogicalLen int
	Chunks     [][]byte
}

// TensorHandler is the interface the server delegates tensor requests to.
// The implementation is provided by the service using the transport, and
// the server calls it once per completed stream.
type TensorHandler interface {
	PutTensor(ctx context.Context, t Tensor) error
	GetTensor(ctx context.Context, id hetensor.TensorID) (*Tensor, error)
}

// chunkDigest returns the digest that accompanies a chunk on the wire.
func chunkDigest(data []byte) []byte {
	h := blake2b.Sum256(data)
	return h[:]
}
