package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/ChristianMct/hetensor"
	"github.com/ChristianMct/hetensor/transport/pb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"
	"google.golang.org/grpc/credentials/insecure"
)

// TensorClient is a client for the tensor transport. It is used by
// participant nodes to ship their ciphertext tensors to the aggregator and
// to fetch aggregated tensors back.
type TensorClient struct {
	id, helperID  hetensor.NodeID
	helperAddress hetensor.NodeAddress

	*grpc.ClientConn
	pb.TensorTransportClient
	statsHandler
}

// NewTensorClient creates a new tensor transport client.
func NewTensorClient(id, helperID hetensor.NodeID, helperAddress hetensor.NodeAddress) *TensorClient {
	tc := new(TensorClient)
	tc.id = id
	tc.helperID = helperID
	tc.helperAddress = helperAddress
	return tc
}

// Connect establishes a connection to the tensor transport server.
func (tc *TensorClient) Connect() error {
	return tc.ConnectWithDialer(func(_ context.Context, _ string) (net.Conn, error) {
		return net.Dial("tcp", tc.helperAddress.String())
	})
}

// ConnectWithDialer establishes a connection to the tensor transport server
// using the provided dialer.
func (tc *TensorClient) ConnectWithDialer(dialer Dialer) error {
	opts := []grpc.DialOption{
		grpc.WithContextDialer(dialer),
		grpc.WithBlock(),
		grpc.WithConnectParams(grpc.ConnectParams{Backoff: backoff.DefaultConfig, MinConnectTimeout: 1 * time.Second}),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(MaxMsgSize),
			grpc.MaxCallSendMsgSize(MaxMsgSize)),
		grpc.WithStatsHandler(&tc.statsHandler),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}

	ctx, cancel := context.WithTimeout(context.Background(), ClientConnectTimeout)
	defer cancel()
	var err error
	tc.ClientConn, err = grpc.DialContext(ctx, string(tc.helperAddress), opts...)
	if err != nil {
		return fmt.Errorf("fail establish connection to the helper at tcp://%s: %w", tc.helperAddress, err)
	}

	tc.TensorTransportClient = pb.NewTensorTransportClient(tc.ClientConn)

	return nil
}

// Disconnect closes the connection to the server.
func (tc *TensorClient) Disconnect() error {
	return tc.ClientConn.Close()
}

// PutTensor streams the tensor to the server, one chunk per message, and
// waits for the server's acknowledgment of the complete tensor.
func (tc *TensorClient) PutTensor(ctx context.Context, t Tensor) error {
	stream, err := tc.TensorTransportClient.PutTensor(getOutgoingContext(ctx, tc.id))
	if err != nil {
		return fmt.Errorf("could not open stream for tensor %s: %w", t.ID, err)
	}

	if len(t.Chunks) == 0 {
		err = stream.Send(&pb.CiphertextChunk{
			TensorId:   string(t.ID),
			LogicalLen: uint64(t.LogicalLen),
		})
		if err != nil {
			return fmt.Errorf("could not send empty tensor %s: %w", t.ID, err)
		}
	}

	for i, data := range t.Chunks {
		err := stream.Send(&pb.CiphertextChunk{
			TensorId:   string(t.ID),
			Index:      uint32(i),
			Total:      uint32(len(t.Chunks)),
			LogicalLen: uint64(t.LogicalLen),
			Data:       data,
			Digest:     chunkDigest(data),
		})
		if err != nil {
			return fmt.Errorf("could not send chunk %d of tensor %s: %w", i, t.ID, err)
		}
	}

	ack, err := stream.CloseAndRecv()
	if err != nil {
		return fmt.Errorf("tensor %s not acknowledged: %w", t.ID, err)
	}
	if int(ack.Chunks) != len(t.Chunks) {
		return fmt.Errorf("server acknowledged %d of %d chunks for tensor %s", ack.Chunks, len(t.Chunks), t.ID)
	}
	return nil
}

// GetTensor fetches the tensor with the given id from the server.
func (tc *TensorClient) GetTensor(ctx context.Context, id hetensor.TensorID) (*Tensor, error) {
	stream, err := tc.TensorTransportClient.GetTensor(getOutgoingContext(ctx, tc.id), &pb.TensorRequest{TensorId: string(id)})
	if err != nil {
		return nil, fmt.Errorf("could not open stream for tensor %s: %w", id, err)
	}

	t := &Tensor{ID: id, Chunks: make([][]byte, 0)}
	total := -1
	for {
		chunk, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error receiving tensor %s: %w", id, err)
		}
		if hetensor.TensorID(chunk.TensorId) != id {
			return nil, fmt.Errorf("received chunk of tensor %s while fetching %s", chunk.TensorId, id)
		}

		t.LogicalLen = int(chunk.LogicalLen)
		if total == -1 {
			total = int(chunk.Total)
		}
		if chunk.Total == 0 {
			continue
		}
		if int(chunk.Index) != len(t.Chunks) {
			return nil, fmt.Errorf("chunk %d of %s received out of order, expected %d", chunk.Index, id, len(t.Chunks))
		}
		if len(chunk.Digest) > 0 && !bytes.Equal(chunk.Digest, chunkDigest(chunk.Data)) {
			return nil, fmt.Errorf("digest mismatch for chunk %d of %s", chunk.Index, id)
		}
		t.Chunks = append(t.Chunks, chunk.Data)
	}

	if total == -1 {
		return nil, fmt.Errorf("empty stream for tensor %s", id)
	}
	if len(t.Chunks) != total {
		return nil, fmt.Errorf("incomplete tensor %s: got %d of %d chunks", id, len(t.Chunks), total)
	}

	return t, nil
}
