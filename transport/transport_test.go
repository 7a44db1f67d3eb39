package transport

import (
	"context"
	"fmt"
	"net"
	"sync"
	"testing"

	"github.com/ChristianMct/hetensor"
	"github.com/ChristianMct/hetensor/transport/pb"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

const buffConBufferSize = 65 * 1024 * 1024

// memTensorHandler keeps the received tensors in a map, for testing.
type memTensorHandler struct {
	mu      sync.Mutex
	tensors map[hetensor.TensorID]Tensor
}

func newMemTensorHandler() *memTensorHandler {
	return &memTensorHandler{tensors: make(map[hetensor.TensorID]Tensor)}
}

func (h *memTensorHandler) PutTensor(_ context.Context, t Tensor) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tensors[t.ID] = t
	return nil
}

func (h *memTensorHandler) GetTensor(_ context.Context, id hetensor.TensorID) (*Tensor, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	t, has := h.tensors[id]
	if !has {
		return nil, fmt.Errorf("no tensor with id %s", id)
	}
	return &t, nil
}

func testChunks(m, size int) [][]byte {
	chunks := make([][]byte, m)
	for i := range chunks {
		chunks[i] = make([]byte, size)
		for j := range chunks[i] {
			chunks[i][j] = byte(i + j)
		}
	}
	return chunks
}

func testSetup(t *testing.T) (*memTensorHandler, *TensorClient) {
	handler := newMemTensorHandler()
	server := NewTensorServer("helper", handler)

	lis := bufconn.Listen(buffConBufferSize)
	go func() {
		if err := server.Serve(lis); err != nil {
			panic(err)
		}
	}()
	t.Cleanup(server.Stop)

	client := NewTensorClient("peer-0", "helper", "helper:40000")
	err := client.ConnectWithDialer(func(c context.Context, addr string) (net.Conn, error) { return lis.Dial() })
	require.NoError(t, err)
	t.Cleanup(func() { client.Disconnect() })

	return handler, client
}

func TestPutGetTensor(t *testing.T) {
	_, client := testSetup(t)

	ctx := hetensor.NewBackgroundContext("peer-0")

	for _, m := range []int{0, 1, 5} {
		t.Run(fmt.Sprintf("chunks=%d", m), func(t *testing.T) {
			sent := Tensor{
				ID:         hetensor.TensorID(fmt.Sprintf("peer-0/grad-%d", m)),
				LogicalLen: m * 100,
				Chunks:     testChunks(m, 1024),
			}
			require.NoError(t, client.PutTensor(ctx, sent))

			recv, err := client.GetTensor(ctx, sent.ID)
			require.NoError(t, err)
			require.Equal(t, sent.ID, recv.ID)
			require.Equal(t, sent.LogicalLen, recv.LogicalLen)
			require.Equal(t, len(sent.Chunks), len(recv.Chunks))
			for i := range sent.Chunks {
				require.Equal(t, sent.Chunks[i], recv.Chunks[i])
			}
		})
	}
}

func TestGetAbsentTensor(t *testing.T) {
	_, client := testSetup(t)

	ctx := hetensor.NewBackgroundContext("peer-0")

	_, err := client.GetTensor(ctx, "no-such-tensor")
	require.Error(t, err)
}

func TestPutTensorConcurrent(t *testing.T) {
	handler, client := testSetup(t)

	ctx := hetensor.NewBackgroundContext("peer-0")

	nTensors := 8
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < nTensors; i++ {
		i := i
		g.Go(func() error {
			return client.PutTensor(gctx, Tensor{
				ID:         hetensor.TensorID(fmt.Sprintf("peer-0/grad-%d", i)),
				LogicalLen: 100,
				Chunks:     testChunks(3, 512),
			})
		})
	}
	require.NoError(t, g.Wait())

	handler.mu.Lock()
	defer handler.mu.Unlock()
	require.Equal(t, nTensors, len(handler.tensors))
	for _, tn := range handler.tensors {
		require.Equal(t, 3, len(tn.Chunks))
	}
}

// truncatingTransportServer declares more chunks than it sends, to test that
// clients reject incomplete tensors.
type truncatingTransportServer struct {
	pb.UnimplementedTensorTransportServer
}

func (s *truncatingTransportServer) GetTensor(req *pb.TensorRequest, stream pb.TensorTransport_GetTensorServer) error {
	data := testChunks(1, 256)[0]
	return stream.Send(&pb.CiphertextChunk{
		TensorId:   req.TensorId,
		Index:      0,
		Total:      3,
		LogicalLen: 300,
		Data:       data,
		Digest:     chunkDigest(data),
	})
}

func TestGetTruncatedTensor(t *testing.T) {
	server := grpc.NewServer()
	pb.RegisterTensorTransportServer(server, &truncatingTransportServer{})

	lis := bufconn.Listen(buffConBufferSize)
	go func() {
		if err := server.Serve(lis); err != nil {
			panic(err)
		}
	}()
	t.Cleanup(server.Stop)

	client := NewTensorClient("peer-0", "helper", "helper:40000")
	err := client.ConnectWithDialer(func(c context.Context, addr string) (net.Conn, error) { return lis.Dial() })
	require.NoError(t, err)
	t.Cleanup(func() { client.Disconnect() })

	// the stream ends cleanly after the first of the declared chunks, which
	// must not yield a partial tensor
	_, err = client.GetTensor(hetensor.NewBackgroundContext("peer-0"), "peer-0/grad")
	require.ErrorContains(t, err, "incomplete tensor")
}

func TestNetStats(t *testing.T) {
	_, client := testSetup(t)

	ctx := hetensor.NewBackgroundContext("peer-0")

	sent := Tensor{
		ID:         "peer-0/grad",
		LogicalLen: 100,
		Chunks:     testChunks(2, 2048),
	}
	require.NoError(t, client.PutTensor(ctx, sent))

	cliStats := client.GetStats()
	require.Greater(t, cliStats.DataSent, uint64(2*2048))
}
