package transport

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/ChristianMct/hetensor"
	"github.com/ChristianMct/hetensor/transport/pb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TensorServer is the server-side of the tensor transport. It terminates
// the gRPC streams and delegates completed tensors to its TensorHandler.
type TensorServer struct {
	id      hetensor.NodeID
	handler TensorHandler

	// grpc API
	*grpc.Server
	*pb.UnimplementedTensorTransportServer
	statsHandler
}

// NewTensorServer creates a new tensor transport server for the provided
// node id and handler.
func NewTensorServer(id hetensor.NodeID, handler TensorHandler) *TensorServer {
	srv := new(TensorServer)
	srv.id = id
	srv.handler = handler

	serverOpts := []grpc.ServerOption{
		grpc.MaxRecvMsgSize(MaxMsgSize),
		grpc.MaxSendMsgSize(MaxMsgSize),
		grpc.StatsHandler(&srv.statsHandler),
	}

	srv.Server = grpc.NewServer(serverOpts...)
	srv.Server.RegisterService(&pb.TensorTransport_ServiceDesc, srv)

	return srv
}

// PutTensor is a gRPC handler for the PutTensor method of the
// TensorTransport service. It collects the streamed chunks of one tensor
// and hands the complete tensor to the handler. A stream that mixes tensor
// ids, delivers chunks out of order or fails a digest check is rejected
// without reaching the handler.
func (srv *TensorServer) PutTensor(stream pb.TensorTransport_PutTensorServer) error {
	ctx := getContextFromIncomingContext(stream.Context())
	senderID := senderIDFromIncomingContext(stream.Context())

	var t Tensor
	total := -1
	for {
		chunk, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if total == -1 {
			t.ID = hetensor.TensorID(chunk.TensorId)
			t.LogicalLen = int(chunk.LogicalLen)
			total = int(chunk.Total)
			t.Chunks = make([][]byte, 0, total)
		}

		if hetensor.TensorID(chunk.TensorId) != t.ID {
			return status.Errorf(codes.InvalidArgument, "stream mixes tensors %s and %s", t.ID, chunk.TensorId)
		}
		if total == 0 {
			// declaration of an empty tensor, carries no chunk payload
			continue
		}
		if int(chunk.Index) != len(t.Chunks) {
			return status.Errorf(codes.InvalidArgument, "chunk %d of %s received out of order, expected %d", chunk.Index, t.ID, len(t.Chunks))
		}
		if len(chunk.Digest) > 0 && !bytes.Equal(chunk.Digest, chunkDigest(chunk.Data)) {
			return status.Errorf(codes.DataLoss, "digest mismatch for chunk %d of %s", chunk.Index, t.ID)
		}
		t.Chunks = append(t.Chunks, chunk.Data)
	}

	if total == -1 {
		return status.Error(codes.InvalidArgument, "empty stream")
	}
	if len(t.Chunks) != total {
		return status.Errorf(codes.InvalidArgument, "incomplete tensor %s: got %d of %d chunks", t.ID, len(t.Chunks), total)
	}

	if err := srv.handler.PutTensor(ctx, t); err != nil {
		return err
	}

	srv.Logf("received tensor %s (%d chunks) from %s", t.ID, len(t.Chunks), senderID)

	return stream.SendAndClose(&pb.TensorAck{TensorId: string(t.ID), Chunks: uint32(len(t.Chunks))})
}

// GetTensor is a gRPC handler for the GetTensor method of the
// TensorTransport service. It streams the requested tensor back to the
// caller, one chunk per message.
func (srv *TensorServer) GetTensor(req *pb.TensorRequest, stream pb.TensorTransport_GetTensorServer) error {
	ctx := getContextFromIncomingContext(stream.Context())

	t, err := srv.handler.GetTensor(ctx, hetensor.TensorID(req.TensorId))
	if err != nil {
		return status.Errorf(codes.NotFound, "no tensor %s: %s", req.TensorId, err)
	}

	if len(t.Chunks) == 0 {
		return stream.Send(&pb.CiphertextChunk{
			TensorId:   string(t.ID),
			LogicalLen: uint64(t.LogicalLen),
		})
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
			return err
		}
	}

	srv.Logf("sent tensor %s (%d chunks) to %s", t.ID, len(t.Chunks), senderIDFromIncomingContext(stream.Context()))

	return nil
}

func (srv *TensorServer) Logf(msg string, v ...any) {
	log.Printf("%s | [TensorServer] %s\n", srv.id, fmt.Sprintf(msg, v...))
}
