package transport

import (
	"fmt"
	"sync"

	"github.com/ChristianMct/hetensor/utils"
	"golang.org/x/net/context"
	"google.golang.org/grpc/stats"
)

// NetStats contains the network statistics of a connection.
type NetStats struct {
	DataSent, DataRecv uint64
}

// String returns a string representation of the network statistics.
func (s NetStats) String() string {
	return fmt.Sprintf("Sent: %s, Received: %s", utils.ByteCountSI(s.DataSent), utils.ByteCountSI(s.DataRecv))
}

type statsHandler struct {
	mu sync.Mutex
	NetStats
}

// TagRPC can attach some information to the given context.
// The context used for the rest lifetime of the RPC will be derived from
// the returned context.
func (s *statsHandler) TagRPC(ctx context.Context, _ *stats.RPCTagInfo) context.Context {
	return ctx
}

// HandleRPC processes the RPC stats.
func (s *statsHandler) HandleRPC(_ context.Context, sta stats.RPCStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch sta := sta.(type) {
	case *stats.InPayload:
		s.DataRecv += uint64(sta.WireLength)
	case *stats.OutPayload:
		s.DataSent += uint64(sta.WireLength)
	}
}

// TagConn can attach some information to the given context.
// The returned context will be used for stats handling.
func (s *statsHandler) TagConn(ctx context.Context, _ *stats.ConnTagInfo) context.Context {
	return ctx
}

// HandleConn processes the Conn stats.
func (s *statsHandler) HandleConn(_ context.Context, sta stats.ConnStats) {}

// GetStats returns the network statistics recorded so far.
func (s *statsHandler) GetStats() NetStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.NetStats
}
