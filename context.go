package hetensor

import (
	"context"
)

type ctxKey string

const (
	// CtxNodeID is the context key for the sender node id.
	CtxNodeID ctxKey = "node_id"
	// CtxTensorID is the context key for the tensor id of the current operation.
	CtxTensorID ctxKey = "tensor_id"
)

// NewBackgroundContext returns a new context derived from
// context.Background() and carrying the given node id.
func NewBackgroundContext(nodeID NodeID) context.Context {
	return context.WithValue(context.Background(), CtxNodeID, nodeID)
}

// ContextWithNodeID returns a context derived from ctx and carrying the
// given node id.
func ContextWithNodeID(ctx context.Context, nodeID NodeID) context.Context {
	return context.WithValue(ctx, CtxNodeID, nodeID)
}

// ContextWithTensorID returns a context derived from ctx and carrying the
// given tensor id.
func ContextWithTensorID(ctx context.Context, tensorID TensorID) context.Context {
	return context.WithValue(ctx, CtxTensorID, tensorID)
}

// NodeIDFromContext returns the node id from the context, if present.
func NodeIDFromContext(ctx context.Context) (NodeID, bool) {
	nodeID, has := ctx.Value(CtxNodeID).(NodeID)
	return nodeID, has
}

// TensorIDFromContext returns the tensor id from the context, if present.
func TensorIDFromContext(ctx context.Context) (TensorID, bool) {
	tensorID, has := ctx.Value(CtxTensorID).(TensorID)
	return tensorID, has
}
