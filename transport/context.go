package transport

import (
	"context"

	"github.com/ChristianMct/hetensor"
	"google.golang.org/grpc/metadata"
)

func getOutgoingContext(ctx context.Context, senderID hetensor.NodeID) context.Context {
	md := metadata.New(nil)
	md.Append("sender_id", string(senderID))
	if tid, hasTid := hetensor.TensorIDFromContext(ctx); hasTid {
		md.Append(string(hetensor.CtxTensorID), string(tid))
	}
	return metadata.NewOutgoingContext(ctx, md)
}

func getContextFromIncomingContext(inctx context.Context) context.Context {
	ctx := inctx
	if nid := senderIDFromIncomingContext(inctx); len(nid) != 0 {
		ctx = hetensor.ContextWithNodeID(ctx, nid)
	}
	if tid := tensorIDFromIncomingContext(inctx); len(tid) != 0 {
		ctx = hetensor.ContextWithTensorID(ctx, tid)
	}
	return ctx
}

func valueFromIncomingContext(ctx context.Context, key string) string {
	md, hasMd := metadata.FromIncomingContext(ctx)
	if !hasMd {
		return ""
	}
	id := md.Get(key)
	if len(id) < 1 {
		return ""
	}
	return id[0]
}

func senderIDFromIncomingContext(ctx context.Context) hetensor.NodeID {
	return hetensor.NodeID(valueFromIncomingContext(ctx, "sender_id"))
}

func tensorIDFromIncomingContext(ctx context.Context) hetensor.TensorID {
	return hetensor.TensorID(valueFromIncomingContext(ctx, string(hetensor.CtxTensorID)))
}
