package handlers

import (
	"context"
	"net/netip"
)

type requestMetaKey struct{}

// RequestMeta holds HTTP request metadata for visit recording and events.
type RequestMeta struct {
	ClientIP  netip.Addr
	UserAgent string
	Referrer  string
}

// ContextWithRequestMeta adds request metadata to context.
func ContextWithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

// RequestMetaFromContext extracts request metadata from context.
func RequestMetaFromContext(ctx context.Context) RequestMeta {
	if v, ok := ctx.Value(requestMetaKey{}).(RequestMeta); ok {
		return v
	}

	return RequestMeta{}
}
