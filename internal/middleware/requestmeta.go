package middleware

import (
	"net"
	"net/netip"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/hop/internal/handlers"
)

// RequestMeta adds the connection's client address, user-agent, and referrer to the
// request context. Forwarding headers such as X-Forwarded-For are ignored: the
// visitor address recorded for a redirect is always the peer of the connection.
func RequestMeta(_ huma.API) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		meta := handlers.RequestMeta{
			ClientIP:  remoteIP(ctx.RemoteAddr()),
			UserAgent: ctx.Header("User-Agent"),
			Referrer:  ctx.Header("Referer"),
		}

		newCtx := handlers.ContextWithRequestMeta(ctx.Context(), meta)
		ctx = huma.WithContext(ctx, newCtx)

		next(ctx)
	}
}

// remoteIP parses "host:port" or a bare address. Unparseable input yields the zero Addr.
func remoteIP(remoteAddr string) netip.Addr {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}
	}

	return addr.Unmap()
}
