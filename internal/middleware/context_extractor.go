// internal/middleware/context_extractor.go
package middleware

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
)

// ContextKey is the typed key for request metadata stored on the context.
type ContextKey string

const (
	ContextKeyIPAddress   ContextKey = "ip_address"
	ContextKeyUserAgent   ContextKey = "user_agent"
	ContextKeyUserID      ContextKey = "user_id"
	ContextKeyUsername    ContextKey = "username"
	ContextKeyUserRole    ContextKey = "user_role"
	ContextKeyIsSuperuser ContextKey = "is_superuser"
)

// MetadataExtractorInterceptor extracts client metadata and adds it to context
type MetadataExtractorInterceptor struct{}

// NewMetadataExtractorInterceptor creates a new metadata extractor interceptor
func NewMetadataExtractorInterceptor() *MetadataExtractorInterceptor {
	return &MetadataExtractorInterceptor{}
}

// Unary returns a unary server interceptor for metadata extraction
func (m *MetadataExtractorInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		enrichedCtx := m.enrichContext(ctx)
		return handler(enrichedCtx, req)
	}
}

// Stream returns a stream server interceptor for metadata extraction
func (m *MetadataExtractorInterceptor) Stream() grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		stream grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		wrappedStream := &enrichedServerStream{
			ServerStream: stream,
			ctx:          m.enrichContext(stream.Context()),
		}

		return handler(srv, wrappedStream)
	}
}

// enrichContext extracts IP address and user agent from the context
func (m *MetadataExtractorInterceptor) enrichContext(ctx context.Context) context.Context {
	if ipAddress := extractIPAddress(ctx); ipAddress != "" {
		ctx = context.WithValue(ctx, ContextKeyIPAddress, ipAddress)
	}

	if userAgent := extractUserAgent(ctx); userAgent != "" {
		ctx = context.WithValue(ctx, ContextKeyUserAgent, userAgent)
	}

	return ctx
}

// extractIPAddress extracts the client IP address from the context
func extractIPAddress(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok {
		return ""
	}

	if tcpAddr, ok := p.Addr.(*net.TCPAddr); ok {
		return tcpAddr.IP.String()
	}

	addr := p.Addr.String()
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr // Return as-is if parsing fails
	}

	return host
}

// extractUserAgent extracts the user agent from gRPC metadata
func extractUserAgent(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	userAgentHeaders := []string{
		"user-agent",
		"grpc-user-agent",
		"x-user-agent",
	}

	for _, header := range userAgentHeaders {
		if values := md.Get(header); len(values) > 0 {
			return values[0]
		}
	}

	return ""
}

// enrichedServerStream wraps grpc.ServerStream with enriched context
type enrichedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *enrichedServerStream) Context() context.Context {
	return s.ctx
}

// Helper functions to extract values from context

// GetIPAddressFromContext extracts IP address from context
func GetIPAddressFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(ContextKeyIPAddress).(string); ok {
		return ip
	}
	return ""
}

// GetUserAgentFromContext extracts user agent from context
func GetUserAgentFromContext(ctx context.Context) string {
	if ua, ok := ctx.Value(ContextKeyUserAgent).(string); ok {
		return ua
	}
	return ""
}

// GetUserIDFromContext extracts the authenticated user ID from context
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(ContextKeyUserID).(string)
	return userID, ok
}

// GetUsernameFromContext extracts the authenticated username from context
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(ContextKeyUsername).(string)
	return username, ok
}

// GetUserRoleFromContext extracts the authenticated user's role from context
func GetUserRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(ContextKeyUserRole).(string)
	return role, ok
}

// GetIsSuperuserFromContext reports whether the authenticated user is a superuser
func GetIsSuperuserFromContext(ctx context.Context) bool {
	su, ok := ctx.Value(ContextKeyIsSuperuser).(bool)
	return ok && su
}

// ClientInfo bundles all request metadata extracted from the context.
type ClientInfo struct {
	IPAddress   string
	UserAgent   string
	UserID      string
	Username    string
	UserRole    string
	IsSuperuser bool
}

// GetClientInfoFromContext extracts all client information from context
func GetClientInfoFromContext(ctx context.Context) *ClientInfo {
	info := &ClientInfo{
		IPAddress:   GetIPAddressFromContext(ctx),
		UserAgent:   GetUserAgentFromContext(ctx),
		IsSuperuser: GetIsSuperuserFromContext(ctx),
	}

	if userID, ok := GetUserIDFromContext(ctx); ok {
		info.UserID = userID
	}

	if username, ok := GetUsernameFromContext(ctx); ok {
		info.Username = username
	}

	if role, ok := GetUserRoleFromContext(ctx); ok {
		info.UserRole = role
	}

	return info
}
