package auth

import (
	"context"
	"strings"

	pb "moonlight/proto/account"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Map of methods that do not require JWT authentication.
// Using generated constants from the proto package for type-safety.
var publicMethods = map[string]struct{}{
	pb.AuthService_Login_FullMethodName:    {},
	pb.AuthService_Register_FullMethodName: {},
}

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	LoginKey  contextKey = "login"
	RolesKey  contextKey = "roles"
)

// Principal resolves the authenticated user signature injected by the
// interceptors. The routing core trusts this and nothing from the payload.
func Principal(ctx context.Context) (string, error) {
	login, ok := ctx.Value(LoginKey).(string)
	if !ok || login == "" {
		return "", status.Error(codes.Unauthenticated, "no authenticated principal")
	}
	return login, nil
}

// UnaryAuthInterceptor handles JWT validation for incoming unary gRPC calls.
func UnaryAuthInterceptor(ctx context.Context, req any,
	info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if isPublicMethod(info.FullMethod) {
		return handler(ctx, req)
	}
	newCtx, err := authenticate(ctx)
	if err != nil {
		return nil, err
	}
	return handler(newCtx, req)
}

// StreamAuthInterceptor authenticates long-lived streams (the Connect
// personal queue) the same way unary calls are.
func StreamAuthInterceptor(srv any, ss grpc.ServerStream,
	info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	newCtx, err := authenticate(ss.Context())
	if err != nil {
		return err
	}
	return handler(srv, &authenticatedStream{ServerStream: ss, ctx: newCtx})
}

// authenticate extracts the bearer token from the metadata, validates it,
// and injects the principal into the context for downstream layers.
func authenticate(ctx context.Context) (context.Context, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "metadata is missing")
	}

	values := md.Get("authorization")
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, "authorization token is missing")
	}

	// Expecting the standard "Bearer <token>" format
	tokenStr := strings.TrimPrefix(values[0], "Bearer ")

	claims, err := ValidateToken(tokenStr)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
	}

	newCtx := context.WithValue(ctx, UserIDKey, claims.UserID)
	newCtx = context.WithValue(newCtx, LoginKey, claims.Login)
	newCtx = context.WithValue(newCtx, RolesKey, claims.Roles)
	return newCtx, nil
}

func isPublicMethod(fullMethod string) bool {
	_, ok := publicMethods[fullMethod]
	return ok
}

type authenticatedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authenticatedStream) Context() context.Context { return s.ctx }
