// internal/adapters/grpc/server.go
package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mahabubulhasibshawon/storefront-sync/internal/logger"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/ports"
	"github.com/mahabubulhasibshawon/storefront-sync/pkg/auth"
)

var publicMethods = map[string]bool{
	FullMethod(MethodSendCode):     true,
	FullMethod(MethodVerifyCode):   true,
	FullMethod(MethodLoginWithPIN): true,
}

// orderRoutedMethods address the tenant that owns the order, which may
// differ from the caller's own tenant.
var orderRoutedMethods = map[string]bool{
	FullMethod(MethodFetchBucket): true,
	FullMethod(MethodMutateOrder): true,
}

// Relay serves the backend service in front of any ports.BackendPort.
type Relay struct {
	backend ports.BackendPort
	secret  []byte
	log     *zap.Logger
}

// NewRelay builds a relay. With an empty secret tokens are only required to
// be present and are left for the upstream backend to verify.
func NewRelay(backend ports.BackendPort, secret []byte, log *zap.Logger) *Relay {
	return &Relay{backend: backend, secret: secret, log: logger.OrNop(log)}
}

func (r *Relay) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(r.AuthInterceptor, r.LoggingInterceptor))
	s := grpc.NewServer(opts...)
	r.Register(s)
	return s
}

func (r *Relay) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(ServiceDesc(), r.backend)
}

func (r *Relay) LoggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	fields := []zap.Field{
		zap.String("method", info.FullMethod),
		zap.String("code", status.Code(err).String()),
		zap.Duration("took", time.Since(start)),
	}
	if claims, ok := claimsFromContext(ctx); ok {
		fields = append(fields, zap.Int64("tenant", claims.TenantID()))
	}
	r.log.Info("rpc", fields...)
	return resp, err
}

func (r *Relay) AuthInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}
	token, err := bearer(ctx)
	if err != nil {
		r.log.Warn("rpc rejected", zap.String("method", info.FullMethod), zap.Error(err))
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}
	if len(r.secret) == 0 {
		return handler(ctx, req)
	}
	claims, err := auth.ValidateToken(r.secret, token)
	if err != nil {
		r.log.Warn("rpc rejected", zap.String("method", info.FullMethod), zap.Error(err))
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}
	if in, ok := req.(*structpb.Struct); ok && !orderRoutedMethods[info.FullMethod] {
		if id := (args{s: in}).int("tenant_id"); id > 0 && claims.TenantID() > 0 && id != claims.TenantID() {
			r.log.Warn("rpc rejected", zap.String("method", info.FullMethod),
				zap.Int64("tenant", claims.TenantID()), zap.Int64("requested", id))
			return nil, status.Error(codes.PermissionDenied, "tenant does not match token")
		}
	}
	ctx = context.WithValue(ctx, claimsKey{}, claims)
	return handler(ctx, req)
}

type claimsKey struct{}

// claimsFromContext returns the claims verified by AuthInterceptor.
func claimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims, ok
}

func bearer(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errors.New("missing metadata")
	}
	authHeader := md.Get("authorization")
	if len(authHeader) == 0 {
		return "", errors.New("missing authorization")
	}
	token := strings.TrimPrefix(authHeader[0], "Bearer ")
	if token == "" {
		return "", errors.New("empty token")
	}
	return token, nil
}

// ForwardedToken is a TokenSource that passes the caller's bearer token on
// to the upstream backend.
type ForwardedToken struct{}

func (ForwardedToken) Token(ctx context.Context) (string, error) {
	tok, err := bearer(ctx)
	if err != nil {
		return "", nil
	}
	return tok, nil
}
