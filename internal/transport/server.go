package transport

import (
	"github.com/fekuna/omnipos-tracker/pkg/logger"
	"github.com/fekuna/omnipos-tracker/pkg/middleware"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

// Registrar is implemented by every service handler.
type Registrar interface {
	Register(s grpc.ServiceRegistrar)
}

// NewServer builds the gRPC server with the shared interceptor chain and
// registers every handler on it.
func NewServer(log logger.ZapLogger, handlers ...Registrar) *grpc.Server {
	s := grpc.NewServer(
		grpc.UnaryInterceptor(middleware.ContextInterceptor(log)),
	)
	for _, h := range handlers {
		h.Register(s)
	}
	reflection.Register(s)
	return s
}
