package grpcjson

import (
	"context"

	"google.golang.org/grpc"
)

// Method builds a unary grpc.MethodDesc around a method expression such as
// SaleServiceServer.AddSale, doing what protoc-gen-go-grpc emits per method.
func Method[S any, Req any, Resp any](service, name string, fn func(S, context.Context, *Req) (Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return fn(srv.(S), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return fn(srv.(S), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// Invoke calls a unary method on conn using the JSON codec.
func Invoke[Resp any](ctx context.Context, conn grpc.ClientConnInterface, service, name string, req any, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append(opts, grpc.CallContentSubtype(Name))
	if err := conn.Invoke(ctx, "/"+service+"/"+name, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
