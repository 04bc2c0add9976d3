package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	Auth_Register_FullMethodName                      = "/zkp_auth.Auth/Register"
	Auth_CreateAuthenticationChallenge_FullMethodName = "/zkp_auth.Auth/CreateAuthenticationChallenge"
	Auth_VerifyAuthentication_FullMethodName          = "/zkp_auth.Auth/VerifyAuthentication"
)

// AuthClient is the client API for the Auth service.
type AuthClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	CreateAuthenticationChallenge(ctx context.Context, in *AuthenticationChallengeRequest, opts ...grpc.CallOption) (*AuthenticationChallengeResponse, error)
	VerifyAuthentication(ctx context.Context, in *AuthenticationAnswerRequest, opts ...grpc.CallOption) (*AuthenticationAnswerResponse, error)
}

type authClient struct {
	cc grpc.ClientConnInterface
}

// NewAuthClient wraps cc. Every call is forced onto Codec.
func NewAuthClient(cc grpc.ClientConnInterface) AuthClient {
	return &authClient{cc}
}

func (c *authClient) invoke(ctx context.Context, method string, in, out Message, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *authClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	out := new(RegisterResponse)
	if err := c.invoke(ctx, Auth_Register_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) CreateAuthenticationChallenge(ctx context.Context, in *AuthenticationChallengeRequest, opts ...grpc.CallOption) (*AuthenticationChallengeResponse, error) {
	out := new(AuthenticationChallengeResponse)
	if err := c.invoke(ctx, Auth_CreateAuthenticationChallenge_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) VerifyAuthentication(ctx context.Context, in *AuthenticationAnswerRequest, opts ...grpc.CallOption) (*AuthenticationAnswerResponse, error) {
	out := new(AuthenticationAnswerResponse)
	if err := c.invoke(ctx, Auth_VerifyAuthentication_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// AuthServer is the server API for the Auth service.
// Implementations must embed UnimplementedAuthServer.
type AuthServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	CreateAuthenticationChallenge(context.Context, *AuthenticationChallengeRequest) (*AuthenticationChallengeResponse, error)
	VerifyAuthentication(context.Context, *AuthenticationAnswerRequest) (*AuthenticationAnswerResponse, error)
	mustEmbedUnimplementedAuthServer()
}

type UnimplementedAuthServer struct{}

func (UnimplementedAuthServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedAuthServer) CreateAuthenticationChallenge(context.Context, *AuthenticationChallengeRequest) (*AuthenticationChallengeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateAuthenticationChallenge not implemented")
}
func (UnimplementedAuthServer) VerifyAuthentication(context.Context, *AuthenticationAnswerRequest) (*AuthenticationAnswerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method VerifyAuthentication not implemented")
}
func (UnimplementedAuthServer) mustEmbedUnimplementedAuthServer() {}

func RegisterAuthServer(s grpc.ServiceRegistrar, srv AuthServer) {
	s.RegisterService(&Auth_ServiceDesc, srv)
}

func _Auth_Register_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RegisterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServer).Register(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Auth_Register_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServer).Register(ctx, req.(*RegisterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Auth_CreateAuthenticationChallenge_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AuthenticationChallengeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServer).CreateAuthenticationChallenge(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Auth_CreateAuthenticationChallenge_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServer).CreateAuthenticationChallenge(ctx, req.(*AuthenticationChallengeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Auth_VerifyAuthentication_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AuthenticationAnswerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServer).VerifyAuthentication(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Auth_VerifyAuthentication_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServer).VerifyAuthentication(ctx, req.(*AuthenticationAnswerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Auth_ServiceDesc is the grpc.ServiceDesc for the Auth service.
var Auth_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "zkp_auth.Auth",
	HandlerType: (*AuthServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Register",
			Handler:    _Auth_Register_Handler,
		},
		{
			MethodName: "CreateAuthenticationChallenge",
			Handler:    _Auth_CreateAuthenticationChallenge_Handler,
		},
		{
			MethodName: "VerifyAuthentication",
			Handler:    _Auth_VerifyAuthentication_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "zkp_auth.proto",
}
