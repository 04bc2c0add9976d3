// Package grpc exposes the verifier over the zkp_auth.Auth gRPC service.
package grpc

import (
	"context"
	"math/big"
	"net"

	"github.com/dmitrijs2005/zkpauth/internal/logging"
	pb "github.com/dmitrijs2005/zkpauth/internal/proto"
	"github.com/dmitrijs2005/zkpauth/internal/server/verifier"
	"google.golang.org/grpc"
)

type authService interface {
	Register(ctx context.Context, username string, y1, y2 *big.Int) error
	CreateChallenge(ctx context.Context, username string, r1, r2 *big.Int) (*verifier.Challenge, error)
	VerifyAuthentication(ctx context.Context, authID string, s *big.Int) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthServer
	address string
	auth    authService
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, svc authService) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		auth:    svc,
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {

	// creates gRPC-server
	srv := grpc.NewServer(
		grpc.ForceServerCodec(pb.Codec{}),
		grpc.ChainUnaryInterceptor(s.loggingInterceptor),
	)

	// registers service
	pb.RegisterAuthServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
