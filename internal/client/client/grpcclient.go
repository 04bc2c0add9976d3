package client

import (
	"context"
	"fmt"
	"math/big"
	"time"

	pb "github.com/dmitrijs2005/zkpauth/internal/proto"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.AuthClient
}

// NewAuthClientService creates a client for endpointURL. timeout bounds each
// call; zero means the caller's context alone decides.
func NewAuthClientService(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	err := c.InitGRPCClient(opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {

	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthClient(conn)
	return nil
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Register(ctx context.Context, userName string, y1, y2 *big.Int) error {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.RegisterRequest{Name: userName, Y1: zkp.EncodeInt(y1), Y2: zkp.EncodeInt(y2)}

	_, err := s.client.Register(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) CreateChallenge(ctx context.Context, userName string, r1, r2 *big.Int) (*Challenge, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.AuthenticationChallengeRequest{Name: userName, R1: zkp.EncodeInt(r1), R2: zkp.EncodeInt(r2)}

	resp, err := s.client.CreateAuthenticationChallenge(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &Challenge{AuthID: resp.GetAuthId(), C: zkp.DecodeInt(resp.GetC())}, nil
}

func (s *GRPCClient) VerifyAuthentication(ctx context.Context, authID string, sol *big.Int) (string, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.AuthenticationAnswerRequest{AuthId: authID, S: zkp.EncodeInt(sol)}

	resp, err := s.client.VerifyAuthentication(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.GetSessionId(), nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrPermissionDenied, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	default:
		return err
	}
}
