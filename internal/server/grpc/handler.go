package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	pb "github.com/dmitrijs2005/zkpauth/internal/proto"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	err := s.auth.Register(ctx, req.GetName(), zkp.DecodeInt(req.GetY1()), zkp.DecodeInt(req.GetY2()))

	if err != nil {
		return nil, s.toStatus(ctx, err, "registration failed")
	}

	s.logger.Info(ctx, "Registered", "username", req.GetName())
	return &pb.RegisterResponse{}, nil

}

func (s *GRPCServer) CreateAuthenticationChallenge(ctx context.Context, req *pb.AuthenticationChallengeRequest) (*pb.AuthenticationChallengeResponse, error) {

	ch, err := s.auth.CreateChallenge(ctx, req.GetName(), zkp.DecodeInt(req.GetR1()), zkp.DecodeInt(req.GetR2()))

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, "user not found")
		}
		return nil, s.toStatus(ctx, err, "challenge failed")
	}

	s.logger.Info(ctx, "Challenge created", "username", req.GetName(), "auth_id", ch.AuthID)
	return &pb.AuthenticationChallengeResponse{AuthId: ch.AuthID, C: zkp.EncodeInt(ch.C)}, nil

}

func (s *GRPCServer) VerifyAuthentication(ctx context.Context, req *pb.AuthenticationAnswerRequest) (*pb.AuthenticationAnswerResponse, error) {

	sessionID, err := s.auth.VerifyAuthentication(ctx, req.GetAuthId(), zkp.DecodeInt(req.GetS()))

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Errorf(codes.NotFound, "auth id %s not found", req.GetAuthId())
		}
		return nil, s.toStatus(ctx, err, "verification failed")
	}

	s.logger.Info(ctx, "Authenticated", "auth_id", req.GetAuthId())
	return &pb.AuthenticationAnswerResponse{SessionId: sessionID}, nil

}

// toStatus maps service errors onto gRPC codes. Unexpected errors are logged
// and hidden behind a generic message.
func (s *GRPCServer) toStatus(ctx context.Context, err error, msg string) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorPermissionDenied):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrorInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	s.logger.Error(ctx, msg, "error", err.Error())
	return status.Error(codes.Internal, "internal error")
}
