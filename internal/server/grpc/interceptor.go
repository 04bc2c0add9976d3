package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader is returned in the response header of every call.
const RequestIDHeader = "x-request-id"

// loggingInterceptor records method, outcome and latency of every unary
// call. Payloads are never logged: they carry protocol values.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	requestID := uuid.NewString()
	_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))

	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{
		"request_id", requestID,
		"method", info.FullMethod,
		"code", code.String(),
		"duration", time.Since(start),
	}

	if err != nil {
		s.logger.Warn(ctx, "request failed", append(args, "error", status.Convert(err).Message())...)
	} else {
		s.logger.Info(ctx, "request served", args...)
	}

	return resp, err
}
