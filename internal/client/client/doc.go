// Package client is the prover's side of the zkp_auth.Auth gRPC service.
//
// GRPCClient converts big integers to their big-endian wire form and maps
// gRPC status codes back to sentinel errors (ErrNotFound,
// ErrPermissionDenied, ErrAlreadyExists, ErrInvalidArgument, ErrUnavailable)
// so callers can branch with errors.Is. Failed calls are never retried.
package client
