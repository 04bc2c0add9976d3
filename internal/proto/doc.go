// Package proto contains the wire contract of the zkp_auth.Auth gRPC
// service described in zkp_auth.proto.
//
// Messages are encoded in the protobuf binary format with protowire. Codec
// carries them under the standard proto content-subtype and is forced on
// both ends (grpc.ForceServerCodec in the server, grpc.ForceCodec in
// NewAuthClient), so clients generated from zkp_auth.proto with the default
// protobuf codec can call the server.
package proto
