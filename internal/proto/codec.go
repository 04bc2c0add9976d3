package proto

import (
	"fmt"
)

// CodecName is the content-subtype Codec advertises. It is the standard
// protobuf one, so peers built from zkp_auth.proto see ordinary
// application/grpc+proto traffic.
const CodecName = "proto"

// Codec marshals Message values for gRPC. It is not registered globally:
// the server installs it with grpc.ForceServerCodec and NewAuthClient with
// grpc.ForceCodec, leaving the stock proto codec untouched for other users.
type Codec struct{}

func (Codec) Name() string {
	return CodecName
}

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("proto: cannot marshal %T", v)
	}
	return m.MarshalWire()
}

func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("proto: cannot unmarshal into %T", v)
	}
	return m.UnmarshalWire(data)
}
