package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestRegisterRequest_WireLayout(t *testing.T) {
	m := &RegisterRequest{Name: "al", Y1: []byte{0x01}, Y2: []byte{0x02, 0x03}}
	b, err := m.MarshalWire()
	require.NoError(t, err)

	// field 1 (len) "al", field 2 (len) 0x01, field 3 (len) 0x02 0x03
	want := []byte{0x0a, 0x02, 'a', 'l', 0x12, 0x01, 0x01, 0x1a, 0x02, 0x02, 0x03}
	assert.Equal(t, want, b)

	var got RegisterRequest
	require.NoError(t, got.UnmarshalWire(b))
	assert.Equal(t, *m, got)
}

func TestMessages_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   Message
		out  Message
	}{
		{name: "challenge request", in: &AuthenticationChallengeRequest{Name: "bob", R1: []byte{9, 8}, R2: []byte{7}}, out: &AuthenticationChallengeRequest{}},
		{name: "challenge response", in: &AuthenticationChallengeResponse{AuthId: "id-1", C: []byte{0xff, 0x00, 0x01}}, out: &AuthenticationChallengeResponse{}},
		{name: "answer request", in: &AuthenticationAnswerRequest{AuthId: "id-1", S: []byte{0x10}}, out: &AuthenticationAnswerRequest{}},
		{name: "answer response", in: &AuthenticationAnswerResponse{SessionId: "sess"}, out: &AuthenticationAnswerResponse{}},
		{name: "register response", in: &RegisterResponse{}, out: &RegisterResponse{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Codec{}.Marshal(tt.in)
			require.NoError(t, err)
			require.NoError(t, Codec{}.Unmarshal(b, tt.out))
			assert.Equal(t, tt.in, tt.out)
		})
	}
}

func TestUnmarshal_SkipsUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 9, protowire.VarintType)
	b = protowire.AppendVarint(b, 300)
	b = appendString(b, 1, "carol")
	b = protowire.AppendTag(b, 10, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte("ignored"))

	var m AuthenticationAnswerRequest
	require.NoError(t, m.UnmarshalWire(b))
	assert.Equal(t, "carol", m.AuthId)
	assert.Nil(t, m.S)
}

func TestUnmarshal_Errors(t *testing.T) {
	var m RegisterRequest

	// truncated length-delimited field
	err := m.UnmarshalWire([]byte{0x0a, 0x05, 'a'})
	assert.Error(t, err)

	// invalid UTF-8 in a string field
	err = m.UnmarshalWire([]byte{0x0a, 0x01, 0xff})
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestUnmarshal_CopiesBytes(t *testing.T) {
	b, err := (&AuthenticationAnswerRequest{S: []byte{1, 2, 3}}).MarshalWire()
	require.NoError(t, err)

	var m AuthenticationAnswerRequest
	require.NoError(t, m.UnmarshalWire(b))
	b[len(b)-1] = 0x42

	assert.Equal(t, []byte{1, 2, 3}, m.S)
}

func TestCodec_RejectsForeignTypes(t *testing.T) {
	_, err := Codec{}.Marshal("not a message")
	assert.Error(t, err)

	err = Codec{}.Unmarshal(nil, new(int))
	assert.Error(t, err)

	assert.Equal(t, "proto", Codec{}.Name())
}

func TestCodec_NotRegisteredGlobally(t *testing.T) {
	_, replaced := encoding.GetCodec(CodecName).(Codec)
	assert.False(t, replaced, "the stock proto codec must stay registered")
}

func TestGetters_NilSafe(t *testing.T) {
	var r *RegisterRequest
	assert.Empty(t, r.GetName())
	assert.Nil(t, r.GetY1())

	var a *AuthenticationAnswerResponse
	assert.Empty(t, a.GetSessionId())
}
