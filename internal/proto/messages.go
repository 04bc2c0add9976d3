package proto

import "google.golang.org/protobuf/encoding/protowire"

type RegisterRequest struct {
	Name string
	Y1   []byte
	Y2   []byte
}

func (m *RegisterRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *RegisterRequest) GetY1() []byte {
	if m != nil {
		return m.Y1
	}
	return nil
}

func (m *RegisterRequest) GetY2() []byte {
	if m != nil {
		return m.Y2
	}
	return nil
}

func (m *RegisterRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.Name)
	b = appendBytes(b, 2, m.Y1)
	b = appendBytes(b, 3, m.Y2)
	return b, nil
}

func (m *RegisterRequest) UnmarshalWire(b []byte) error {
	*m = RegisterRequest{}
	err := decode(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Name)
		case 2:
			return consumeBytes(typ, b, &m.Y1)
		case 3:
			return consumeBytes(typ, b, &m.Y2)
		}
		return 0, false, nil
	})
	if err != nil {
		return unexpected("RegisterRequest", err)
	}
	return nil
}

type RegisterResponse struct{}

func (m *RegisterResponse) MarshalWire() ([]byte, error) {
	return nil, nil
}

func (m *RegisterResponse) UnmarshalWire(b []byte) error {
	err := decode(b, func(protowire.Number, protowire.Type, []byte) (int, bool, error) {
		return 0, false, nil
	})
	if err != nil {
		return unexpected("RegisterResponse", err)
	}
	return nil
}

type AuthenticationChallengeRequest struct {
	Name string
	R1   []byte
	R2   []byte
}

func (m *AuthenticationChallengeRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *AuthenticationChallengeRequest) GetR1() []byte {
	if m != nil {
		return m.R1
	}
	return nil
}

func (m *AuthenticationChallengeRequest) GetR2() []byte {
	if m != nil {
		return m.R2
	}
	return nil
}

func (m *AuthenticationChallengeRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.Name)
	b = appendBytes(b, 2, m.R1)
	b = appendBytes(b, 3, m.R2)
	return b, nil
}

func (m *AuthenticationChallengeRequest) UnmarshalWire(b []byte) error {
	*m = AuthenticationChallengeRequest{}
	err := decode(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Name)
		case 2:
			return consumeBytes(typ, b, &m.R1)
		case 3:
			return consumeBytes(typ, b, &m.R2)
		}
		return 0, false, nil
	})
	if err != nil {
		return unexpected("AuthenticationChallengeRequest", err)
	}
	return nil
}

type AuthenticationChallengeResponse struct {
	AuthId string
	C      []byte
}

func (m *AuthenticationChallengeResponse) GetAuthId() string {
	if m != nil {
		return m.AuthId
	}
	return ""
}

func (m *AuthenticationChallengeResponse) GetC() []byte {
	if m != nil {
		return m.C
	}
	return nil
}

func (m *AuthenticationChallengeResponse) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.AuthId)
	b = appendBytes(b, 2, m.C)
	return b, nil
}

func (m *AuthenticationChallengeResponse) UnmarshalWire(b []byte) error {
	*m = AuthenticationChallengeResponse{}
	err := decode(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.AuthId)
		case 2:
			return consumeBytes(typ, b, &m.C)
		}
		return 0, false, nil
	})
	if err != nil {
		return unexpected("AuthenticationChallengeResponse", err)
	}
	return nil
}

type AuthenticationAnswerRequest struct {
	AuthId string
	S      []byte
}

func (m *AuthenticationAnswerRequest) GetAuthId() string {
	if m != nil {
		return m.AuthId
	}
	return ""
}

func (m *AuthenticationAnswerRequest) GetS() []byte {
	if m != nil {
		return m.S
	}
	return nil
}

func (m *AuthenticationAnswerRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.AuthId)
	b = appendBytes(b, 2, m.S)
	return b, nil
}

func (m *AuthenticationAnswerRequest) UnmarshalWire(b []byte) error {
	*m = AuthenticationAnswerRequest{}
	err := decode(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.AuthId)
		case 2:
			return consumeBytes(typ, b, &m.S)
		}
		return 0, false, nil
	})
	if err != nil {
		return unexpected("AuthenticationAnswerRequest", err)
	}
	return nil
}

type AuthenticationAnswerResponse struct {
	SessionId string
}

func (m *AuthenticationAnswerResponse) GetSessionId() string {
	if m != nil {
		return m.SessionId
	}
	return ""
}

func (m *AuthenticationAnswerResponse) MarshalWire() ([]byte, error) {
	return appendString(nil, 1, m.SessionId), nil
}

func (m *AuthenticationAnswerResponse) UnmarshalWire(b []byte) error {
	*m = AuthenticationAnswerResponse{}
	err := decode(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		if num == 1 {
			return consumeString(typ, b, &m.SessionId)
		}
		return 0, false, nil
	})
	if err != nil {
		return unexpected("AuthenticationAnswerResponse", err)
	}
	return nil
}
