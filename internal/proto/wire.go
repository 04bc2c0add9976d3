package proto

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

var ErrInvalidUTF8 = errors.New("proto: string field contains invalid UTF-8")

// Message is implemented by every request and response of the service.
type Message interface {
	MarshalWire() ([]byte, error)
	UnmarshalWire(b []byte) error
}

// proto3 omits fields holding the zero value.

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// fieldFunc consumes the value of a known field and reports how many bytes
// it used. It returns handled=false for fields it does not recognise.
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (n int, handled bool, err error)

func decode(b []byte, fn fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		n, handled, err := fn(num, typ, b)
		if err != nil {
			return err
		}
		if !handled {
			// unknown fields are skipped for forward compatibility
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	return nil
}

func consumeString(typ protowire.Type, b []byte, dst *string) (int, bool, error) {
	if typ != protowire.BytesType {
		return 0, false, nil
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return n, true, nil
	}
	if !utf8.Valid(v) {
		return 0, true, ErrInvalidUTF8
	}
	*dst = string(v)
	return n, true, nil
}

func consumeBytes(typ protowire.Type, b []byte, dst *[]byte) (int, bool, error) {
	if typ != protowire.BytesType {
		return 0, false, nil
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return n, true, nil
	}
	*dst = append([]byte(nil), v...)
	return n, true, nil
}

func unexpected(msg string, err error) error {
	return fmt.Errorf("proto: decode %s: %w", msg, err)
}
