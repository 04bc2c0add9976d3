package verifier

import (
	"fmt"

	"github.com/dmitrijs2005/zkpauth/internal/common"
)

var (
	ErrNotFound         = common.ErrorNotFound
	ErrPermissionDenied = common.ErrorPermissionDenied
	ErrAlreadyExists    = common.ErrorAlreadyExists
	ErrInvalidArgument  = common.ErrorInvalidArgument
)

// VerificationError reports a proof that did not verify. It names the
// request by auth id and carries nothing derived from the secret.
type VerificationError struct {
	AuthID string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("auth id %s sent a bad solution to the challenge", e.AuthID)
}

func (e *VerificationError) Unwrap() error {
	return ErrPermissionDenied
}
