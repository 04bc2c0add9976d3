package client

import (
	"errors"

	"github.com/dmitrijs2005/zkpauth/internal/common"
)

var (
	ErrUnavailable      = errors.New("server unavailable")
	ErrNotFound         = common.ErrorNotFound
	ErrAlreadyExists    = common.ErrorAlreadyExists
	ErrPermissionDenied = common.ErrorPermissionDenied
	ErrInvalidArgument  = common.ErrorInvalidArgument
)
