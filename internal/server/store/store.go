// Package store keeps the verifier's per-user records and the
// auth_id → username index. The verifier owns a Store instance that is
// injected at construction; there is no package-level state.
package store

import (
	"context"

	"github.com/dmitrijs2005/zkpauth/internal/server/models"
)

// Store is safe for concurrent use. Records passed in and returned are
// copies; mutate stored records only through UpdateUser.
//
// Errors are common.ErrorNotFound and common.ErrorAlreadyExists.
type Store interface {
	// PutUser inserts rec. When a record already exists it is replaced if
	// overwrite is set, otherwise ErrorAlreadyExists is returned.
	PutUser(ctx context.Context, rec *models.UserRecord, overwrite bool) (replaced bool, err error)
	GetUser(ctx context.Context, username string) (*models.UserRecord, error)
	// UpdateUser runs fn on the stored record while holding its lock. If fn
	// returns an error the record is left unchanged.
	UpdateUser(ctx context.Context, username string, fn func(*models.UserRecord) error) error

	BindAuthID(ctx context.Context, authID, username string) error
	ResolveAuthID(ctx context.Context, authID string) (string, error)
	ReleaseAuthID(ctx context.Context, authID string) error
}
