package verifier

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/server/models"
	"github.com/dmitrijs2005/zkpauth/internal/server/store"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
	"github.com/google/uuid"
)

// RegistrationPolicy decides what happens when a username registers twice.
type RegistrationPolicy int

const (
	// RegistrationOverwrite replaces y1/y2 of an existing user (last write
	// wins). Any pending challenge of that user is discarded with it.
	RegistrationOverwrite RegistrationPolicy = iota
	// RegistrationReject fails with ErrAlreadyExists.
	RegistrationReject
)

// SessionIssuer mints the session id returned after a successful proof.
type SessionIssuer interface {
	Issue(userName string) (string, error)
}

type Options struct {
	Registration RegistrationPolicy
	// SingleUseChallenges retires a challenge after the first verification
	// attempt, successful or not. Off by default, in which case the same
	// (auth_id, s) pair verifies again until a new challenge is created.
	SingleUseChallenges bool
	// ValidatePublicValues makes Register refuse an empty username and any
	// y1, y2 outside [1, p) with ErrInvalidArgument. Off by default, in which
	// case Register accepts every request.
	ValidatePublicValues bool
	// Rand is the source for challenges and auth ids; nil means crypto/rand.
	Rand io.Reader
	Now  func() time.Time
}

// Challenge is returned to the prover after it commits to (r1, r2).
type Challenge struct {
	AuthID string
	C      *big.Int
}

type Service struct {
	params   *zkp.Params
	store    store.Store
	sessions SessionIssuer
	opts     Options
}

func NewService(params *zkp.Params, st store.Store, sessions SessionIssuer, opts Options) (*Service, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if st == nil || sessions == nil {
		return nil, errors.New("verifier: store and session issuer are required")
	}
	if opts.Rand == nil {
		opts.Rand = rand.Reader
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{params: params, store: st, sessions: sessions, opts: opts}, nil
}

// Register records the public values y1 = alpha^x, y2 = beta^x for username.
func (s *Service) Register(ctx context.Context, username string, y1, y2 *big.Int) error {
	if s.opts.ValidatePublicValues {
		if username == "" {
			return fmt.Errorf("%w: empty username", ErrInvalidArgument)
		}
		if !s.params.InGroup(y1) || !s.params.InGroup(y2) {
			return fmt.Errorf("%w: public values must be in [1, p)", ErrInvalidArgument)
		}
	}
	if y1 == nil {
		y1 = new(big.Int)
	}
	if y2 == nil {
		y2 = new(big.Int)
	}

	rec := &models.UserRecord{
		UserName:     username,
		Y1:           y1,
		Y2:           y2,
		State:        models.StateRegistered,
		RegisteredAt: s.opts.Now(),
	}

	_, err := s.store.PutUser(ctx, rec, s.opts.Registration == RegistrationOverwrite)
	if err != nil {
		return fmt.Errorf("register %q: %w", username, err)
	}
	return nil
}

func (s *Service) newAuthID() (string, error) {
	id, err := uuid.NewRandomFromReader(s.opts.Rand)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// CreateChallenge stores the commitment (r1, r2) for username and answers
// with a fresh random challenge c in [0, q) bound to a new auth id.
func (s *Service) CreateChallenge(ctx context.Context, username string, r1, r2 *big.Int) (*Challenge, error) {
	if r1 == nil || r2 == nil {
		return nil, fmt.Errorf("%w: missing commitment", ErrInvalidArgument)
	}
	if _, err := s.store.GetUser(ctx, username); err != nil {
		return nil, fmt.Errorf("challenge %q: %w", username, err)
	}

	c, err := s.params.RandomExponent(s.opts.Rand)
	if err != nil {
		return nil, err
	}
	authID, err := s.newAuthID()
	if err != nil {
		return nil, fmt.Errorf("auth id: %w", err)
	}

	// a colliding auth id would hand another user's challenge to this prover
	if err := s.store.BindAuthID(ctx, authID, username); err != nil {
		return nil, fmt.Errorf("bind auth id: %w", err)
	}

	err = s.store.UpdateUser(ctx, username, func(rec *models.UserRecord) error {
		rec.Challenge = &models.ChallengeSession{
			AuthID:    authID,
			R1:        new(big.Int).Set(r1),
			R2:        new(big.Int).Set(r2),
			C:         c,
			CreatedAt: s.opts.Now(),
		}
		rec.State = models.StateChallenged
		return nil
	})
	if err != nil {
		_ = s.store.ReleaseAuthID(ctx, authID)
		return nil, fmt.Errorf("challenge %q: %w", username, err)
	}

	return &Challenge{AuthID: authID, C: new(big.Int).Set(c)}, nil
}

// VerifyAuthentication checks the response s for the challenge identified by
// authID and returns a session id on success. A wrong answer yields a
// *VerificationError, which matches ErrPermissionDenied.
func (s *Service) VerifyAuthentication(ctx context.Context, authID string, sv *big.Int) (string, error) {
	if sv == nil {
		return "", fmt.Errorf("%w: missing response", ErrInvalidArgument)
	}
	username, err := s.store.ResolveAuthID(ctx, authID)
	if err != nil {
		return "", fmt.Errorf("auth id %s: %w", authID, err)
	}

	var sessionID string
	err = s.store.UpdateUser(ctx, username, func(rec *models.UserRecord) error {
		ch := rec.Challenge
		if ch == nil {
			// re-registration discarded the commitment this auth id answers
			if s.opts.SingleUseChallenges {
				return ErrNotFound
			}
			rec.State = models.StateRejected
			return nil
		}
		if s.opts.SingleUseChallenges && (ch.Used || ch.AuthID != authID) {
			return ErrNotFound
		}

		ok := s.params.Verify(ch.R1, ch.R2, rec.Y1, rec.Y2, ch.C, sv)
		ch.S = new(big.Int).Set(sv)
		if s.opts.SingleUseChallenges {
			ch.Used = true
		}
		if !ok {
			rec.State = models.StateRejected
			return nil
		}

		id, err := s.sessions.Issue(username)
		if err != nil {
			return err
		}
		sessionID = id
		rec.SessionID = id
		rec.State = models.StateVerified
		return nil
	})

	if s.opts.SingleUseChallenges {
		_ = s.store.ReleaseAuthID(ctx, authID)
	}

	if err != nil {
		return "", fmt.Errorf("auth id %s: %w", authID, err)
	}
	if sessionID == "" {
		return "", &VerificationError{AuthID: authID}
	}
	return sessionID, nil
}

// Status reports where username currently is in the protocol.
func (s *Service) Status(ctx context.Context, username string) (models.State, error) {
	rec, err := s.store.GetUser(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return models.StateUnregistered, nil
	}
	if err != nil {
		return "", err
	}
	return rec.State, nil
}

// Params returns a copy of the group the service verifies against.
func (s *Service) Params() *zkp.Params {
	return s.params.Clone()
}
