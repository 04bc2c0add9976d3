// Package models holds the verifier's in-memory records.
package models

import (
	"math/big"
	"time"
)

// State is the protocol position of a username as seen by the verifier.
type State string

const (
	StateUnregistered State = "unregistered"
	StateRegistered   State = "registered"
	StateChallenged   State = "challenged"
	StateVerified     State = "verified"
	StateRejected     State = "rejected"
)

// ChallengeSession is the live challenge of a user. There is at most one per
// username; a new challenge replaces the previous one.
type ChallengeSession struct {
	AuthID    string
	R1        *big.Int
	R2        *big.Int
	C         *big.Int
	S         *big.Int // set once a response has been checked
	CreatedAt time.Time
	Used      bool
}

// UserRecord is everything the verifier knows about a registered user.
// Y1 = alpha^x and Y2 = beta^x; x itself never leaves the prover.
type UserRecord struct {
	UserName     string
	Y1           *big.Int
	Y2           *big.Int
	Challenge    *ChallengeSession
	SessionID    string
	State        State
	RegisteredAt time.Time
}

func cloneInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}

func (c *ChallengeSession) Clone() *ChallengeSession {
	if c == nil {
		return nil
	}
	return &ChallengeSession{
		AuthID:    c.AuthID,
		R1:        cloneInt(c.R1),
		R2:        cloneInt(c.R2),
		C:         cloneInt(c.C),
		S:         cloneInt(c.S),
		CreatedAt: c.CreatedAt,
		Used:      c.Used,
	}
}

// Clone returns a deep copy, so stored records are never shared with callers.
func (u *UserRecord) Clone() *UserRecord {
	if u == nil {
		return nil
	}
	return &UserRecord{
		UserName:     u.UserName,
		Y1:           cloneInt(u.Y1),
		Y2:           cloneInt(u.Y2),
		Challenge:    u.Challenge.Clone(),
		SessionID:    u.SessionID,
		State:        u.State,
		RegisteredAt: u.RegisteredAt,
	}
}
