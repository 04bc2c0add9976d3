// Package auth issues the session tokens handed out after a successful
// proof. A session_id is an HS256 JWT naming the user, with a random jti.
package auth

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the registered claim set plus the authenticated user name.
type Claims struct {
	jwt.RegisteredClaims
	UserName string `json:"username"`
}

type SessionIssuer struct {
	secretKey        []byte
	validityDuration time.Duration
	rand             io.Reader
	now              func() time.Time
}

// NewSessionIssuer signs tokens with secretKey. rand feeds the token ids;
// a nil reader means crypto/rand.
func NewSessionIssuer(secretKey []byte, validityDuration time.Duration, rand io.Reader) *SessionIssuer {
	return &SessionIssuer{
		secretKey:        secretKey,
		validityDuration: validityDuration,
		rand:             rand,
		now:              time.Now,
	}
}

func (s *SessionIssuer) newID() (string, error) {
	if s.rand == nil {
		id, err := uuid.NewRandom()
		return id.String(), err
	}
	id, err := uuid.NewRandomFromReader(s.rand)
	return id.String(), err
}

// Issue returns a fresh session token for userName.
func (s *SessionIssuer) Issue(userName string) (string, error) {
	id, err := s.newID()
	if err != nil {
		return "", fmt.Errorf("session id: %w", err)
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Subject:   userName,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validityDuration)),
		},
		UserName: userName,
	})

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Parse validates tokenString and returns the user it was issued to.
func (s *SessionIssuer) Parse(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.UserName, nil
}
