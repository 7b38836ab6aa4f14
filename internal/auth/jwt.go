// Package auth issues and verifies the signed tokens that gate every
// authenticated CLI command.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Reason explains why a token was rejected.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonMalformed       Reason = "malformed"
	ReasonBadSignature    Reason = "bad_signature"
	ReasonExpired         Reason = "expired"
	ReasonMissingIdentity Reason = "missing_identity"
)

// Claims carries the standard registered claims and the username.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Result is the outcome of Verify. Username is set only when Valid is true.
type Result struct {
	Valid    bool
	Username string
	Reason   Reason
}

// TokenService signs tokens with HS256 using a shared secret.
type TokenService struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

// Option customises a TokenService.
type Option func(*TokenService)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) { s.now = now }
}

// NewTokenService builds a service from an explicit secret and validity.
func NewTokenService(secret []byte, validity time.Duration, opts ...Option) *TokenService {
	s := &TokenService{
		secret:   secret,
		validity: validity,
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Issue returns a token for username that expires after the configured validity.
func (s *TokenService) Issue(username string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
		Username: username,
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify checks signature, algorithm and expiry. It never returns an error;
// a rejected token has Valid == false and a Reason.
func (s *TokenService) Verify(tokenString string) Result {
	claims := &Claims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)

	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return Result{Reason: reasonFor(err)}
	}

	if !token.Valid {
		return Result{Reason: ReasonBadSignature}
	}

	if claims.Username == "" || claims.Subject != claims.Username {
		return Result{Reason: ReasonMissingIdentity}
	}

	return Result{Valid: true, Username: claims.Username}
}

func reasonFor(err error) Reason {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed), errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return ReasonMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return ReasonExpired
	default:
		// signature mismatch, disallowed alg, unverifiable key
		return ReasonBadSignature
	}
}
