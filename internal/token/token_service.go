package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	tokenerrors "github.com/atiq9se/bistro-boss-server/internal/token/errors"
)

// DefaultTTL bounds the blast radius of a leaked token; there is no
// server-side revocation list.
const DefaultTTL = time.Hour

// Claims is the typed JWT payload. Email is the identity every other
// layer keys on.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret []byte, ttl time.Duration) *Service {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: secret, ttl: ttl}
}

// Issue signs a bearer token for the given email. The caller is expected
// to have authenticated the identity out-of-band; no user lookup happens
// here.
func (s *Service) Issue(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", tokenerrors.ErrSigningFailed.WithCause(err)
	}
	return signed, nil
}

// Verify parses and validates a token string. CPU-only, never blocks.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, tokenerrors.ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, tokenerrors.ErrTokenExpired.WithCause(err)
		}
		return nil, tokenerrors.ErrTokenInvalid.WithCause(err)
	}
	if !parsed.Valid || claims.Email == "" {
		return nil, tokenerrors.ErrTokenInvalid
	}
	return claims, nil
}

// VerifyEmail is the narrow form the auth middleware consumes: it
// validates the token and returns only the email identity.
func (s *Service) VerifyEmail(tokenString string) (string, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Email, nil
}
