package service

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	apperrors "payment-admin/pkg/errors"
)

// SessionClaim is carried by the dashboard session cookie. The subject is
// the server-side session id; the remote API credential never leaves the
// credential store.
type SessionClaim struct {
	jwt.RegisteredClaims
}

func (c *SessionClaim) SessionID() string { return c.Subject }

type JWTService interface {
	Issue(sessionID string) (string, error)
	Validate(tokenString string) (*SessionClaim, error)
	TTL() time.Duration
}

type jwtService struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewJWTService(secretKey string, ttl time.Duration) JWTService {
	return &jwtService{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}
}

func (s *jwtService) TTL() time.Duration {
	return s.ttl
}

func (s *jwtService) Issue(sessionID string) (string, error) {
	now := s.now()
	claims := &SessionClaim{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  sessionID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
}

func (s *jwtService) Validate(tokenString string) (*SessionClaim, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaim{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidSigningMethod
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrSessionTokenExpired
		}
		if errors.Is(err, apperrors.ErrInvalidSigningMethod) {
			return nil, apperrors.ErrInvalidSigningMethod
		}
		return nil, apperrors.ErrInvalidSessionToken
	}

	claims, ok := token.Claims.(*SessionClaim)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, apperrors.ErrInvalidSessionToken
	}
	return claims, nil
}
