package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
)

// Token validation errors. Both match errs.ErrUnauthorized.
var (
	ErrInvalidToken = fmt.Errorf("%w: invalid token", errs.ErrUnauthorized)
	ErrExpiredToken = fmt.Errorf("%w: token expired", errs.ErrUnauthorized)
)

// DefaultTokenTTL applies when no token lifetime is configured
const DefaultTokenTTL = 12 * time.Hour

// AdminClaims identifies the administrator behind a request.
// The subject is the actor id recorded as verifiedBy and on draws.
type AdminClaims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// ActorID returns the subject of the token
func (c *AdminClaims) ActorID() string {
	return c.Subject
}

// TokenManager signs and validates HS256 admin tokens
type TokenManager struct {
	secret       []byte
	issuer       string
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewTokenManager creates a TokenManager. The secret must not be empty.
func NewTokenManager(secret, issuer string, ttl time.Duration, timeProvider coreport.TimeProvider) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{
		secret:       []byte(secret),
		issuer:       issuer,
		ttl:          ttl,
		timeProvider: timeProvider,
	}, nil
}

// Issue signs a token for actorID valid for the configured lifetime
func (m *TokenManager) Issue(actorID, name string) (string, error) {
	if actorID == "" {
		return "", errs.NewValidationError(errs.ErrInvalidRequest, "actorId", "is required")
	}

	now := m.timeProvider.Now()
	claims := AdminClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actorID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse validates a token and returns its claims
func (m *TokenManager) Parse(tokenString string) (*AdminClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.timeProvider.Now),
		jwt.WithExpirationRequired(),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// TTL returns the lifetime of issued tokens
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}
