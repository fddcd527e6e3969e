package security

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	timeprovider "github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/time"
)

func TestNewTokenManager(t *testing.T) {
	tp := timeprovider.NewRealTimeProvider()

	_, err := NewTokenManager("", "raffle", time.Hour, tp)
	assert.Error(t, err)

	m, err := NewTokenManager("secret", "raffle", 0, tp)
	require.NoError(t, err)
	assert.Equal(t, DefaultTokenTTL, m.TTL())
}

func TestTokenManager(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Round trip keeps the actor", func(t *testing.T) {
		tp := timeprovider.NewFixedTimeProvider(start)
		m, err := NewTokenManager("secret", "raffle", time.Hour, tp)
		require.NoError(t, err)

		token, err := m.Issue("admin-7", "Maria")
		require.NoError(t, err)

		claims, err := m.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, "admin-7", claims.ActorID())
		assert.Equal(t, "Maria", claims.Name)
		assert.Equal(t, "raffle", claims.Issuer)
		assert.Equal(t, start.Add(time.Hour), claims.ExpiresAt.Time.UTC())
	})

	t.Run("Expired token", func(t *testing.T) {
		tp := timeprovider.NewFixedTimeProvider(start)
		m, err := NewTokenManager("secret", "raffle", time.Hour, tp)
		require.NoError(t, err)

		token, err := m.Issue("admin-7", "")
		require.NoError(t, err)
		tp.Advance(2 * time.Hour)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Rejected tokens", func(t *testing.T) {
		tp := timeprovider.NewFixedTimeProvider(start)
		m, err := NewTokenManager("secret", "raffle", time.Hour, tp)
		require.NoError(t, err)

		other, err := NewTokenManager("other-secret", "raffle", time.Hour, tp)
		require.NoError(t, err)
		foreignIssuer, err := NewTokenManager("secret", "someone-else", time.Hour, tp)
		require.NoError(t, err)

		wrongKey, err := other.Issue("admin-7", "")
		require.NoError(t, err)
		wrongIssuer, err := foreignIssuer.Issue("admin-7", "")
		require.NoError(t, err)

		noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "raffle",
				ExpiresAt: jwt.NewNumericDate(start.Add(time.Hour)),
			},
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "admin-7", Issuer: "raffle"},
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, AdminClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "admin-7",
				Issuer:    "raffle",
				ExpiresAt: jwt.NewNumericDate(start.Add(time.Hour)),
			},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		valid, err := m.Issue("admin-7", "")
		require.NoError(t, err)

		tests := []struct {
			name  string
			token string
		}{
			{"Garbage", "not-a-token"},
			{"Empty", ""},
			{"Wrong key", wrongKey},
			{"Wrong issuer", wrongIssuer},
			{"Missing subject", noSubject},
			{"Missing expiry", noExpiry},
			{"None algorithm", unsigned},
			{"Tampered signature", valid[:strings.LastIndex(valid, ".")+1] + "AAAA"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := m.Parse(tt.token)
				assert.ErrorIs(t, err, ErrInvalidToken)
			})
		}
	})

	t.Run("Issue requires actor", func(t *testing.T) {
		m, err := NewTokenManager("secret", "", time.Hour, timeprovider.NewRealTimeProvider())
		require.NoError(t, err)

		_, err = m.Issue("", "")
		assert.True(t, errs.IsValidationError(err))
	})
}
