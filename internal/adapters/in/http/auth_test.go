package http

import (
	"strconv"
	"testing"
	"time"

	"okada/internal/core/domain/model/order"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// issueToken signs a token the way the auth service does.
func issueToken(v *TokenVerifier, actor order.Actor, ttl time.Duration, now time.Time) (string, error) {
	claims := actorClaims{
		Role: string(actor.Type),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(actor.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

func TestTokenVerifier_RoundTrip(t *testing.T) {
	verifier, err := NewTokenVerifier(testSecret)
	require.NoError(t, err)

	rider := order.Actor{Type: order.ActorRider, ID: 31}
	token, err := issueToken(verifier, rider, time.Hour, time.Now())
	require.NoError(t, err)

	actor, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, rider, actor)
}

func TestTokenVerifier_Rejects(t *testing.T) {
	verifier, err := NewTokenVerifier(testSecret)
	require.NoError(t, err)
	other, err := NewTokenVerifier([]byte("someone else"))
	require.NoError(t, err)

	foreign, err := issueToken(other, admin, time.Hour, time.Now())
	require.NoError(t, err)

	expired, err := issueToken(verifier, admin, time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	unknownRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, actorClaims{
		Role:             "courier",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "3"},
	}).SignedString(testSecret)
	require.NoError(t, err)

	adminWithoutID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, actorClaims{
		Role: string(order.ActorAdmin),
	}).SignedString(testSecret)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":          "not-a-token",
		"foreign secret":   foreign,
		"expired":          expired,
		"unknown role":     unknownRole,
		"admin without id": adminWithoutID,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := verifier.Verify(token)
			assert.ErrorIs(t, err, ErrTokenIsInvalid)
		})
	}
}

func TestNewTokenVerifier_EmptySecret(t *testing.T) {
	_, err := NewTokenVerifier(nil)
	assert.Error(t, err)
}
