package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"okada/internal/core/domain/model/order"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const actorContextKey = "okada.actor"

var (
	ErrTokenIsMissing = errors.New("bearer token is missing")
	ErrTokenIsInvalid = errors.New("bearer token is invalid")
)

// actorClaims carries the operator identity: the subject is the numeric
// actor id, the role one of admin, rider or system.
type actorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenVerifier checks HS256 tokens issued by the auth service.
type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret []byte) (*TokenVerifier, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwt secret is empty")
	}
	return &TokenVerifier{secret: secret}, nil
}

// Verify returns the actor named by a valid, unexpired token.
func (v *TokenVerifier) Verify(raw string) (order.Actor, error) {
	claims := &actorClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return order.Actor{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}
	if !token.Valid {
		return order.Actor{}, ErrTokenIsInvalid
	}

	var id int64
	if claims.Subject != "" {
		id, err = strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			return order.Actor{}, fmt.Errorf("%w: subject %q is not numeric", ErrTokenIsInvalid, claims.Subject)
		}
	}

	actor, err := order.NewActor(order.ActorType(claims.Role), id)
	if err != nil {
		return order.Actor{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}
	return actor, nil
}

// ActorMiddleware rejects requests without a valid bearer token and stores
// the actor in the echo context.
func ActorMiddleware(verifier *TokenVerifier, skipper middleware.Skipper) echo.MiddlewareFunc {
	if skipper == nil {
		skipper = middleware.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || strings.TrimSpace(raw) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, ErrTokenIsMissing.Error())
			}

			actor, err := verifier.Verify(strings.TrimSpace(raw))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, ErrTokenIsInvalid.Error()).SetInternal(err)
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

func actorFrom(c echo.Context) (order.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(order.Actor)
	return actor, ok
}
