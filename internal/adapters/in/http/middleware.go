package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// apiSkipper lets non-API routes (health, swagger) through the API-only
// middleware.
func apiSkipper(c echo.Context) bool {
	return !strings.HasPrefix(c.Request().URL.Path, "/api/")
}

// RequestLogger writes one structured line per request.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			fields := []zap.Field{
				zap.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
				zap.String("method", req.Method),
				zap.String("uri", req.RequestURI),
				zap.Int("status", res.Status),
				zap.Int64("size", res.Size),
				zap.Duration("duration", time.Since(start)),
			}

			switch {
			case res.Status >= http.StatusInternalServerError:
				logger.Error("request failed", append(fields, zap.Error(err))...)
			case res.Status >= http.StatusBadRequest:
				logger.Warn("request rejected", append(fields, zap.Error(err))...)
			default:
				logger.Info("request handled", fields...)
			}
			return nil
		}
	}
}

// OpenAPIValidator checks every API request against doc before it reaches a
// handler. Authentication is left to ActorMiddleware. doc must not declare
// servers so that routes match on the request path alone.
func OpenAPIValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         false,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if apiSkipper(c) {
				return next(c)
			}

			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				switch {
				case errors.Is(err, routers.ErrMethodNotAllowed):
					return echo.NewHTTPError(http.StatusMethodNotAllowed, err.Error())
				default:
					return echo.NewHTTPError(http.StatusNotFound, err.Error())
				}
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				var reqErr *openapi3filter.RequestError
				if errors.As(err, &reqErr) {
					return echo.NewHTTPError(http.StatusBadRequest, reqErr.Error()).SetInternal(err)
				}
				return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
			}
			return next(c)
		}
	}, nil
}
