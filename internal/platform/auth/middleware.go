package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

// ABHAIDKey carries the authenticated ABHA id on the request context.
const ABHAIDKey contextKey = "abha_id"

// TokenVerifier validates a bearer token and returns the bound ABHA id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// ABHAIDFromContext returns the authenticated ABHA id, or "" when the
// request carried no valid token.
func ABHAIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ABHAIDKey).(string)
	return id
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

func setIdentity(c echo.Context, abhaID string) {
	ctx := context.WithValue(c.Request().Context(), ABHAIDKey, abhaID)
	c.SetRequest(c.Request().WithContext(ctx))
}

// Require rejects requests without a valid bearer token.
func Require(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}
			abhaID, err := verifier.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}
			setIdentity(c, abhaID)
			return next(c)
		}
	}
}

// Optional lets anonymous requests through but still rejects a token that
// is present and invalid, so a stale session surfaces as 401 rather than
// silently degrading.
func Optional(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return next(c)
			}
			abhaID, err := verifier.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}
			setIdentity(c, abhaID)
			return next(c)
		}
	}
}
