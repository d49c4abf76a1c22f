package abha

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ayushbridge/terminology-server/internal/platform/auth"
)

// Handler exposes login and profile endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new ABHA handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the ABHA routes. Login is open; the profile
// requires a valid bearer token.
func (h *Handler) RegisterRoutes(e *echo.Echo, requireAuth echo.MiddlewareFunc) {
	e.POST("/abha/login", h.Login)
	e.GET("/abha/profile", h.GetProfile, requireAuth)
}

// Login handles POST /abha/login.
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ABHAID == "" || req.Phone == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "abha_id and phone are required")
	}

	token, identity, err := h.svc.Login(c.Request().Context(), req.ABHAID, req.Phone)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Message:     "Login successful",
		AccessToken: token,
		ABHAUser:    identity,
	})
}

// GetProfile handles GET /abha/profile.
func (h *Handler) GetProfile(c echo.Context) error {
	abhaID := auth.ABHAIDFromContext(c.Request().Context())
	if abhaID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	identity, err := h.svc.Profile(c.Request().Context(), abhaID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load profile")
	}
	return c.JSON(http.StatusOK, identity)
}
