package history

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ayushbridge/terminology-server/internal/platform/auth"
)

// Handler exposes the per-user translation history.
type Handler struct {
	svc *Service
}

// NewHandler creates a new history handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the history route behind required auth.
func (h *Handler) RegisterRoutes(e *echo.Echo, requireAuth echo.MiddlewareFunc) {
	e.GET("/abha/translation-history", h.ListTranslationHistory, requireAuth)
}

// ListTranslationHistory handles GET /abha/translation-history.
func (h *Handler) ListTranslationHistory(c echo.Context) error {
	abhaID := auth.ABHAIDFromContext(c.Request().Context())
	if abhaID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	records, err := h.svc.ListByUser(c.Request().Context(), abhaID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load translation history")
	}
	return c.JSON(http.StatusOK, ListResponse{History: records})
}
