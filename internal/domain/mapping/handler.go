package mapping

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ayushbridge/terminology-server/internal/domain/terminology"
	"github.com/ayushbridge/terminology-server/internal/platform/auth"
)

// Recorder persists one performed translation for a user. The handler,
// not the resolver, decides when to record.
type Recorder interface {
	Record(ctx context.Context, abhaID string, m Mapping) error
}

// Handler exposes GET /mapping/translate.
type Handler struct {
	resolver *Resolver
	recorder Recorder
}

// NewHandler creates a new mapping handler.
func NewHandler(resolver *Resolver, recorder Recorder) *Handler {
	return &Handler{resolver: resolver, recorder: recorder}
}

// RegisterRoutes registers the translate route. Auth is optional: the
// lookup itself is public, but save_history=true needs a valid token.
func (h *Handler) RegisterRoutes(e *echo.Echo, optionalAuth echo.MiddlewareFunc) {
	e.GET("/mapping/translate", h.Translate, optionalAuth)
}

// Translate handles GET /mapping/translate?system=&code=&save_history=.
// A recognized code with no mappings is success with an empty list, not
// an error.
func (h *Handler) Translate(c echo.Context) error {
	system, err := terminology.ParseSystem(c.QueryParam("system"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	code := strings.TrimSpace(c.QueryParam("code"))
	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "code parameter is required")
	}

	saveHistory := false
	if raw := c.QueryParam("save_history"); raw != "" {
		saveHistory, err = strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "save_history must be true or false")
		}
	}

	mappings := h.resolver.Resolve(system, code)

	if saveHistory {
		abhaID := auth.ABHAIDFromContext(c.Request().Context())
		if abhaID == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required to save history")
		}
		// The client records the lookup it acted on; the first mapping
		// is the one it displays.
		if len(mappings) > 0 {
			if err := h.recorder.Record(c.Request().Context(), abhaID, mappings[0]); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "failed to save translation history")
			}
		}
	}

	return c.JSON(http.StatusOK, TranslateResponse{
		ResourceType: "ConceptMap",
		ID:           "ConceptMap",
		Name:         "NAMASTE-ICD11-SNOMED-LOINC Map",
		Mappings:     mappings,
	})
}
