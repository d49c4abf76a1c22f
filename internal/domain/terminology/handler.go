package terminology

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler provides the vocabulary search endpoints. The two routes keep
// the paths the browser client already calls.
type Handler struct {
	svc *Service
}

// NewHandler creates a new terminology handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the search routes. Search is unauthenticated.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/namaste/namaste/search", h.SearchNAMASTE)
	e.GET("/icd/icd11/tm2/search", h.SearchICD11TM2)
}

// SearchNAMASTE handles GET /namaste/namaste/search?query=...
func (h *Handler) SearchNAMASTE(c echo.Context) error {
	return h.search(c, SystemNAMASTE)
}

// SearchICD11TM2 handles GET /icd/icd11/tm2/search?query=...
func (h *Handler) SearchICD11TM2(c echo.Context) error {
	return h.search(c, SystemICD11TM2)
}

func (h *Handler) search(c echo.Context, system System) error {
	concepts := h.svc.Search(system, c.QueryParam("query"))
	return c.JSON(http.StatusOK, SearchResponse{Concepts: concepts})
}
