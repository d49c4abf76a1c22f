package history

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ayushbridge/terminology-server/internal/platform/auth"
)

func newHistoryContext(t *testing.T, abhaID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/abha/translation-history", nil)
	if abhaID != "" {
		req = req.WithContext(context.WithValue(req.Context(), auth.ABHAIDKey, abhaID))
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_ListTranslationHistory(t *testing.T) {
	svc := NewService(NewRepoMem())
	svc.Append(context.Background(), "ABHA001", testEntry("NAM-0101"))
	svc.Append(context.Background(), "ABHA002", testEntry("NAM-0102"))
	h := NewHandler(svc)

	c, rec := newHistoryContext(t, "ABHA001")
	if err := h.ListTranslationHistory(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp ListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.History) != 1 || resp.History[0].ABHAID != "ABHA001" {
		t.Errorf("unexpected history: %+v", resp.History)
	}
}

func TestHandler_EmptyHistoryIsEmptyList(t *testing.T) {
	h := NewHandler(NewService(NewRepoMem()))

	c, rec := newHistoryContext(t, "ABHA001")
	if err := h.ListTranslationHistory(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The client expects a "history" array even when empty, not null.
	body := rec.Body.String()
	var raw map[string]json.RawMessage
	json.Unmarshal([]byte(body), &raw)
	if string(raw["history"]) != "[]" {
		t.Errorf("expected empty array, got %s", body)
	}
}

func TestHandler_NoIdentity(t *testing.T) {
	h := NewHandler(NewService(NewRepoMem()))

	c, _ := newHistoryContext(t, "")
	err := h.ListTranslationHistory(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}
