package screening

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	analysis "github.com/campuscare/maya/backend/internal/analysis/screening"
)

func setupRouter() *chi.Mux {
	r := chi.NewRouter()
	New().RegisterRoutes(r)
	return r
}

func TestQuestionsEndpoint(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/screening/phq9/questions", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Questions []string `json:"questions"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Questions) != 9 {
		t.Fatalf("expected 9 questions, got %d", len(body.Questions))
	}

	req = httptest.NewRequest(http.MethodGet, "/screening/mmpi/questions", nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown instrument, got %d", resp.Code)
	}
}

func TestScoreEndpoint(t *testing.T) {
	r := setupRouter()

	payload, _ := json.Marshal(map[string]any{"answers": []int{0, 1, 2, 3, 0, 1, 2}})
	req := httptest.NewRequest(http.MethodPost, "/screening/gad7/score", bytes.NewReader(payload))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var result analysis.Result
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Score != 9 || result.Severity != "Mild Anxiety" {
		t.Fatalf("unexpected result: %+v", result)
	}

	// Wrong answer count is a client error.
	payload, _ = json.Marshal(map[string]any{"answers": []int{0, 1}})
	req = httptest.NewRequest(http.MethodPost, "/screening/gad7/score", bytes.NewReader(payload))
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
