package mood

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	moodmodel "github.com/campuscare/maya/backend/internal/model/mood"
	moodservice "github.com/campuscare/maya/backend/internal/service/mood"
)

func setupRouter() *chi.Mux {
	r := chi.NewRouter()
	New(moodservice.NewService(moodservice.Seed())).RegisterRoutes(r)
	return r
}

func TestListMoods(t *testing.T) {
	r := setupRouter()
	req := httptest.NewRequest(http.MethodGet, "/mood/moods", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var names []string
	if err := json.Unmarshal(resp.Body.Bytes(), &names); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(names) != len(moodmodel.Names()) {
		t.Fatalf("expected %d moods, got %d", len(moodmodel.Names()), len(names))
	}
}

func TestLogEntryEndpoint(t *testing.T) {
	r := setupRouter()

	payload, _ := json.Marshal(map[string]any{"mood": moodmodel.Happy, "energy": 7, "stress": 3})
	req := httptest.NewRequest(http.MethodPost, "/mood/entries", bytes.NewReader(payload))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	payload, _ = json.Marshal(map[string]any{"mood": "furious", "energy": 7, "stress": 3})
	req = httptest.NewRequest(http.MethodPost, "/mood/entries", bytes.NewReader(payload))
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown mood, got %d", resp.Code)
	}
}

func TestHistoryLimitValidation(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/mood/entries?limit=3", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var entries []moodmodel.Entry
	if err := json.Unmarshal(resp.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	req = httptest.NewRequest(http.MethodGet, "/mood/entries?limit=nope", nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad limit, got %d", resp.Code)
	}
}

func TestStatsEndpoint(t *testing.T) {
	r := setupRouter()
	req := httptest.NewRequest(http.MethodGet, "/mood/stats", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var stats moodmodel.Stats
	if err := json.Unmarshal(resp.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.TotalEntries != 7 {
		t.Fatalf("expected the seed week, got %d entries", stats.TotalEntries)
	}
}
