package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"claim_triage/internal/config"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	router, cleanup, err := NewRouter(context.Background(), config.Defaults())
	if err != nil {
		t.Fatalf("router: %v", err)
	}
	t.Cleanup(cleanup)
	return router
}

func call(t *testing.T, h http.Handler, method, path, body string, out any) int {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if out != nil && w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w.Code
}

func TestRouter_Ping(t *testing.T) {
	h := newTestRouter(t)
	if code := call(t, h, http.MethodGet, "/v1/ping", "", nil); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
}

func TestRouter_ClaimLifecycle(t *testing.T) {
	h := newTestRouter(t)

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	body := `{
		"vehicle": {"make": "Subaru", "model": "Outback", "year": 2019},
		"damage": {"severity": "moderate", "confidence": 71, "affected_areas": [{"name": "door", "confidence": 70}]},
		"repair_cost": {"total": 2400, "breakdown": [{"category": "Parts", "cost": 1400}, {"category": "Labor", "cost": 1000}]},
		"historical_comparison": {"average_cost": 2200},
		"score": 68
	}`
	if code := call(t, h, http.MethodPost, "/v1/claims", body, &created); code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", code)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("image", "front.png")
	_, _ = fw.Write([]byte("\x89PNG\r\n\x1a\nfake-image-bytes"))
	_ = mw.Close()
	req := httptest.NewRequest(http.MethodPost, "/v1/claims/assess", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("assess: expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	var list struct {
		Count int `json:"count"`
	}
	if code := call(t, h, http.MethodGet, "/v1/claims", "", &list); code != http.StatusOK || list.Count != 2 {
		t.Fatalf("list: code=%d count=%d", code, list.Count)
	}
	if code := call(t, h, http.MethodGet, "/v1/claims?q=outback", "", &list); code != http.StatusOK || list.Count != 1 {
		t.Fatalf("search: code=%d count=%d", code, list.Count)
	}

	var session struct {
		ID       string `json:"id"`
		StepName string `json:"step_name"`
		Finished bool   `json:"finished"`
		Claim    *struct {
			Status string `json:"status"`
		} `json:"claim"`
	}
	if code := call(t, h, http.MethodPost, "/v1/claims/"+created.ID+"/reviews", "", &session); code != http.StatusCreated {
		t.Fatalf("start review: expected 201, got %d", code)
	}
	if code := call(t, h, http.MethodPost, "/v1/claims/"+created.ID+"/reviews", "", nil); code != http.StatusConflict {
		t.Fatalf("second review of the same claim: expected 409, got %d", code)
	}
	stepsPath := "/v1/reviews/" + session.ID + "/steps"

	if code := call(t, h, http.MethodPost, stepsPath, `{"overview": {"notes": "checked"}}`, &session); code != http.StatusOK {
		t.Fatalf("overview: %d", code)
	}
	if code := call(t, h, http.MethodPost, stepsPath, `{}`, nil); code != http.StatusBadRequest {
		t.Fatalf("unverified images must be rejected, got %d", code)
	}

	steps := []string{
		`{"images": {"images_verified": true}}`,
		`{}`,
		`{}`,
		`{"coverage": {"verified": true}}`,
		`{"decision": {"status": "rejected", "reason": "pre-existing damage", "notes": "rust under paint"}}`,
		`{"summary": {"notes": "done"}}`,
	}
	for i, s := range steps {
		if code := call(t, h, http.MethodPost, stepsPath, s, &session); code != http.StatusOK {
			t.Fatalf("step %d: expected 200, got %d", i, code)
		}
	}
	if !session.Finished || session.Claim == nil || session.Claim.Status != "rejected" {
		t.Fatalf("expected committed rejected claim, got %+v", session)
	}

	var stored struct {
		Status      string `json:"status"`
		ReviewNotes string `json:"review_notes"`
		ReviewedAt  string `json:"reviewed_at"`
	}
	if code := call(t, h, http.MethodGet, "/v1/claims/"+created.ID, "", &stored); code != http.StatusOK {
		t.Fatalf("get: %d", code)
	}
	if stored.Status != "rejected" || stored.ReviewNotes != "rust under paint" || stored.ReviewedAt == "" {
		t.Fatalf("unexpected stored claim: %+v", stored)
	}
	if code := call(t, h, http.MethodGet, "/v1/reviews/"+session.ID, "", nil); code != http.StatusNotFound {
		t.Fatalf("finished session must be gone, got %d", code)
	}
	if code := call(t, h, http.MethodPost, "/v1/claims/"+created.ID+"/reviews", "", nil); code != http.StatusConflict {
		t.Fatalf("reviewed claim must not reopen, got %d", code)
	}
}
