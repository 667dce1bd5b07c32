package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MaRkS1234567/MySite-web/core/lead"
)

// fakeRelay records sent messages and can be told to fail.
type fakeRelay struct {
	sent []lead.Message
	err  error
}

func (f *fakeRelay) Send(ctx context.Context, m lead.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

func newTestServer(relay lead.Relay) *Server {
	return NewServer("test", relay, nil)
}

func doRequest(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func TestCORSHeadersOnEveryResponse(t *testing.T) {
	s := newTestServer(&fakeRelay{})

	for _, path := range []string{"/contact", "/estimate", "/health", "/no-such-route"} {
		w := doRequest(s, http.MethodGet, path, "")
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("%s: Allow-Origin = %q", path, got)
		}
		if got := w.Header().Get("Access-Control-Allow-Methods"); got != "POST, OPTIONS" {
			t.Errorf("%s: Allow-Methods = %q", path, got)
		}
		if got := w.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type" {
			t.Errorf("%s: Allow-Headers = %q", path, got)
		}
	}
}

func TestPreflightShortCircuits(t *testing.T) {
	s := newTestServer(&fakeRelay{})

	w := doRequest(s, http.MethodOptions, "/contact", "")
	if w.Code != http.StatusOK {
		t.Errorf("OPTIONS /contact = %d, want 200", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("OPTIONS body = %q, want empty", w.Body.String())
	}
}

func TestContactRejectsNonPost(t *testing.T) {
	s := newTestServer(&fakeRelay{})

	w := doRequest(s, http.MethodGet, "/contact", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET /contact = %d, want 405", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "Method not allowed" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestContactSuccess(t *testing.T) {
	relay := &fakeRelay{}
	s := newTestServer(relay)

	w := doRequest(s, http.MethodPost, "/contact", `{
		"type": "tutor",
		"format": "Подготовка к ЕГЭ",
		"name": "Анна",
		"contact": "@anna",
		"description": "11 класс"
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /contact = %d, body %s", w.Code, w.Body.String())
	}

	var body map[string]bool
	json.Unmarshal(w.Body.Bytes(), &body)
	if !body["success"] {
		t.Errorf("body = %s", w.Body.String())
	}

	if len(relay.sent) != 1 {
		t.Fatalf("relay received %d messages, want 1", len(relay.sent))
	}
	if relay.sent[0].Kind != lead.KindTutor || relay.sent[0].Name != "Анна" {
		t.Errorf("relay received %+v", relay.sent[0])
	}
}

func TestContactDefaultsToDevKind(t *testing.T) {
	relay := &fakeRelay{}
	s := newTestServer(relay)

	doRequest(s, http.MethodPost, "/contact", `{"name":"Иван","contact":"x","description":"y"}`)
	if len(relay.sent) != 1 || relay.sent[0].Kind != lead.KindDev {
		t.Errorf("relay received %+v, want dev kind", relay.sent)
	}
}

func TestContactRelayFailure(t *testing.T) {
	s := newTestServer(&fakeRelay{err: fmt.Errorf("bot API returned 401")})

	w := doRequest(s, http.MethodPost, "/contact", `{"name":"x","contact":"y","description":"z"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("POST /contact = %d, want 500", w.Code)
	}

	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != "Failed to send message" {
		t.Errorf("error = %q", body["error"])
	}
	// The relay cause never reaches the response.
	if strings.Contains(w.Body.String(), "401") {
		t.Errorf("response leaks the relay error: %s", w.Body.String())
	}
}

func TestContactMalformedJSON(t *testing.T) {
	s := newTestServer(&fakeRelay{})

	w := doRequest(s, http.MethodPost, "/contact", `{"name": `)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("malformed POST = %d, want 500", w.Code)
	}

	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != "Internal server error" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestEstimate(t *testing.T) {
	s := newTestServer(&fakeRelay{})

	w := doRequest(s, http.MethodPost, "/estimate", `{
		"format": "individual",
		"intensity": "standard",
		"frequency": "2x",
		"goal": "oge",
		"duration": 60,
		"urgency": "later"
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /estimate = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Min        string   `json:"min"`
		Max        string   `json:"max"`
		MonthlyMin string   `json:"monthly_min"`
		MonthlyMax string   `json:"monthly_max"`
		Currency   string   `json:"currency"`
		Summary    string   `json:"summary"`
		Includes   []string `json:"includes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Min != "2450" || resp.Max != "2950" {
		t.Errorf("range = %s–%s, want 2450–2950", resp.Min, resp.Max)
	}
	if resp.MonthlyMin != "19600" || resp.MonthlyMax != "23600" {
		t.Errorf("monthly = %s–%s, want 19600–23600", resp.MonthlyMin, resp.MonthlyMax)
	}
	if resp.Currency != "RUB" {
		t.Errorf("currency = %q", resp.Currency)
	}
	if !strings.Contains(resp.Summary, "Индивидуально") {
		t.Errorf("summary = %q", resp.Summary)
	}
	if len(resp.Includes) != 4 {
		t.Errorf("includes has %d lines, want 4", len(resp.Includes))
	}
}

func TestEstimateRejectsUnknownOption(t *testing.T) {
	s := newTestServer(&fakeRelay{})

	w := doRequest(s, http.MethodPost, "/estimate", `{
		"format": "webinar",
		"intensity": "standard",
		"frequency": "2x",
		"goal": "oge",
		"duration": 60,
		"urgency": "later"
	}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("POST /estimate = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "VALIDATION_ERROR") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestEstimateRejectsMalformedJSON(t *testing.T) {
	s := newTestServer(&fakeRelay{})

	w := doRequest(s, http.MethodPost, "/estimate", `{`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed POST /estimate = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "INVALID_JSON") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestDirections(t *testing.T) {
	s := newTestServer(&fakeRelay{})

	w := doRequest(s, http.MethodGet, "/directions", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /directions = %d", w.Code)
	}

	var resp struct {
		Directions []json.RawMessage `json:"directions"`
		Count      int               `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 4 || len(resp.Directions) != 4 {
		t.Errorf("count = %d, directions = %d, want 4", resp.Count, len(resp.Directions))
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(&fakeRelay{})

	w := doRequest(s, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "healthy") {
		t.Errorf("body = %s", w.Body.String())
	}
}
