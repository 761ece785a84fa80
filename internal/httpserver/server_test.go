package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
)

var dict = []string{"arise", "crane", "raise", "slate", "trace"}

func newTestServer(t *testing.T) (*Server, store.Store) {
	t.Helper()
	st := store.NewMemoryStore()
	return New(st, Config{Dict: dict, Opening: "rales", Workers: 2}), st
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func newSession(t *testing.T, s *Server) newSessionRes {
	t.Helper()
	rec := do(t, s, http.MethodPost, "/session/new", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /session/new = %d, want 200", rec.Code)
	}
	return decode[newSessionRes](t, rec)
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestDebugWords(t *testing.T) {
	s, _ := newTestServer(t)
	got := decode[map[string]int](t, do(t, s, http.MethodGet, "/debug/words", ""))
	if got["words"] != len(dict) {
		t.Errorf("words = %d, want %d", got["words"], len(dict))
	}
}

func TestSessionFlow(t *testing.T) {
	s, _ := newTestServer(t)
	ns := newSession(t, s)
	if ns.Suggestion != "rales" || ns.Remaining != len(dict) {
		t.Fatalf("new session = %+v", ns)
	}

	rec := do(t, s, http.MethodPost, "/session/feedback", `{"sessionId":"`+ns.SessionID+`","feedback":"yy-y-"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("feedback = %d: %s", rec.Code, rec.Body.String())
	}
	fb := decode[feedbackRes](t, rec)
	if fb.State != "playing" || fb.Suggestion != "crane" || fb.Remaining != 2 {
		t.Errorf("feedback response = %+v", fb)
	}

	rec = do(t, s, http.MethodPost, "/session/feedback", `{"sessionId":"`+ns.SessionID+`","feedback":"ggggg"}`)
	fb = decode[feedbackRes](t, rec)
	if fb.State != "won" {
		t.Errorf("state = %q, want won", fb.State)
	}

	rec = do(t, s, http.MethodPost, "/session/feedback", `{"sessionId":"`+ns.SessionID+`","feedback":"ggggg"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("feedback after win = %d, want 409", rec.Code)
	}
}

func TestFeedback_BadLengthIsRecoverable(t *testing.T) {
	s, st := newTestServer(t)
	ns := newSession(t, s)

	rec := do(t, s, http.MethodPost, "/session/feedback", `{"sessionId":"`+ns.SessionID+`","feedback":"gy"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("short feedback = %d, want 400", rec.Code)
	}
	sess, err := st.Get(testContext(t), ns.SessionID)
	if err != nil {
		t.Fatal(err)
	}
	if snap := sess.Snapshot(); snap.Turns != 0 || snap.Remaining != len(dict) {
		t.Errorf("bad feedback consumed a turn: %+v", snap)
	}
}

func TestFeedback_Stuck(t *testing.T) {
	s, _ := newTestServer(t)
	ns := newSession(t, s)
	rec := do(t, s, http.MethodPost, "/session/feedback", `{"sessionId":"`+ns.SessionID+`","feedback":"-y--g"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("feedback = %d", rec.Code)
	}
	fb := decode[feedbackRes](t, rec)
	if fb.State != "stuck" || fb.Remaining != 0 || fb.Suggestion != "" {
		t.Errorf("stuck response = %+v", fb)
	}
}

func TestFeedback_Errors(t *testing.T) {
	s, _ := newTestServer(t)
	if rec := do(t, s, http.MethodPost, "/session/feedback", `{`); rec.Code != http.StatusBadRequest {
		t.Errorf("bad json = %d, want 400", rec.Code)
	}
	if rec := do(t, s, http.MethodPost, "/session/feedback", `{"sessionId":"nope","feedback":"ggggg"}`); rec.Code != http.StatusNotFound {
		t.Errorf("unknown session = %d, want 404", rec.Code)
	}
}

func TestDeleteSession(t *testing.T) {
	s, st := newTestServer(t)
	ns := newSession(t, s)
	if rec := do(t, s, http.MethodDelete, "/session/"+ns.SessionID, ""); rec.Code != http.StatusNoContent {
		t.Fatalf("DELETE = %d, want 204", rec.Code)
	}
	if st.Len() != 0 {
		t.Errorf("store still holds %d sessions", st.Len())
	}
	if rec := do(t, s, http.MethodDelete, "/session/"+ns.SessionID, ""); rec.Code != http.StatusNotFound {
		t.Errorf("second DELETE = %d, want 404", rec.Code)
	}
}

func TestNotFound(t *testing.T) {
	s, _ := newTestServer(t)
	if rec := do(t, s, http.MethodGet, "/nope", ""); rec.Code != http.StatusNotFound {
		t.Errorf("GET /nope = %d, want 404", rec.Code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	st := store.NewMemoryStore()
	s := New(st, Config{Dict: dict, Opening: "rales", Origin: "https://solver.example"})

	req := httptest.NewRequest(http.MethodOptions, "/session/new", nil)
	req.Header.Set("Origin", "https://solver.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("OPTIONS /session/new = %d, want 204", rec.Code)
	}
	want := map[string]string{
		"Access-Control-Allow-Origin":      "https://solver.example",
		"Access-Control-Allow-Credentials": "true",
		"Access-Control-Allow-Methods":     "GET,POST,DELETE,OPTIONS",
		"Vary":                             "Origin",
	}
	for k, v := range want {
		if got := rec.Header().Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
	if st.Len() != 0 {
		t.Errorf("preflight created %d sessions", st.Len())
	}
}

func TestCORS_DefaultOrigin(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/health", "")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q, want http://localhost:5173", got)
	}
}

// bigDict returns 15625 sorted words, none containing q.
func bigDict() []string {
	var letters []byte
	for c := byte('a'); c <= 'z'; c++ {
		if c != 'q' {
			letters = append(letters, c)
		}
	}
	var out []string
	for _, a := range letters {
		for _, b := range letters {
			for _, c := range letters {
				out = append(out, string([]byte{'a', 'b', a, b, c}))
			}
		}
	}
	return out
}

func TestFeedback_TimeoutAnswers504AndKeepsSession(t *testing.T) {
	big := bigDict()
	st := store.NewMemoryStore()
	s := New(st, Config{Dict: big, Opening: "qqqqq", Workers: 1, Timeout: time.Millisecond})

	// saved directly so the 1ms bound only applies to the feedback request
	sess := session.New(big, "qqqqq", solver.WithWorkers(1))
	if err := st.Save(testContext(t), sess); err != nil {
		t.Fatal(err)
	}

	rec := do(t, s, http.MethodPost, "/session/feedback", `{"sessionId":"`+sess.ID+`","feedback":"-----"}`)
	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("feedback = %d (%s), want 504", rec.Code, rec.Body.String())
	}
	if snap := sess.Snapshot(); snap.Turns != 0 || snap.Remaining != len(big) || snap.Suggestion != "qqqqq" {
		t.Errorf("timed out feedback changed the session: %+v", snap)
	}
}
