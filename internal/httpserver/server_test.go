package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-helper/internal/store"
	"github.com/robalobadob/wordle-helper/internal/tracker"
)

func newTestServer() *Server {
	return New(store.NewSession())
}

// do sends a JSON request through the router and returns the recorder.
func do(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestGuessAndCheckRequireSession(t *testing.T) {
	srv := newTestServer()

	rec := do(t, srv, http.MethodPost, "/guess", map[string]string{"word": "soda", "marks": "nnyy"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, srv, http.MethodPost, "/check", map[string]string{"word": "soda"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, srv, http.MethodGet, "/debug", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestNewSessionValidation(t *testing.T) {
	srv := newTestServer()

	rec := do(t, srv, http.MethodPost, "/session", map[string]int{"length": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodPost, "/session", map[string]int{"length": 5})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"length":5}`, rec.Body.String())
}

func TestSessionFlow(t *testing.T) {
	srv := newTestServer()

	rec := do(t, srv, http.MethodPost, "/session", map[string]int{"length": 4})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, http.MethodPost, "/guess", map[string]string{"word": "soda", "marks": "nnyy"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	// Consistent candidate.
	rec = do(t, srv, http.MethodPost, "/check", map[string]string{"word": "muda"})
	require.Equal(t, http.StatusOK, rec.Code)
	var res struct {
		OK         bool                `json:"ok"`
		Violations []tracker.Violation `json:"violations"`
		Reason     string              `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.OK)
	assert.Empty(t, res.Violations)

	// Contradicting candidate: still 200, violations in the body.
	rec = do(t, srv, http.MethodPost, "/check", map[string]string{"word": "sand"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.False(t, res.OK)
	assert.Len(t, res.Violations, 4)
	assert.Equal(t, tracker.ViolationFixedMismatch, res.Violations[0].Kind)

	// Wrong length: early gate, reason instead of violations.
	rec = do(t, srv, http.MethodPost, "/check", map[string]string{"word": "ab"})
	require.Equal(t, http.StatusOK, rec.Code)
	// The response omits "violations" (omitempty), so clear the slice left
	// over from the previous decode before unmarshalling into res again.
	res.Violations = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.False(t, res.OK)
	assert.Empty(t, res.Violations)
	assert.Contains(t, res.Reason, "4 letters")
}

func TestGuessLengthMismatch(t *testing.T) {
	srv := newTestServer()
	require.Equal(t, http.StatusOK, do(t, srv, http.MethodPost, "/session", map[string]int{"length": 4}).Code)

	rec := do(t, srv, http.MethodPost, "/guess", map[string]string{"word": "abc", "marks": "nnn"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDebugDump(t *testing.T) {
	srv := newTestServer()
	require.Equal(t, http.StatusOK, do(t, srv, http.MethodPost, "/session", map[string]int{"length": 4}).Code)
	require.Equal(t, http.StatusOK, do(t, srv, http.MethodPost, "/guess", map[string]string{"word": "soda", "marks": "nnyy"}).Code)

	rec := do(t, srv, http.MethodGet, "/debug", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rec.Body.String(), "fixed: **da")
	assert.Contains(t, rec.Body.String(), "absent: o,s")
}

func TestBadJSON(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/session", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotFoundIsJSON(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"not_found"`)
}
