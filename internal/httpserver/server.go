// internal/httpserver/server.go
//
// HTTP wiring for the helper's serve mode: the same tracker the interactive
// shell drives, exposed over local HTTP so a browser extension or script can
// drive it instead.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery, timeouts,
//     JSON content type, credentials-friendly CORS).
//   - Session endpoints: POST /session, POST /guess, POST /check, GET /debug.
//   - Diagnostics: "/", "/health".
//
// Notes:
//   - One session at a time; starting a new one discards the old. All access
//     is serialized by the store.Session wrapper.
//   - Constraint violations are advice for the player, not transport errors:
//     /check answers 200 with ok:false and the violation list.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-helper/internal/game"
	"github.com/robalobadob/wordle-helper/internal/store"
	"github.com/robalobadob/wordle-helper/internal/tracker"
)

// Server bundles the router and the single tracked session.
type Server struct {
	r       *chi.Mux
	session *store.Session
}

// New constructs a Server, installs middleware, and registers routes.
func New(session *store.Session) *Server {
	s := &Server{r: chi.NewRouter(), session: session}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-helper","endpoints":["/health","POST /session","POST /guess","POST /check","GET /debug"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// --- session ---
	s.r.Post("/session", s.handleNewSession)
	s.r.Post("/guess", s.handleGuess)
	s.r.Post("/check", s.handleCheck)
	s.r.Get("/debug", s.handleDebug)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ SESSION ------------------------------------

// newSessionReq/Res payloads for POST /session.
type newSessionReq struct {
	Length int `json:"length"` // word length for the new puzzle
}
type newSessionRes struct {
	Length int `json:"length"`
}

// handleNewSession (re)initializes the tracked session.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if err := s.session.Start(req.Length); err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	log.Info().Int("length", req.Length).Msg("session started")
	_ = json.NewEncoder(w).Encode(newSessionRes{Length: req.Length})
}

// guessReq is the payload for POST /guess: a scored guess and the compact
// feedback string ('y' hit, 'm' present, anything else miss).
type guessReq struct {
	Word  string `json:"word"`
	Marks string `json:"marks"`
}

// handleGuess merges one round of feedback into the session.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if err := s.session.Update(req.Word, game.ParseMarks(req.Marks)); err != nil {
		writeSessionErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// checkReq/Res payloads for POST /check.
type checkReq struct {
	Word string `json:"word"`
}
type checkRes struct {
	OK         bool                `json:"ok"`
	Violations []tracker.Violation `json:"violations,omitempty"`
	Reason     string              `json:"reason,omitempty"` // early-gate failures
}

// handleCheck vets a candidate guess. A candidate that contradicts the
// accumulated knowledge still answers 200: the violation list is the
// product, not an error.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	err := s.session.Check(req.Word)
	switch {
	case err == nil:
		_ = json.NewEncoder(w).Encode(checkRes{OK: true})
	case errors.Is(err, store.ErrNoSession):
		writeSessionErr(w, err)
	default:
		res := checkRes{OK: false}
		var ve *tracker.ViolationsError
		if errors.As(err, &ve) {
			res.Violations = ve.Violations
		} else {
			res.Reason = err.Error() // no-information or length gate
		}
		_ = json.NewEncoder(w).Encode(res)
	}
}

// handleDebug returns the knowledge dump as plain text.
func (s *Server) handleDebug(w http.ResponseWriter, r *http.Request) {
	dump, err := s.session.Debug()
	if err != nil {
		writeSessionErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(dump))
}

// writeSessionErr maps a missing session to 409 and anything else to 400.
func writeSessionErr(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNoSession) {
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	}
	http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
}
