// internal/httpserver/routes_round.go
//
// HTTP routes for playing rounds. All require a session token.
//   - POST /round/new    → start a round (random, daily or fixed root word)
//   - POST /round/submit → submit a word for the current round
//   - GET  /round        → current root word, accepted words and score
//
// Rejected words are not HTTP failures of the client; they come back as 422
// with the reason, title and message to show the player. A dictionary outage
// is reported as 503 with the same shape.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/store"
)

// newRoundReq is the optional body of POST /round/new.
type newRoundReq struct {
	Daily bool   `json:"daily"` // play the date-seeded root word
	Root  string `json:"root"`  // fixed root word (must be in the root list)
}

// roundRes describes a round; Date is set for daily rounds.
type roundRes struct {
	game.Snapshot
	Date string `json:"date,omitempty"`
}

// handleNewRound starts a new round on the caller's session.
func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	var req newRoundReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_json")
			return
		}
	}

	var root, date string
	switch {
	case req.Root != "":
		root = game.Normalize(req.Root, language.Und)
		if !s.opts.Roots.Contains(root) {
			writeError(w, http.StatusBadRequest, "unknown_root")
			return
		}
	case req.Daily:
		date, root = s.opts.Roots.Daily(s.now(), s.opts.DailySalt)
	default:
		root = s.opts.Roots.Next()
	}

	var snap game.Snapshot
	err := s.opts.Store.Update(r.Context(), sessionID(r), func(g *game.Session) error {
		g.StartRound(root)
		snap = g.Snapshot()
		return nil
	})
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	log.Info().Str("session", snap.ID).Str("root", root).Bool("daily", req.Daily).Msg("round started")
	writeJSON(w, http.StatusOK, roundRes{Snapshot: snap, Date: date})
}

// submitReq is the body of POST /round/submit.
type submitReq struct {
	Word string `json:"word"`
}

// submitRes is returned for an accepted word.
type submitRes struct {
	game.Accepted
	Words []string `json:"words"`
}

// rejectionRes is returned for a turned-down word.
type rejectionRes struct {
	Error   string      `json:"error"`
	Reason  game.Reason `json:"reason"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
}

// handleSubmit validates a word against the current round.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var res submitRes
	err := s.opts.Store.Update(r.Context(), sessionID(r), func(g *game.Session) error {
		acc, err := g.Submit(r.Context(), req.Word)
		if err != nil {
			return err
		}
		res = submitRes{Accepted: acc, Words: g.Snapshot().Words}
		return nil
	})

	if rej, ok := game.AsRejection(err); ok {
		status := http.StatusUnprocessableEntity
		if rej.Reason == game.ReasonOracleUnavailable {
			status = http.StatusServiceUnavailable
			log.Warn().Err(rej.Err).Str("reqId", chimw.GetReqID(r.Context())).Msg("dictionary unavailable")
		} else {
			log.Debug().Str("session", sessionID(r)).Str("reason", string(rej.Reason)).Msg("word rejected")
		}
		writeJSON(w, status, rejectionRes{Error: "rejected", Reason: rej.Reason, Title: rej.Title, Message: rej.Message})
		return
	}
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleRound returns the caller's current session state.
func (s *Server) handleRound(w http.ResponseWriter, r *http.Request) {
	snap, err := s.opts.Store.Snapshot(r.Context(), sessionID(r))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, roundRes{Snapshot: snap})
}

// writeStoreError maps session and store errors to responses.
func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrNoRound):
		writeError(w, http.StatusConflict, "no_round")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusUnauthorized, "session_expired")
	default:
		log.Error().Err(err).Msg("session update")
		writeError(w, http.StatusInternalServerError, "server_error")
	}
}
