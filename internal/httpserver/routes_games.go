// apps/go-server/internal/httpserver/routes_games.go
//
// Game endpoints (all require auth):
//   - POST /games                → create a game (single player or collaborative, optional daily code)
//   - GET  /games                → caller's games, oldest first
//   - GET  /games/{id}           → one game (participants only)
//   - POST /games/{id}/guesses   → submit a guess
//   - POST /games/validate       → pre-validate a guess for a difficulty; never mutates state
//
// The secret is only revealed once a game is completed.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/apps/go-server/internal/game"
	"github.com/robalobadob/mastermind/apps/go-server/internal/store"
	"github.com/robalobadob/mastermind/apps/go-server/internal/users"
)

func (s *Server) mountGameRoutes(r chi.Router) {
	r.Route("/games", func(r chi.Router) {
		r.Post("/", s.handleNewGame)
		r.Get("/", s.handleListGames)
		r.Post("/validate", s.handleValidate)
		r.Get("/{id}", s.handleGetGame)
		r.Post("/{id}/guesses", s.handleGuess)
	})
}

// ------------------------------- views -------------------------------------

type guessView struct {
	Input       string        `json:"input"`
	SubmittedBy string        `json:"submittedBy"`
	Feedback    game.Feedback `json:"feedback"`
	Text        string        `json:"text"`
	CreatedAt   time.Time     `json:"createdAt"`
}

type gameView struct {
	ID            string          `json:"id"`
	Difficulty    game.Difficulty `json:"difficulty"`
	Mode          game.Mode       `json:"mode"`
	Status        game.Status     `json:"status"`
	State         string          `json:"state"` // "playing" | "won" | "lost"
	Won           bool            `json:"won"`
	OwnerID       string          `json:"ownerId"`
	PartnerID     string          `json:"partnerId,omitempty"`
	CurrentTurnID string          `json:"currentTurnId,omitempty"`
	YourTurn      bool            `json:"yourTurn"`
	AttemptsLeft  int             `json:"attemptsLeft"`
	Guesses       []guessView     `json:"guesses"`
	Secret        string          `json:"secret,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// viewOf renders g for userID.
func viewOf(g *game.Game, userID string) gameView {
	v := gameView{
		ID:            g.ID,
		Difficulty:    g.Difficulty,
		Mode:          g.Mode,
		Status:        g.Status,
		State:         g.State(),
		Won:           g.Won,
		OwnerID:       g.OwnerID,
		PartnerID:     g.PartnerID,
		CurrentTurnID: g.CurrentTurnID,
		YourTurn:      g.Status == game.StatusActive && g.IsTurnOf(userID),
		AttemptsLeft:  g.AttemptsLeft(),
		Guesses:       make([]guessView, 0, len(g.Guesses)),
		CreatedAt:     g.CreatedAt,
	}
	for _, gs := range g.Guesses {
		v.Guesses = append(v.Guesses, viewOfGuess(gs))
	}
	if g.Status == game.StatusCompleted {
		v.Secret = g.Secret.String()
	}
	return v
}

func viewOfGuess(gs game.Guess) guessView {
	return guessView{
		Input:       gs.Input.String(),
		SubmittedBy: gs.SubmittedBy,
		Feedback:    gs.Feedback,
		Text:        gs.Feedback.String(),
		CreatedAt:   gs.CreatedAt,
	}
}

// ------------------------------ handlers -----------------------------------

type newGameReq struct {
	Difficulty string `json:"difficulty"` // "easy" (default) | "medium" | "hard"
	Mode       string `json:"mode"`       // "single_player" (default) | "collaborative"
	Partner    string `json:"partner"`    // partner username, collaborative only
	Daily      bool   `json:"daily"`      // use the shared daily code
}

// handleNewGame picks a secret, builds the game through the engine and saves it.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	me := currentUser(r)
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "")
		return
	}
	d, err := game.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_difficulty", err.Error())
		return
	}
	m, err := game.ParseMode(req.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_mode", err.Error())
		return
	}

	var partnerID string
	if req.Partner != "" {
		p, err := s.users.FindByUsername(r.Context(), users.Normalize(req.Partner))
		if errors.Is(err, users.ErrNotFound) {
			writeError(w, http.StatusNotFound, "partner_not_found", "")
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("find partner")
			writeError(w, http.StatusInternalServerError, "db_error", "")
			return
		}
		partnerID = p.ID
	}

	secret, err := s.secretFor(d, req.Daily)
	if err != nil {
		log.Error().Err(err).Str("difficulty", string(d)).Msg("pick secret")
		writeError(w, http.StatusInternalServerError, "secret_failed", "")
		return
	}
	g, err := game.New(secret, d, m, me.ID, partnerID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_game", err.Error())
		return
	}
	if err := s.games.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed", "")
		return
	}

	log.Info().Str("gameId", g.ID).Str("owner", me.ID).Str("difficulty", string(d)).
		Str("mode", string(m)).Bool("daily", req.Daily).Msg("game created")
	writeJSON(w, http.StatusCreated, viewOf(g, me.ID))
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	me := currentUser(r)
	games, err := s.games.ListByUser(r.Context(), me.ID)
	if err != nil {
		log.Error().Err(err).Str("user", me.ID).Msg("list games")
		writeError(w, http.StatusInternalServerError, "db_error", "")
		return
	}
	out := make([]gameView, 0, len(games))
	for _, g := range games {
		out = append(out, viewOf(g, me.ID))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, ok := s.loadForCaller(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, viewOf(g, currentUser(r).ID))
}

type guessReq struct {
	Guess string `json:"guess"`
}

type guessRes struct {
	Outcome      game.Outcome  `json:"outcome"`
	Feedback     game.Feedback `json:"feedback"`
	Text         string        `json:"text"`
	AttemptsLeft int           `json:"attemptsLeft"`
	Game         gameView      `json:"game"`
}

// handleGuess applies a guess under the per-game lock, hands the turn over
// after a non-terminal outcome, and commits the game.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	me := currentUser(r)
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "")
		return
	}

	unlock := s.locks.Lock(chi.URLParam(r, "id"))
	defer unlock()

	g, ok := s.loadForCaller(w, r)
	if !ok {
		return
	}
	res, err := g.SubmitGuess(req.Guess, me.ID)
	if err != nil {
		status, code := guessErrorStatus(err)
		writeError(w, status, code, err.Error())
		return
	}
	if res.Outcome == game.OutcomeContinue {
		g.SwitchTurn()
	}
	if err := s.games.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("save guess")
		writeError(w, http.StatusInternalServerError, "save_failed", "")
		return
	}

	ev := log.Debug()
	if res.Outcome != game.OutcomeContinue {
		ev = log.Info()
	}
	ev.Str("gameId", g.ID).Str("user", me.ID).Str("outcome", string(res.Outcome)).
		Int("attempt", len(g.Guesses)).Msg("guess applied")

	writeJSON(w, http.StatusOK, guessRes{
		Outcome:      res.Outcome,
		Feedback:     res.Guess.Feedback,
		Text:         res.Guess.Feedback.String(),
		AttemptsLeft: res.AttemptsLeft,
		Game:         viewOf(g, me.ID),
	})
}

type validateReq struct {
	Guess      string `json:"guess"`
	Difficulty string `json:"difficulty"`
}

type validateRes struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "")
		return
	}
	d, err := game.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_difficulty", err.Error())
		return
	}
	if err := game.ValidateFormat(req.Guess, d); err != nil {
		writeJSON(w, http.StatusOK, validateRes{Valid: false, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, validateRes{Valid: true})
}

// loadForCaller fetches {id} and checks the caller plays in it. It writes the
// error response itself and reports whether the caller may continue.
func (s *Server) loadForCaller(w http.ResponseWriter, r *http.Request) (*game.Game, bool) {
	me := currentUser(r)
	g, err := s.games.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "")
		return nil, false
	}
	if err != nil {
		log.Error().Err(err).Msg("load game")
		writeError(w, http.StatusInternalServerError, "db_error", "")
		return nil, false
	}
	if !g.Participant(me.ID) {
		writeError(w, http.StatusForbidden, "forbidden", "")
		return nil, false
	}
	return g, true
}

// guessErrorStatus maps engine errors to HTTP status and error code.
func guessErrorStatus(err error) (int, string) {
	switch {
	case game.IsValidation(err):
		return http.StatusUnprocessableEntity, "invalid_guess"
	case errors.Is(err, game.ErrTurnViolation):
		return http.StatusConflict, "not_your_turn"
	case errors.Is(err, game.ErrGameCompleted):
		return http.StatusConflict, "game_completed"
	case errors.Is(err, game.ErrMaxAttempts):
		return http.StatusConflict, "max_attempts"
	}
	return http.StatusInternalServerError, "internal"
}
