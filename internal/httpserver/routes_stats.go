package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/apps/go-server/internal/stats"
	"github.com/robalobadob/mastermind/apps/go-server/internal/users"
)

func (s *Server) mountStatsRoutes(r chi.Router) {
	r.Get("/stats/me", s.handleMyStats)
	r.Get("/stats/with/{username}", s.handleStatsWith)
}

func (s *Server) handleMyStats(w http.ResponseWriter, r *http.Request) {
	me := currentUser(r)
	games, err := s.games.ListByUser(r.Context(), me.ID)
	if err != nil {
		log.Error().Err(err).Str("user", me.ID).Msg("list games for stats")
		writeError(w, http.StatusInternalServerError, "db_error", "")
		return
	}
	writeJSON(w, http.StatusOK, stats.Compute(games))
}

type collaborationRes struct {
	stats.Collaboration
	FirstName    string `json:"firstName"`
	SecondName   string `json:"secondName"`
	ChampionText string `json:"championText"`
}

// handleStatsWith reports the caller's collaborative record with {username}.
func (s *Server) handleStatsWith(w http.ResponseWriter, r *http.Request) {
	me := currentUser(r)
	partner, err := s.users.FindByUsername(r.Context(), users.Normalize(chi.URLParam(r, "username")))
	if errors.Is(err, users.ErrNotFound) {
		writeError(w, http.StatusNotFound, "user_not_found", "")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("find partner")
		writeError(w, http.StatusInternalServerError, "db_error", "")
		return
	}

	games, err := s.games.ListByUser(r.Context(), me.ID)
	if err != nil {
		log.Error().Err(err).Str("user", me.ID).Msg("list games for stats")
		writeError(w, http.StatusInternalServerError, "db_error", "")
		return
	}
	names, err := s.users.Usernames(r.Context(), me.ID, partner.ID)
	if err != nil {
		log.Error().Err(err).Msg("resolve usernames")
		writeError(w, http.StatusInternalServerError, "db_error", "")
		return
	}
	c := stats.Collaborative(games, me.ID, partner.ID)
	writeJSON(w, http.StatusOK, collaborationRes{
		Collaboration: c,
		FirstName:     names[me.ID],
		SecondName:    names[partner.ID],
		ChampionText:  c.Champion.Rename(names).String(),
	})
}
