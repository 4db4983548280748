package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robalobadob/mastermind/apps/go-server/internal/game"
)

// timeLayout is fixed-width so stored timestamps sort chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

var _ Store = (*SQLite)(nil)

// SQLite is a Store backed by the games/guesses tables.
// Game rows are upserted; guess rows are append-only and keyed by ordinal.
type SQLite struct {
	db *sql.DB
}

// NewSQLiteStore wraps an opened and migrated database.
func NewSQLiteStore(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

func (s *SQLite) Save(ctx context.Context, g *game.Game) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO games (id, secret, difficulty, mode, status, won, owner_id, partner_id, current_turn_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			won = excluded.won,
			current_turn_id = excluded.current_turn_id,
			updated_at = excluded.updated_at`,
		g.ID, joinDigits(g.Secret), string(g.Difficulty), string(g.Mode), string(g.Status), g.Won,
		g.OwnerID, nullable(g.PartnerID), nullable(g.CurrentTurnID),
		formatTime(g.CreatedAt), formatTime(g.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upsert game %s: %w", g.ID, err)
	}

	for i, gs := range g.Guesses {
		_, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO guesses (game_id, ordinal, input, submitted_by, exact, value_only, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			g.ID, i, joinDigits(gs.Input), gs.SubmittedBy, gs.Feedback.Exact, gs.Feedback.ValueOnly, formatTime(gs.CreatedAt),
		)
		if err != nil {
			return fmt.Errorf("insert guess %d for %s: %w", i, g.ID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLite) Get(ctx context.Context, id string) (*game.Game, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, secret, difficulty, mode, status, won, owner_id,
		       COALESCE(partner_id, ''), COALESCE(current_turn_id, ''), created_at, updated_at
		FROM games WHERE id=?`, id)
	g, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.loadGuesses(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *SQLite) ListByUser(ctx context.Context, userID string) ([]*game.Game, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, secret, difficulty, mode, status, won, owner_id,
		       COALESCE(partner_id, ''), COALESCE(current_turn_id, ''), created_at, updated_at
		FROM games WHERE owner_id=? OR partner_id=?
		ORDER BY created_at ASC, id ASC`, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*game.Game{}
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for _, g := range out {
		if err := s.loadGuesses(ctx, g); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *SQLite) loadGuesses(ctx context.Context, g *game.Game) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT input, submitted_by, exact, value_only, created_at
		FROM guesses WHERE game_id=? ORDER BY ordinal ASC`, g.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	g.Guesses = []game.Guess{}
	for rows.Next() {
		var (
			gs           game.Guess
			input, stamp string
		)
		if err := rows.Scan(&input, &gs.SubmittedBy, &gs.Feedback.Exact, &gs.Feedback.ValueOnly, &stamp); err != nil {
			return err
		}
		if gs.Input, err = game.ParseDigits(input); err != nil {
			return fmt.Errorf("guess input for %s: %w", g.ID, err)
		}
		gs.CreatedAt = parseTime(stamp)
		g.Guesses = append(g.Guesses, gs)
	}
	return rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(row scanner) (*game.Game, error) {
	var (
		g                      game.Game
		secret, diff, mode, st string
		created, updated       string
	)
	if err := row.Scan(&g.ID, &secret, &diff, &mode, &st, &g.Won, &g.OwnerID,
		&g.PartnerID, &g.CurrentTurnID, &created, &updated); err != nil {
		return nil, err
	}
	d, err := game.ParseDigits(secret)
	if err != nil {
		return nil, fmt.Errorf("secret for %s: %w", g.ID, err)
	}
	g.Secret = d
	g.Difficulty = game.Difficulty(diff)
	g.Mode = game.Mode(mode)
	g.Status = game.Status(st)
	g.CreatedAt = parseTime(created)
	g.UpdatedAt = parseTime(updated)
	return &g, nil
}

// joinDigits stores codes in the comma-separated form.
func joinDigits(d game.Digits) string {
	parts := make([]string, len(d))
	for i, x := range d {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func formatTime(t time.Time) string { return t.UTC().Format(timeLayout) }

// parseTime returns the zero time for malformed values.
func parseTime(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return t
}
