package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"lotogen/domain/core"
	"lotogen/domain/game"
	"lotogen/ports"
)

// GameRepository implements GameStore for PostgreSQL.
type GameRepository struct {
	db *sqlx.DB
}

// NewGameRepository creates a new PostgreSQL game repository.
func NewGameRepository(db *sqlx.DB) ports.GameStore {
	return &GameRepository{db: db}
}

type gameRow struct {
	ID            string        `db:"id"`
	SessionID     string        `db:"session_id"`
	TargetContest int           `db:"target_contest"`
	Numerals      pq.Int64Array `db:"numerals"`
	Strategy      string        `db:"strategy"`
	Score         float64       `db:"score"`
	Status        string        `db:"status"`
	Hits          int           `db:"hits"`
	Prize         float64       `db:"prize"`
	CreatedAt     time.Time     `db:"created_at"`
	SettledAt     sql.NullTime  `db:"settled_at"`
}

func (r gameRow) toGame() (*game.Game, error) {
	numerals := make([]int, len(r.Numerals))
	for i, n := range r.Numerals {
		numerals[i] = int(n)
	}
	combination, err := game.NewCombination(numerals)
	if err != nil {
		return nil, err
	}

	g := &game.Game{
		ID:            core.GameID(r.ID),
		SessionID:     core.SessionID(r.SessionID),
		TargetContest: r.TargetContest,
		Numerals:      combination,
		Strategy:      r.Strategy,
		Score:         r.Score,
		Status:        game.GameStatus(r.Status),
		Hits:          r.Hits,
		Prize:         r.Prize,
		CreatedAt:     core.NewTimestamp(r.CreatedAt),
	}
	if r.SettledAt.Valid {
		g.SettledAt = core.NewTimestamp(r.SettledAt.Time)
	}
	return g, nil
}

// SaveGames stores a batch of freshly generated games.
func (r *GameRepository) SaveGames(ctx context.Context, games []*game.Game) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, g := range games {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO games (id, session_id, target_contest, numerals, strategy, score, status, hits, prize, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, g.ID.String(), g.SessionID.String(), g.TargetContest, toInt64Array(g.Numerals),
			g.Strategy, g.Score, string(g.Status), g.Hits, g.Prize, g.CreatedAt.Time())
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetGame retrieves one game by ID.
func (r *GameRepository) GetGame(ctx context.Context, id core.GameID) (*game.Game, error) {
	var row gameRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, session_id, target_contest, numerals, strategy, score, status, hits, prize, created_at, settled_at
		FROM games
		WHERE id = $1
	`, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toGame()
}

// ListPending returns unsettled games targeting the given contest.
func (r *GameRepository) ListPending(ctx context.Context, targetContest int) ([]*game.Game, error) {
	var rows []gameRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, session_id, target_contest, numerals, strategy, score, status, hits, prize, created_at, settled_at
		FROM games
		WHERE target_contest = $1 AND status = $2
		ORDER BY created_at, id
	`, targetContest, string(game.StatusPending))
	if err != nil {
		return nil, err
	}
	return rowsToGames(rows)
}

// UpdateSettlement writes hits, prize and status after conferral.
func (r *GameRepository) UpdateSettlement(ctx context.Context, g *game.Game) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE games
		SET status = $2, hits = $3, prize = $4, settled_at = $5
		WHERE id = $1
	`, g.ID.String(), string(g.Status), g.Hits, g.Prize, g.SettledAt.Time())
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return core.ErrGameNotFound
	}
	return nil
}

// ListBySession returns every game generated in one session.
func (r *GameRepository) ListBySession(ctx context.Context, sessionID core.SessionID) ([]*game.Game, error) {
	var rows []gameRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, session_id, target_contest, numerals, strategy, score, status, hits, prize, created_at, settled_at
		FROM games
		WHERE session_id = $1
		ORDER BY created_at, id
	`, sessionID.String())
	if err != nil {
		return nil, err
	}
	return rowsToGames(rows)
}

func rowsToGames(rows []gameRow) ([]*game.Game, error) {
	out := make([]*game.Game, 0, len(rows))
	for _, row := range rows {
		g, err := row.toGame()
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}
