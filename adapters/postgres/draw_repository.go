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

// DrawRepository implements DrawStore for PostgreSQL.
type DrawRepository struct {
	db *sqlx.DB
}

// NewDrawRepository creates a new PostgreSQL draw repository.
func NewDrawRepository(db *sqlx.DB) ports.DrawStore {
	return &DrawRepository{db: db}
}

type drawRow struct {
	Contest  int           `db:"contest"`
	DrawnAt  time.Time     `db:"drawn_at"`
	Numerals pq.Int64Array `db:"numerals"`
}

func (r drawRow) toDraw() (game.Draw, error) {
	numerals := make([]int, len(r.Numerals))
	for i, n := range r.Numerals {
		numerals[i] = int(n)
	}
	return game.NewDraw(r.Contest, core.NewTimestamp(r.DrawnAt), numerals)
}

func toInt64Array(c game.Combination) pq.Int64Array {
	out := make(pq.Int64Array, len(c))
	for i, n := range c {
		out[i] = int64(n)
	}
	return out
}

// ListDraws returns draws ordered by contest ascending.
func (r *DrawRepository) ListDraws(ctx context.Context, limit int) (game.History, error) {
	query := `
		SELECT contest, drawn_at, numerals
		FROM draws
		ORDER BY contest DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	var rows []drawRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	// Reverse the DESC page back into ascending order.
	history := make(game.History, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		draw, err := rows[i].toDraw()
		if err != nil {
			return nil, err
		}
		history = append(history, draw)
	}
	return history, nil
}

// GetDraw retrieves one draw by contest number.
func (r *DrawRepository) GetDraw(ctx context.Context, contest int) (game.Draw, error) {
	var row drawRow
	err := r.db.GetContext(ctx, &row, `
		SELECT contest, drawn_at, numerals
		FROM draws
		WHERE contest = $1
	`, contest)
	if errors.Is(err, sql.ErrNoRows) {
		return game.Draw{}, core.ErrDrawNotFound
	}
	if err != nil {
		return game.Draw{}, err
	}
	return row.toDraw()
}

// LatestDraw returns the most recent draw.
func (r *DrawRepository) LatestDraw(ctx context.Context) (game.Draw, error) {
	var row drawRow
	err := r.db.GetContext(ctx, &row, `
		SELECT contest, drawn_at, numerals
		FROM draws
		ORDER BY contest DESC
		LIMIT 1
	`)
	if errors.Is(err, sql.ErrNoRows) {
		return game.Draw{}, core.ErrDrawNotFound
	}
	if err != nil {
		return game.Draw{}, err
	}
	return row.toDraw()
}

// SaveDraws appends imported draws, skipping existing contests.
func (r *DrawRepository) SaveDraws(ctx context.Context, draws game.History) (int, error) {
	saved := 0
	for _, d := range draws {
		res, err := r.db.ExecContext(ctx, `
			INSERT INTO draws (contest, drawn_at, numerals)
			VALUES ($1, $2, $3)
			ON CONFLICT (contest) DO NOTHING
		`, d.Contest, d.DrawnAt.Time(), toInt64Array(d.Numerals))
		if err != nil {
			return saved, err
		}
		if n, err := res.RowsAffected(); err == nil {
			saved += int(n)
		}
	}
	return saved, nil
}
