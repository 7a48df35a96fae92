package excel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"lotogen/domain/core"
	"lotogen/domain/game"
	"lotogen/internal/errors"
)

// dateLayouts covers the formats seen in official history exports.
var dateLayouts = []string{
	"02/01/2006",
	"2006-01-02",
	"02-01-2006",
}

// HistoryReader loads official draw history from an Excel export.
// Expected layout: a header row, then one row per contest with the
// contest number, the draw date, and fifteen numeral columns.
type HistoryReader struct {
	path string
}

// NewHistoryReader creates a reader for the given file.
func NewHistoryReader(path string) *HistoryReader {
	return &HistoryReader{path: path}
}

// Read parses the whole file into a validated history, ordered by
// contest ascending. Rows that fail to parse abort the import: a
// partial history would silently skew every statistic downstream.
func (r *HistoryReader) Read() (game.History, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, errors.ImportError(fmt.Sprintf("failed to open %s", r.path), err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.ImportError("workbook has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.ImportError("failed to read rows", err)
	}
	if len(rows) < 2 {
		return nil, errors.ImportError("workbook has no data rows", nil)
	}

	history := make(game.History, 0, len(rows)-1)
	for i, row := range rows[1:] {
		draw, err := parseRow(row)
		if err != nil {
			return nil, errors.ImportError(fmt.Sprintf("row %d", i+2), err)
		}
		history = append(history, draw)
	}

	if err := history.Validate(); err != nil {
		return nil, errors.ImportError("history ordering", err)
	}
	return history, nil
}

// parseRow expects: contest, date, then 15 numerals.
func parseRow(row []string) (game.Draw, error) {
	if len(row) < 2+game.DrawSize {
		return game.Draw{}, fmt.Errorf("expected %d columns, got %d", 2+game.DrawSize, len(row))
	}

	contest, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return game.Draw{}, fmt.Errorf("invalid contest %q: %w", row[0], err)
	}

	drawnAt, err := parseDate(strings.TrimSpace(row[1]))
	if err != nil {
		return game.Draw{}, err
	}

	numerals := make([]int, 0, game.DrawSize)
	for _, cell := range row[2 : 2+game.DrawSize] {
		n, err := strconv.Atoi(strings.TrimSpace(cell))
		if err != nil {
			return game.Draw{}, fmt.Errorf("invalid numeral %q: %w", cell, err)
		}
		numerals = append(numerals, n)
	}

	return game.NewDraw(contest, core.NewTimestamp(drawnAt), numerals)
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
