package excel

import (
	"testing"
)

func validRow() []string {
	return []string{
		"3001", "15/03/2024",
		"1", "2", "3", "4", "5", "6", "10", "11", "15", "16", "20", "21", "22", "23", "24",
	}
}

func TestParseRow_Valid(t *testing.T) {
	draw, err := parseRow(validRow())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if draw.Contest != 3001 {
		t.Errorf("Expected contest 3001, got %d", draw.Contest)
	}
	if len(draw.Numerals) != 15 {
		t.Errorf("Expected 15 numerals, got %d", len(draw.Numerals))
	}
	if draw.DrawnAt.Time().Year() != 2024 {
		t.Errorf("Expected year 2024, got %d", draw.DrawnAt.Time().Year())
	}
}

func TestParseRow_AlternateDateFormats(t *testing.T) {
	for _, date := range []string{"2024-03-15", "15-03-2024"} {
		row := validRow()
		row[1] = date
		if _, err := parseRow(row); err != nil {
			t.Errorf("Expected date %q to parse, got %v", date, err)
		}
	}
}

func TestParseRow_TooFewColumns(t *testing.T) {
	if _, err := parseRow([]string{"3001", "15/03/2024", "1", "2"}); err == nil {
		t.Error("Expected error for short row")
	}
}

func TestParseRow_BadContest(t *testing.T) {
	row := validRow()
	row[0] = "abc"
	if _, err := parseRow(row); err == nil {
		t.Error("Expected error for non-numeric contest")
	}
}

func TestParseRow_BadDate(t *testing.T) {
	row := validRow()
	row[1] = "March 15"
	if _, err := parseRow(row); err == nil {
		t.Error("Expected error for unrecognized date")
	}
}

func TestParseRow_InvalidNumeral(t *testing.T) {
	row := validRow()
	row[5] = "26"
	if _, err := parseRow(row); err == nil {
		t.Error("Expected error for out-of-range numeral")
	}

	row = validRow()
	row[5] = "x"
	if _, err := parseRow(row); err == nil {
		t.Error("Expected error for non-numeric cell")
	}
}

func TestParseRow_WhitespaceTolerated(t *testing.T) {
	row := validRow()
	row[0] = " 3001 "
	row[2] = " 1 "
	if _, err := parseRow(row); err != nil {
		t.Errorf("Expected padded cells to parse, got %v", err)
	}
}
