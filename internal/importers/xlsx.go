package importers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// ErrInvalidWorkbook marks uploads that are not a readable .xlsx file.
var ErrInvalidWorkbook = errors.New("invalid workbook")

const (
	columnName      = "name"
	columnBirthYear = "birth_year"
	columnSubject   = "subject"
	columnScore     = "score"
)

// headerAliases maps accepted header spellings onto column names.
var headerAliases = map[string]string{
	"name":       columnName,
	"student":    columnName,
	"birth_year": columnBirthYear,
	"birth year": columnBirthYear,
	"subject":    columnSubject,
	"score":      columnScore,
	"grade":      columnScore,
}

// ParseRoster reads the first sheet of an .xlsx workbook into roster rows.
// Malformed numbers are reported per row; nothing is returned in that case.
func ParseRoster(r io.Reader) ([]entities.RosterRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing excel file: %v", err)
		}
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("%w: no sheets", ErrInvalidWorkbook)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %s: %v", ErrInvalidWorkbook, sheetName, err)
	}
	if len(rows) == 0 {
		return nil, entities.NewValidationError("file", "the first sheet is empty")
	}

	columns, err := mapHeader(rows[0])
	if err != nil {
		return nil, err
	}

	problems := &entities.ValidationError{}
	roster := make([]entities.RosterRow, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		line := i + 2
		get := func(column string) string {
			idx, ok := columns[column]
			if !ok || idx >= len(cells) {
				return ""
			}
			return strings.TrimSpace(cells[idx])
		}

		if isBlank(cells) {
			continue
		}

		row := entities.RosterRow{
			Line:    line,
			Name:    get(columnName),
			Subject: get(columnSubject),
		}
		row.BirthYear = parseOptionalInt(problems, line, columnBirthYear, get(columnBirthYear))
		row.Score = parseOptionalInt(problems, line, columnScore, get(columnScore))
		roster = append(roster, row)
	}

	if err := problems.Err(); err != nil {
		return nil, err
	}
	return roster, nil
}

func mapHeader(header []string) (map[string]int, error) {
	columns := make(map[string]int)
	for i, title := range header {
		key := strings.ToLower(strings.TrimSpace(title))
		if column, ok := headerAliases[key]; ok {
			if _, seen := columns[column]; !seen {
				columns[column] = i
			}
		}
	}
	if _, ok := columns[columnName]; !ok {
		return nil, entities.NewValidationError("header", "a name column is required")
	}
	return columns, nil
}

// parseOptionalInt accepts whole numbers, including spreadsheet floats like "88.0".
func parseOptionalInt(problems *entities.ValidationError, line int, field, raw string) *int {
	if raw == "" {
		return nil
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return &v
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		problems.Add(fmt.Sprintf("row %d: %s", line, field), "must be a whole number")
		return nil
	}
	v := int(f)
	return &v
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
