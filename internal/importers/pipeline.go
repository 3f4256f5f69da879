package importers

import (
	"io"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// RosterStore persists a parsed roster atomically.
type RosterStore interface {
	ImportRoster(rows []entities.RosterRow) (*entities.ImportResult, error)
}

// Pipeline parses an uploaded workbook and hands the rows to the store.
type Pipeline struct {
	store RosterStore
}

func NewPipeline(store RosterStore) *Pipeline {
	return &Pipeline{store: store}
}

// Import is the entry point for both the HTTP upload and the CLI command.
func (p *Pipeline) Import(r io.Reader) (*entities.ImportResult, error) {
	rows, err := ParseRoster(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, entities.NewValidationError("file", "contains no data rows")
	}
	return p.store.ImportRoster(rows)
}
