package ports

import (
	"context"

	"lightcurve/domain/table"
)

// TableReader loads a whole table from a source bound at construction
type TableReader interface {
	ReadTable(ctx context.Context) (*table.Table, error)
	// Path returns the source location, for logs and reports
	Path() string
}
