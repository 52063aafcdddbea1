// Package gateway is the data layer: row-level CRUD against the hosted
// backend's table API, either over its REST surface or over a direct
// Postgres connection. Rows cross this boundary as raw JSON in the wire
// (snake_case) shape; typed access sits on top in Table.
package gateway

import (
	"context"
	"encoding/json"
)

// SelectOptions narrows a table read. Eq keys are column names matched for
// equality, the way the REST surface encodes `col=eq.value`.
type SelectOptions struct {
	Eq      map[string]string
	OrderBy string
	Desc    bool
	Limit   int
}

// TableAPI is the gateway contract. Implementations do not retry; every
// failure is classified into a Kind before it is returned.
type TableAPI interface {
	Select(ctx context.Context, table string, opts SelectOptions) ([]json.RawMessage, int64, error)
	Insert(ctx context.Context, table string, row json.RawMessage) (json.RawMessage, error)
	Update(ctx context.Context, table string, id int64, row json.RawMessage) (json.RawMessage, error)
	Delete(ctx context.Context, table string, id int64) error

	// Ping verifies connectivity for diagnostics.
	Ping(ctx context.Context) error

	// Mode names the implementation: "rest", "direct" or "offline".
	Mode() string
}
