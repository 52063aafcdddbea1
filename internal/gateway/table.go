package gateway

import (
	"context"
	"encoding/json"
)

// Table is the typed face of one backend table. W is the wire DTO for its
// rows; view conversion happens above this layer.
type Table[W any] struct {
	api  TableAPI
	name string
}

func NewTable[W any](api TableAPI, name string) *Table[W] {
	return &Table[W]{api: api, name: name}
}

func (t *Table[W]) Name() string { return t.name }

func (t *Table[W]) List(ctx context.Context, opts SelectOptions) ([]W, int64, error) {
	rows, total, err := t.api.Select(ctx, t.name, opts)
	if err != nil {
		return nil, 0, err
	}

	out := make([]W, 0, len(rows))
	for _, raw := range rows {
		var w W
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, 0, &Error{Kind: KindUnknown, Op: "decode", Table: t.name, Err: err}
		}
		out = append(out, w)
	}
	return out, total, nil
}

func (t *Table[W]) Insert(ctx context.Context, w W) (W, error) {
	var zero W
	raw, err := json.Marshal(w)
	if err != nil {
		return zero, &Error{Kind: KindUnknown, Op: "encode", Table: t.name, Err: err}
	}

	saved, err := t.api.Insert(ctx, t.name, raw)
	if err != nil {
		return zero, err
	}
	return t.decode(saved)
}

// Update addresses the row by id; the id inside the payload is overwritten
// to match so both backends key on the same row.
func (t *Table[W]) Update(ctx context.Context, id int64, w W) (W, error) {
	var zero W
	fields := make(map[string]any)
	raw, err := json.Marshal(w)
	if err != nil {
		return zero, &Error{Kind: KindUnknown, Op: "encode", Table: t.name, Err: err}
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return zero, &Error{Kind: KindUnknown, Op: "encode", Table: t.name, Err: err}
	}
	fields["id"] = id
	raw, err = json.Marshal(fields)
	if err != nil {
		return zero, &Error{Kind: KindUnknown, Op: "encode", Table: t.name, Err: err}
	}

	saved, err := t.api.Update(ctx, t.name, id, raw)
	if err != nil {
		return zero, err
	}
	return t.decode(saved)
}

// Upsert keys on identifier presence: a zero id takes the insert path,
// anything else the update path.
func (t *Table[W]) Upsert(ctx context.Context, w W) (W, error) {
	var zero W
	raw, err := json.Marshal(w)
	if err != nil {
		return zero, &Error{Kind: KindUnknown, Op: "encode", Table: t.name, Err: err}
	}

	var ident struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(raw, &ident); err != nil {
		return zero, &Error{Kind: KindUnknown, Op: "encode", Table: t.name, Err: err}
	}

	if ident.ID == 0 {
		return t.Insert(ctx, w)
	}
	return t.Update(ctx, ident.ID, w)
}

func (t *Table[W]) Delete(ctx context.Context, id int64) error {
	return t.api.Delete(ctx, t.name, id)
}

func (t *Table[W]) decode(raw json.RawMessage) (W, error) {
	var w W
	if err := json.Unmarshal(raw, &w); err != nil {
		return w, &Error{Kind: KindUnknown, Op: "decode", Table: t.name, Err: err}
	}
	return w, nil
}
