package gateway

import (
	"context"
	"encoding/json"

	"renthub/pkg/utils"
)

// offlineClient stands in when no backend is configured. Reads fail with a
// network-kinded error, which sends every store to its seed list; writes fail
// the same way and surface to the caller. Every error wraps
// utils.ErrBackendOffline so callers can tell this apart from a backend
// that is configured but unreachable.
type offlineClient struct{}

func NewOfflineClient() TableAPI { return offlineClient{} }

func (offlineClient) Mode() string { return "offline" }

func (offlineClient) Select(ctx context.Context, table string, opts SelectOptions) ([]json.RawMessage, int64, error) {
	return nil, 0, offlineErr("select", table)
}

func (offlineClient) Insert(ctx context.Context, table string, row json.RawMessage) (json.RawMessage, error) {
	return nil, offlineErr("insert", table)
}

func (offlineClient) Update(ctx context.Context, table string, id int64, row json.RawMessage) (json.RawMessage, error) {
	return nil, offlineErr("update", table)
}

func (offlineClient) Delete(ctx context.Context, table string, id int64) error {
	return offlineErr("delete", table)
}

func (offlineClient) Ping(ctx context.Context) error {
	return offlineErr("ping", "")
}

func offlineErr(op, table string) error {
	return &Error{Kind: KindNetwork, Op: op, Table: table, Err: utils.ErrBackendOffline}
}
