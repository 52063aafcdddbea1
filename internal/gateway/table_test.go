package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"renthub/internal/models/wire_models"
	"renthub/pkg/utils"
)

// recordingAPI captures the last call so table tests can assert dispatch.
type recordingAPI struct {
	lastOp    string
	lastTable string
	lastID    int64
	reply     json.RawMessage
}

func (r *recordingAPI) Select(ctx context.Context, table string, opts SelectOptions) ([]json.RawMessage, int64, error) {
	r.lastOp, r.lastTable = "select", table
	return []json.RawMessage{r.reply}, 1, nil
}

func (r *recordingAPI) Insert(ctx context.Context, table string, row json.RawMessage) (json.RawMessage, error) {
	r.lastOp, r.lastTable = "insert", table
	return r.reply, nil
}

func (r *recordingAPI) Update(ctx context.Context, table string, id int64, row json.RawMessage) (json.RawMessage, error) {
	r.lastOp, r.lastTable, r.lastID = "update", table, id
	return r.reply, nil
}

func (r *recordingAPI) Delete(ctx context.Context, table string, id int64) error {
	r.lastOp, r.lastTable, r.lastID = "delete", table, id
	return nil
}

func (r *recordingAPI) Ping(ctx context.Context) error { return nil }
func (r *recordingAPI) Mode() string                   { return "test" }

func TestTableUpsertDispatchesOnIdentifierPresence(t *testing.T) {
	api := &recordingAPI{reply: json.RawMessage(`{"id":12,"key":"cities"}`)}
	table := NewTable[wire_models.Setting](api, "settings")

	// No id: insert path.
	_, err := table.Upsert(context.Background(), wire_models.Setting{Key: "cities"})
	assert.NoError(t, err)
	assert.Equal(t, "insert", api.lastOp)

	// Id present: update path.
	_, err = table.Upsert(context.Background(), wire_models.Setting{ID: 12, Key: "cities"})
	assert.NoError(t, err)
	assert.Equal(t, "update", api.lastOp)
	assert.Equal(t, int64(12), api.lastID)
}

func TestTableListDecodesWireRows(t *testing.T) {
	api := &recordingAPI{reply: json.RawMessage(`{"id":3,"name":"Drones","icon":"drone","active":true}`)}
	table := NewTable[wire_models.Category](api, "categories")

	rows, total, err := table.List(context.Background(), SelectOptions{})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Drones", rows[0].Name)
}

func TestOfflineClientKinds(t *testing.T) {
	api := NewOfflineClient()

	_, _, err := api.Select(context.Background(), "products", SelectOptions{})
	assert.Equal(t, KindNetwork, KindOf(err))
	assert.True(t, errors.Is(err, utils.ErrBackendOffline))

	_, err = api.Insert(context.Background(), "products", json.RawMessage(`{}`))
	assert.Equal(t, KindNetwork, KindOf(err))
	assert.True(t, errors.Is(err, utils.ErrBackendOffline))

	assert.Equal(t, "offline", api.Mode())
}
