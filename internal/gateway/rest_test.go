package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"renthub/internal/models/wire_models"
)

func TestRESTSelectParsesRowsAndContentRange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/tags", r.URL.Path)
		assert.Equal(t, "eq.true", r.URL.Query().Get("active"))
		assert.Equal(t, "name", r.URL.Query().Get("order"))
		assert.Equal(t, "secret", r.Header.Get("apikey"))

		w.Header().Set("Content-Range", "0-1/57")
		w.Write([]byte(`[{"id":1,"name":"Featured"},{"id":2,"name":"Budget"}]`))
	}))
	defer srv.Close()

	api := NewRESTClient(srv.URL, "secret", zap.NewNop())
	rows, total, err := api.Select(context.Background(), "tags", SelectOptions{
		Eq:      map[string]string{"active": "true"},
		OrderBy: "name",
	})
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, int64(57), total)
}

func TestRESTInsertReturnsRepresentation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Prefer"), "return=representation")

		var in map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "Featured", in["name"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"id":9,"name":"Featured"}]`))
	}))
	defer srv.Close()

	api := NewRESTClient(srv.URL, "secret", zap.NewNop())
	saved, err := api.Insert(context.Background(), "tags", json.RawMessage(`{"name":"Featured"}`))
	assert.NoError(t, err)

	var tag wire_models.Tag
	assert.NoError(t, json.Unmarshal(saved, &tag))
	assert.Equal(t, int64(9), tag.ID)
}

func TestRESTUpdateTargetsRowByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.4", r.URL.Query().Get("id"))
		w.Write([]byte(`[{"id":4,"name":"Renamed"}]`))
	}))
	defer srv.Close()

	api := NewRESTClient(srv.URL, "secret", zap.NewNop())
	saved, err := api.Update(context.Background(), "tags", 4, json.RawMessage(`{"id":4,"name":"Renamed"}`))
	assert.NoError(t, err)
	assert.Contains(t, string(saved), "Renamed")
}

func TestRESTClassifiesConflictFromSQLState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"code":"23503","message":"violates foreign key constraint"}`))
	}))
	defer srv.Close()

	api := NewRESTClient(srv.URL, "secret", zap.NewNop())
	err := api.Delete(context.Background(), "categories", 3)
	assert.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestRESTClassifiesForbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"code":"42501","message":"permission denied"}`))
	}))
	defer srv.Close()

	api := NewRESTClient(srv.URL, "secret", zap.NewNop())
	_, err := api.Insert(context.Background(), "products", json.RawMessage(`{}`))
	assert.Equal(t, KindForbidden, KindOf(err))
}

func TestRESTNetworkFailure(t *testing.T) {
	api := NewRESTClient("http://127.0.0.1:1", "secret", zap.NewNop())
	_, _, err := api.Select(context.Background(), "tags", SelectOptions{})
	assert.Equal(t, KindNetwork, KindOf(err))
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(assert.AnError))
}

func TestParseContentRange(t *testing.T) {
	n, ok := parseContentRange("0-24/57")
	assert.True(t, ok)
	assert.Equal(t, int64(57), n)

	_, ok = parseContentRange("0-24/*")
	assert.False(t, ok)

	_, ok = parseContentRange("")
	assert.False(t, ok)
}
