package stores

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"renthub/internal/gateway"
	"renthub/internal/models/view_models"
	"renthub/internal/seeds"
	"renthub/pkg/utils"
)

// fakeAPI is an in-memory TableAPI with server-assigned ids.
type fakeAPI struct {
	rows      map[string][]map[string]any
	nextID    int64
	failReads bool
	writeErr  error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{rows: make(map[string][]map[string]any), nextID: 100}
}

func (f *fakeAPI) Mode() string { return "fake" }

func (f *fakeAPI) Ping(ctx context.Context) error { return nil }

func (f *fakeAPI) Select(ctx context.Context, table string, opts gateway.SelectOptions) ([]json.RawMessage, int64, error) {
	if f.failReads {
		return nil, 0, &gateway.Error{Kind: gateway.KindNetwork, Op: "select", Table: table, Message: "down"}
	}
	out := make([]json.RawMessage, 0)
	for _, row := range f.rows[table] {
		if !matchesEq(row, opts.Eq) {
			continue
		}
		raw, _ := json.Marshal(row)
		out = append(out, raw)
	}
	return out, int64(len(out)), nil
}

func matchesEq(row map[string]any, eq map[string]string) bool {
	for col, want := range eq {
		got, _ := row[col].(string)
		if got != want {
			return false
		}
	}
	return true
}

func (f *fakeAPI) Insert(ctx context.Context, table string, row json.RawMessage) (json.RawMessage, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	m := map[string]any{}
	if err := json.Unmarshal(row, &m); err != nil {
		return nil, err
	}
	f.nextID++
	m["id"] = f.nextID
	f.rows[table] = append(f.rows[table], m)
	return json.Marshal(m)
}

func (f *fakeAPI) Update(ctx context.Context, table string, id int64, row json.RawMessage) (json.RawMessage, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	m := map[string]any{}
	if err := json.Unmarshal(row, &m); err != nil {
		return nil, err
	}
	m["id"] = id
	for i, existing := range f.rows[table] {
		if idOfRow(existing) == id {
			f.rows[table][i] = m
			return json.Marshal(m)
		}
	}
	return nil, &gateway.Error{Kind: gateway.KindNotFound, Op: "update", Table: table}
}

func (f *fakeAPI) Delete(ctx context.Context, table string, id int64) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	rows := f.rows[table]
	for i, existing := range rows {
		if idOfRow(existing) == id {
			f.rows[table] = append(rows[:i], rows[i+1:]...)
			return nil
		}
	}
	return &gateway.Error{Kind: gateway.KindNotFound, Op: "delete", Table: table}
}

func idOfRow(row map[string]any) int64 {
	switch v := row["id"].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return 0
	}
}

func (f *fakeAPI) seed(t *testing.T, table string, records ...any) {
	t.Helper()
	for _, rec := range records {
		raw, err := json.Marshal(rec)
		assert.NoError(t, err)
		m := map[string]any{}
		assert.NoError(t, json.Unmarshal(raw, &m))
		if idOfRow(m) == 0 {
			f.nextID++
			m["id"] = f.nextID
		}
		f.rows[table] = append(f.rows[table], m)
	}
}

func newTagStore(api gateway.TableAPI) *TagStore {
	return NewTagStore(api, seeds.Tags, zap.NewNop())
}

func newProductStore(api gateway.TableAPI, tags TagLister) *ProductStore {
	return NewProductStore(api, tags, seeds.Products, zap.NewNop())
}

func TestLoadFallsBackToSeedsOnFetchError(t *testing.T) {
	api := newFakeAPI()
	api.failReads = true

	s := newProductStore(api, nil)
	s.Load(context.Background())

	assert.True(t, s.Seeded())
	assert.Equal(t, len(seeds.Products()), s.Len())
}

func TestLoadFallsBackToSeedsOnEmptyTable(t *testing.T) {
	s := newProductStore(newFakeAPI(), nil)
	s.Load(context.Background())
	assert.True(t, s.Seeded())
	assert.NotZero(t, s.Len())
}

func TestLoadUsesBackendRows(t *testing.T) {
	api := newFakeAPI()
	api.seed(t, "products", map[string]any{"name": "Rented Scooter", "status": "active"})

	s := newProductStore(api, nil)
	s.Load(context.Background())

	assert.False(t, s.Seeded())
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "Rented Scooter", s.List()[0].Name)
}

func TestAddPrependsServerAssignedRecord(t *testing.T) {
	s := newProductStore(newFakeAPI(), nil)
	s.Load(context.Background())
	before := s.Len()

	saved, err := s.Add(context.Background(), view_models.Product{Name: "GoPro Hero 12", City: "Berlin"})
	assert.NoError(t, err)
	assert.NotZero(t, saved.ID)

	list := s.List()
	assert.Equal(t, before+1, len(list))
	assert.Equal(t, saved.ID, list[0].ID)

	// Exactly one cached record carries the server id.
	matches := 0
	for _, p := range list {
		if p.ID == saved.ID {
			matches++
		}
	}
	assert.Equal(t, 1, matches)
}

func TestUpdateReplacesMatchingRecord(t *testing.T) {
	s := newProductStore(newFakeAPI(), nil)
	s.Load(context.Background())
	saved, err := s.Add(context.Background(), view_models.Product{Name: "GoPro Hero 12", City: "Berlin"})
	assert.NoError(t, err)

	saved.Stock = 7
	updated, err := s.Update(context.Background(), saved.ID, saved)
	assert.NoError(t, err)
	assert.Equal(t, 7, updated.Stock)

	got, ok := s.Get(saved.ID)
	assert.True(t, ok)
	assert.Equal(t, 7, got.Stock)
}

func TestRemoveLeavesNoRecordWithID(t *testing.T) {
	s := newProductStore(newFakeAPI(), nil)
	s.Load(context.Background())
	saved, err := s.Add(context.Background(), view_models.Product{Name: "GoPro Hero 12"})
	assert.NoError(t, err)

	assert.NoError(t, s.Remove(context.Background(), saved.ID))
	_, ok := s.Get(saved.ID)
	assert.False(t, ok)
}

func TestWriteFailurePropagatesAndCacheUntouched(t *testing.T) {
	api := newFakeAPI()
	s := newProductStore(api, nil)
	s.Load(context.Background())
	before := s.List()

	api.writeErr = &gateway.Error{Kind: gateway.KindForbidden, Op: "insert", Table: "products", Message: "policy"}
	_, err := s.Add(context.Background(), view_models.Product{Name: "Blocked"})
	assert.Error(t, err)
	assert.Equal(t, gateway.KindForbidden, gateway.KindOf(err))
	assert.Equal(t, before, s.List())
}

func TestApproveSetsActiveStatusAndNewBadge(t *testing.T) {
	api := newFakeAPI()
	api.seed(t, "products", map[string]any{"id": 1, "name": "Sony A7 III Camera", "badge": "Pending Review"})

	s := newProductStore(api, nil)
	s.Load(context.Background())

	approved, err := s.Approve(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "active", approved.Status)
	assert.Equal(t, "New", approved.Badge)

	// Terminal state: a second approve is rejected.
	_, err = s.Approve(context.Background(), 1)
	assert.ErrorIs(t, err, utils.ErrPendingOnly)
}

func TestRejectDeletesPendingProduct(t *testing.T) {
	api := newFakeAPI()
	api.seed(t, "products", map[string]any{"id": 1, "name": "Sony A7 III Camera", "badge": "Pending Review"})

	s := newProductStore(api, nil)
	s.Load(context.Background())

	assert.NoError(t, s.Reject(context.Background(), 1))
	_, ok := s.Get(1)
	assert.False(t, ok)
	assert.Empty(t, api.rows["products"])
}

func TestRejectNonPendingFails(t *testing.T) {
	api := newFakeAPI()
	api.seed(t, "products", map[string]any{"id": 1, "name": "Camera", "badge": "New"})

	s := newProductStore(api, nil)
	s.Load(context.Background())
	assert.ErrorIs(t, s.Reject(context.Background(), 1), utils.ErrPendingOnly)
}

func TestBannerTagCapacityRejectsFifthProduct(t *testing.T) {
	api := newFakeAPI()
	tags := newTagStore(api)
	tags.Load(context.Background()) // seeds: tag 1 is a banner tag, maxProducts 4

	products := newProductStore(api, tags)
	for i := 0; i < 4; i++ {
		_, err := products.Add(context.Background(), view_models.Product{Name: "P", Tags: []int64{1}})
		assert.NoError(t, err)
	}

	_, err := products.Add(context.Background(), view_models.Product{Name: "Fifth", Tags: []int64{1}})
	assert.ErrorIs(t, err, utils.ErrBannerTagFull)

	// Updating one of the four existing carriers stays legal: it does not
	// count itself.
	carrier := products.List()[0]
	_, err = products.Update(context.Background(), carrier.ID, carrier)
	assert.NoError(t, err)
}

func TestToggleOptimisticRollbackOnFailure(t *testing.T) {
	api := newFakeAPI()
	flags := NewFeatureFlagStore(api, seeds.FeatureFlags, zap.NewNop())
	flags.Load(context.Background())

	assert.True(t, flags.Enabled(view_models.FlagBannerRail))

	api.writeErr = &gateway.Error{Kind: gateway.KindNetwork, Op: "update", Table: "feature_flags", Message: "down"}
	err := flags.Toggle(context.Background(), view_models.FlagBannerRail, false)
	assert.Error(t, err)

	// Reverted to the negation of the attempted value.
	assert.True(t, flags.Enabled(view_models.FlagBannerRail))
}

func TestTogglePersistsOnSuccess(t *testing.T) {
	api := newFakeAPI()
	api.seed(t, "feature_flags", map[string]any{"key": "banner_rail", "enabled": false})

	flags := NewFeatureFlagStore(api, seeds.FeatureFlags, zap.NewNop())
	flags.Load(context.Background())

	assert.NoError(t, flags.Toggle(context.Background(), "banner_rail", true))
	assert.True(t, flags.Enabled("banner_rail"))
	assert.Equal(t, true, api.rows["feature_flags"][0]["enabled"])
}

func TestToggleUnknownFlag(t *testing.T) {
	flags := NewFeatureFlagStore(newFakeAPI(), seeds.FeatureFlags, zap.NewNop())
	flags.Load(context.Background())
	assert.ErrorIs(t, flags.Toggle(context.Background(), "nope", true), utils.ErrUnknownFlag)
}

func TestCityStoreUpsertInsertThenUpdate(t *testing.T) {
	api := newFakeAPI()
	cities := NewCityStore(api, seeds.Cities, zap.NewNop())
	cities.Load(context.Background())
	assert.Equal(t, seeds.Cities(), cities.List())

	assert.NoError(t, cities.Save(context.Background(), []string{"Berlin", "Leipzig"}))
	assert.Len(t, api.rows["settings"], 1)

	assert.NoError(t, cities.Save(context.Background(), []string{"Berlin", "Leipzig", "Dresden"}))
	assert.Len(t, api.rows["settings"], 1)
	assert.True(t, cities.Has("Dresden"))
}

func TestCityStoreDurableAcrossReload(t *testing.T) {
	api := newFakeAPI()
	first := NewCityStore(api, seeds.Cities, zap.NewNop())
	first.Load(context.Background())
	assert.NoError(t, first.Save(context.Background(), []string{"Vienna"}))

	second := NewCityStore(api, seeds.Cities, zap.NewNop())
	second.Load(context.Background())
	assert.Equal(t, []string{"Vienna"}, second.List())
}

func TestStorefrontActiveExcludesPending(t *testing.T) {
	s := newProductStore(newFakeAPI(), nil)
	s.Load(context.Background())

	for _, p := range s.Active() {
		assert.NotEqual(t, view_models.BadgePendingReview, p.Badge)
		assert.Equal(t, view_models.StatusActive, p.Status)
	}
	assert.Less(t, len(s.Active()), s.Len())
}
