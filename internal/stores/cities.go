package stores

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"renthub/internal/gateway"
	"renthub/internal/models/wire_models"
)

const citiesKey = "cities"

// CityStore holds the admin-managed city list. Unlike session markers it is
// durable: the list is persisted under a settings row and survives restarts.
type CityStore struct {
	table *gateway.Table[wire_models.Setting]
	seeds func() []string
	log   *zap.Logger

	mu        sync.RWMutex
	cities    []string
	settingID int64
}

func NewCityStore(api gateway.TableAPI, seeds func() []string, log *zap.Logger) *CityStore {
	return &CityStore{
		table: gateway.NewTable[wire_models.Setting](api, "settings"),
		seeds: seeds,
		log:   log,
	}
}

func (s *CityStore) Load(ctx context.Context) {
	rows, _, err := s.table.List(ctx, gateway.SelectOptions{
		Eq: map[string]string{"key": citiesKey},
	})
	if err != nil || len(rows) == 0 {
		if err != nil {
			s.log.Warn("city list fetch failed, using seed data", zap.Error(err))
		}
		s.mu.Lock()
		s.cities = s.seeds()
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.cities = append([]string(nil), rows[0].Values...)
	s.settingID = rows[0].ID
	s.mu.Unlock()
}

func (s *CityStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.cities...)
}

func (s *CityStore) Has(city string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.cities {
		if c == city {
			return true
		}
	}
	return false
}

// Save upserts the durable list: insert on first save, update afterwards.
func (s *CityStore) Save(ctx context.Context, cities []string) error {
	s.mu.RLock()
	id := s.settingID
	s.mu.RUnlock()

	saved, err := s.table.Upsert(ctx, wire_models.Setting{
		ID:     id,
		Key:    citiesKey,
		Values: append([]string(nil), cities...),
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cities = append([]string(nil), saved.Values...)
	s.settingID = saved.ID
	s.mu.Unlock()
	return nil
}
