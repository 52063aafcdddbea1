package stores

import (
	"context"

	"go.uber.org/zap"

	"renthub/internal/gateway"
	"renthub/internal/models/mapping"
	"renthub/internal/models/view_models"
	"renthub/internal/models/wire_models"
	"renthub/pkg/utils"
)

// FeatureFlagStore is the process-wide capability switch set. Toggle applies
// the new value locally before the round trip and reverts on failure.
type FeatureFlagStore struct {
	*Resource[wire_models.FeatureFlag, view_models.FeatureFlag]
}

func NewFeatureFlagStore(api gateway.TableAPI, seeds func() []view_models.FeatureFlag, log *zap.Logger) *FeatureFlagStore {
	return &FeatureFlagStore{
		Resource: NewResource(
			gateway.NewTable[wire_models.FeatureFlag](api, "feature_flags"),
			mapping.FeatureFlagFromWire,
			mapping.FeatureFlagToWire,
			func(f view_models.FeatureFlag) int64 { return f.ID },
			seeds,
			log,
		),
	}
}

// Enabled reports a flag's value; unknown keys read as disabled.
func (s *FeatureFlagStore) Enabled(key string) bool {
	f, ok := s.byKey(key)
	return ok && f.Enabled
}

func (s *FeatureFlagStore) byKey(key string) (view_models.FeatureFlag, bool) {
	for _, f := range s.List() {
		if f.Key == key {
			return f, true
		}
	}
	return view_models.FeatureFlag{}, false
}

// Toggle sets the flag optimistically, then persists. On failure the local
// value reverts to the negation of the attempted value. For a boolean flag
// that is exactly the prior value; the pattern must not be generalized to
// non-boolean state.
func (s *FeatureFlagStore) Toggle(ctx context.Context, key string, value bool) error {
	f, ok := s.byKey(key)
	if !ok {
		return utils.ErrUnknownFlag
	}

	s.setLocal(f.ID, value)

	f.Enabled = value
	if _, err := s.Resource.Update(ctx, f.ID, f); err != nil {
		s.setLocal(f.ID, !value)
		return err
	}
	return nil
}

func (s *FeatureFlagStore) setLocal(id int64, value bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Enabled = value
			return
		}
	}
}
