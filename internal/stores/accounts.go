package stores

import (
	"go.uber.org/zap"

	"renthub/internal/gateway"
	"renthub/internal/models/mapping"
	"renthub/internal/models/view_models"
	"renthub/internal/models/wire_models"
)

type ProfileStore struct {
	*Resource[wire_models.Profile, view_models.Profile]
}

func NewProfileStore(api gateway.TableAPI, seeds func() []view_models.Profile, log *zap.Logger) *ProfileStore {
	return &ProfileStore{
		Resource: NewResource(
			gateway.NewTable[wire_models.Profile](api, "profiles"),
			mapping.ProfileFromWire,
			mapping.ProfileToWire,
			func(p view_models.Profile) int64 { return p.ID },
			seeds,
			log,
		),
	}
}

type CustomFieldStore struct {
	*Resource[wire_models.CustomField, view_models.CustomField]
}

func NewCustomFieldStore(api gateway.TableAPI, seeds func() []view_models.CustomField, log *zap.Logger) *CustomFieldStore {
	return &CustomFieldStore{
		Resource: NewResource(
			gateway.NewTable[wire_models.CustomField](api, "custom_fields"),
			mapping.CustomFieldFromWire,
			mapping.CustomFieldToWire,
			func(f view_models.CustomField) int64 { return f.ID },
			seeds,
			log,
		),
	}
}

// ActiveFields returns the custom fields currently collected on profiles.
func (s *CustomFieldStore) ActiveFields() []view_models.CustomField {
	out := make([]view_models.CustomField, 0)
	for _, f := range s.List() {
		if f.Active {
			out = append(out, f)
		}
	}
	return out
}
