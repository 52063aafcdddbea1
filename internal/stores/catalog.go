package stores

import (
	"go.uber.org/zap"

	"renthub/internal/gateway"
	"renthub/internal/models/mapping"
	"renthub/internal/models/view_models"
	"renthub/internal/models/wire_models"
)

type CategoryStore struct {
	*Resource[wire_models.Category, view_models.Category]
}

func NewCategoryStore(api gateway.TableAPI, seeds func() []view_models.Category, log *zap.Logger) *CategoryStore {
	return &CategoryStore{
		Resource: NewResource(
			gateway.NewTable[wire_models.Category](api, "categories"),
			mapping.CategoryFromWire,
			mapping.CategoryToWire,
			func(c view_models.Category) int64 { return c.ID },
			seeds,
			log,
		),
	}
}

// Active returns categories shown on the storefront.
func (s *CategoryStore) Active() []view_models.Category {
	out := make([]view_models.Category, 0)
	for _, c := range s.List() {
		if c.Active {
			out = append(out, c)
		}
	}
	return out
}

type TagStore struct {
	*Resource[wire_models.Tag, view_models.Tag]
}

func NewTagStore(api gateway.TableAPI, seeds func() []view_models.Tag, log *zap.Logger) *TagStore {
	return &TagStore{
		Resource: NewResource(
			gateway.NewTable[wire_models.Tag](api, "tags"),
			mapping.TagFromWire,
			mapping.TagToWire,
			func(t view_models.Tag) int64 { return t.ID },
			seeds,
			log,
		),
	}
}

// BannerTags returns the active capacity-limited tags driving the homepage
// featured rail.
func (s *TagStore) BannerTags() []view_models.Tag {
	out := make([]view_models.Tag, 0)
	for _, t := range s.List() {
		if t.Active && t.IsBannerTag {
			out = append(out, t)
		}
	}
	return out
}
