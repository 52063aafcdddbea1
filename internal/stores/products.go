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

// TagLister is what the product store needs from the tag store for the
// banner-tag capacity check.
type TagLister interface {
	Get(id int64) (view_models.Tag, bool)
}

// ProductStore adds the approval workflow and the banner-tag capacity
// invariant on top of the shared resource behavior.
type ProductStore struct {
	*Resource[wire_models.Product, view_models.Product]
	tags TagLister
}

func NewProductStore(api gateway.TableAPI, tags TagLister, seeds func() []view_models.Product, log *zap.Logger) *ProductStore {
	return &ProductStore{
		Resource: NewResource(
			gateway.NewTable[wire_models.Product](api, "products"),
			mapping.ProductFromWire,
			mapping.ProductToWire,
			func(p view_models.Product) int64 { return p.ID },
			seeds,
			log,
		),
		tags: tags,
	}
}

// Add validates banner-tag capacity before anything reaches the gateway.
func (s *ProductStore) Add(ctx context.Context, p view_models.Product) (view_models.Product, error) {
	if err := s.ValidateBannerTags(p); err != nil {
		return view_models.Product{}, err
	}
	return s.Resource.Add(ctx, p)
}

func (s *ProductStore) Update(ctx context.Context, id int64, p view_models.Product) (view_models.Product, error) {
	p.ID = id
	if err := s.ValidateBannerTags(p); err != nil {
		return view_models.Product{}, err
	}
	return s.Resource.Update(ctx, id, p)
}

// Approve moves a pending submission into the catalog: status becomes
// active, the badge becomes New. Only pending products can be approved.
func (s *ProductStore) Approve(ctx context.Context, id int64) (view_models.Product, error) {
	p, ok := s.Get(id)
	if !ok {
		return view_models.Product{}, utils.ErrRecordNotFound
	}
	if !p.Pending() {
		return view_models.Product{}, utils.ErrPendingOnly
	}

	p.Status = view_models.StatusActive
	p.Badge = view_models.BadgeNew
	return s.Resource.Update(ctx, id, p)
}

// Reject deletes the submission outright. There is no archive.
func (s *ProductStore) Reject(ctx context.Context, id int64) error {
	p, ok := s.Get(id)
	if !ok {
		return utils.ErrRecordNotFound
	}
	if !p.Pending() {
		return utils.ErrPendingOnly
	}
	return s.Remove(ctx, id)
}

// CountByTag counts cached products referencing the tag, excluding the given
// product id (so updating a product does not count itself).
func (s *ProductStore) CountByTag(tagID, excludeProductID int64) int {
	count := 0
	for _, p := range s.List() {
		if p.ID == excludeProductID {
			continue
		}
		if p.HasTag(tagID) {
			count++
		}
	}
	return count
}

// ValidateBannerTags enforces the capacity invariant: a banner tag with
// maxProducts N may be carried by at most N products.
func (s *ProductStore) ValidateBannerTags(p view_models.Product) error {
	if s.tags == nil {
		return nil
	}
	for _, tagID := range p.Tags {
		tag, ok := s.tags.Get(tagID)
		if !ok || !tag.IsBannerTag || tag.MaxProducts <= 0 {
			continue
		}
		if s.CountByTag(tagID, p.ID) >= tag.MaxProducts {
			return utils.ErrBannerTagFull
		}
	}
	return nil
}

// Active returns the storefront's product list: active status, with pending
// submissions excluded.
func (s *ProductStore) Active() []view_models.Product {
	out := make([]view_models.Product, 0)
	for _, p := range s.List() {
		if p.Status == view_models.StatusActive && !p.Pending() {
			out = append(out, p)
		}
	}
	return out
}
