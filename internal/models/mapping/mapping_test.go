package mapping

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"renthub/internal/models/view_models"
	"renthub/internal/models/wire_models"
)

func TestProductRoundTrip(t *testing.T) {
	w := wire_models.Product{
		ID:              42,
		Name:            "Sony A7 III Camera",
		Category:        "Cameras",
		City:            "Berlin",
		PriceDay:        35,
		PriceMonth:      420,
		PriceYear:       3100,
		Stock:           3,
		Status:          "active",
		Badge:           "New",
		Photos:          pq.StringArray{"https://cdn.renthub.dev/a7iii-front.jpg", "https://cdn.renthub.dev/a7iii-back.jpg"},
		TagIDs:          pq.Int64Array{1, 7},
		OwnerName:       "Mara Voss",
		OwnerEmail:      "mara@renthub.dev",
		MinDuration:     2,
		MinDurationUnit: "days",
		CreatedAt:       1700000000,
		UpdatedAt:       1700000001,
	}

	v := ProductFromWire(w)
	assert.Equal(t, "db-42-0", v.Photos[0].ID)
	assert.Equal(t, "a7iii-front.jpg", v.Photos[0].Name)
	assert.Equal(t, "db-42-1", v.Photos[1].ID)
	assert.Equal(t, []int64{1, 7}, v.Tags)

	assert.Equal(t, w, ProductToWire(v))
}

func TestProductRoundTripEmptyLists(t *testing.T) {
	v := ProductFromWire(wire_models.Product{ID: 1, Name: "Drone"})
	assert.NotNil(t, v.Photos)
	assert.Empty(t, v.Photos)
	assert.NotNil(t, v.Tags)

	w := ProductToWire(v)
	assert.Equal(t, int64(1), w.ID)
	assert.Empty(t, w.Photos)
}

func TestCategoryRoundTrip(t *testing.T) {
	w := wire_models.Category{ID: 3, Name: "Drones", Icon: "drone", Active: true, CreatedAt: 5, UpdatedAt: 6}
	assert.Equal(t, w, CategoryToWire(CategoryFromWire(w)))
}

func TestTagRoundTrip(t *testing.T) {
	w := wire_models.Tag{ID: 9, Name: "Featured", Color: "#f97316", Emoji: "🔥", Active: true, IsBannerTag: true, MaxProducts: 4, CreatedAt: 5, UpdatedAt: 6}
	v := TagFromWire(w)
	assert.True(t, v.IsBannerTag)
	assert.Equal(t, 4, v.MaxProducts)
	assert.Equal(t, w, TagToWire(v))
}

func TestPlanRoundTripStripsPresentationFields(t *testing.T) {
	w := wire_models.Plan{
		ID:                2,
		Name:              "Pro",
		Price:             29,
		Features:          pq.StringArray{"Unlimited listings", "Priority support"},
		Subscribers:       120,
		Revenue:           3480,
		ProductExpiryDays: 60,
		CreatedAt:         5,
		UpdatedAt:         6,
	}

	v := PlanFromWire(w)
	assert.Empty(t, v.Color)
	assert.False(t, v.Popular)

	// Presentation fields set on the view side never reach the wire.
	v.Color = "purple"
	v.Accent = "violet"
	v.Popular = true
	assert.Equal(t, w, PlanToWire(v))
}

func TestProfileRoundTrip(t *testing.T) {
	w := wire_models.Profile{
		ID:            7,
		Name:          "Jonas Beck",
		Email:         "jonas@example.com",
		Plan:          "Pro",
		Status:        "active",
		EmailVerified: true,
		City:          "Hamburg",
		Phone:         "+49 151 0000000",
		CustomValues:  datatypes.JSONMap{"company": "Beck Media", "vat_id": "DE123"},
		CreatedAt:     5,
		UpdatedAt:     6,
	}

	v := ProfileFromWire(w)
	assert.Equal(t, "Beck Media", v.Custom["company"])
	assert.Equal(t, w, ProfileToWire(v))
}

func TestCustomFieldRoundTrip(t *testing.T) {
	w := wire_models.CustomField{ID: 4, Key: "company", Label: "Company", InputType: "text", Required: false, ShowInList: true, Active: true, CreatedAt: 5, UpdatedAt: 6}
	assert.Equal(t, w, CustomFieldToWire(CustomFieldFromWire(w)))
}

func TestOrderRoundTrip(t *testing.T) {
	w := wire_models.Order{
		ID: 11, ProductID: 42, ProductName: "Sony A7 III Camera",
		UserName: "Jonas Beck", UserEmail: "jonas@example.com",
		Amount: 105, Days: 3, Status: view_models.OrderActive,
		StartDate: "2026-09-01", EndDate: "2026-09-04",
		CreatedAt: 5, UpdatedAt: 6,
	}
	assert.Equal(t, w, OrderToWire(OrderFromWire(w)))
}

func TestFeatureFlagRoundTrip(t *testing.T) {
	w := wire_models.FeatureFlag{ID: 1, Key: "banner_rail", Enabled: true, CreatedAt: 5, UpdatedAt: 6}
	assert.Equal(t, w, FeatureFlagToWire(FeatureFlagFromWire(w)))
}
