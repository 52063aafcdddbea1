// Package seeds holds the fallback data substituted when the backend is
// unreachable or a table comes back empty, so the storefront and admin grids
// are never blank. Functions return fresh slices; callers own the result.
package seeds

import "renthub/internal/models/view_models"

func Products() []view_models.Product {
	return []view_models.Product{
		{
			ID: 1, Name: "Sony A7 III Camera", Category: "Cameras", City: "Berlin",
			PriceDay: 35, PriceMonth: 420, PriceYear: 3100, Stock: 3,
			Status: view_models.StatusActive, Badge: view_models.BadgePendingReview,
			Photos: []view_models.Photo{
				{ID: "db-1-0", URL: "https://cdn.renthub.dev/seed/a7iii.jpg", Name: "a7iii.jpg"},
			},
			Tags:      []int64{1},
			OwnerName: "Mara Voss", OwnerEmail: "mara@renthub.dev",
			MinDuration: 2, MinDurationUnit: "days",
		},
		{
			ID: 2, Name: "DJI Mavic 3 Drone", Category: "Drones", City: "Hamburg",
			PriceDay: 60, PriceMonth: 720, PriceYear: 5200, Stock: 2,
			Status: view_models.StatusActive, Badge: view_models.BadgeNew,
			Photos: []view_models.Photo{
				{ID: "db-2-0", URL: "https://cdn.renthub.dev/seed/mavic3.jpg", Name: "mavic3.jpg"},
			},
			Tags:      []int64{1, 2},
			OwnerName: "Jonas Beck", OwnerEmail: "jonas@example.com",
			MinDuration: 1, MinDurationUnit: "days",
		},
		{
			ID: 3, Name: "Canon EOS R6", Category: "Cameras", City: "Berlin",
			PriceDay: 40, PriceMonth: 480, PriceYear: 3500, Stock: 1,
			Status: view_models.StatusActive, Badge: view_models.BadgeNew,
			Tags:      []int64{2},
			OwnerName: "Lena Adler", OwnerEmail: "lena@example.com",
			MinDuration: 3, MinDurationUnit: "days",
		},
		{
			ID: 4, Name: "Aputure 120d Light Kit", Category: "Lighting", City: "Munich",
			PriceDay: 18, PriceMonth: 210, PriceYear: 1500, Stock: 5,
			Status: view_models.StatusActive, Badge: "",
			OwnerName: "Mara Voss", OwnerEmail: "mara@renthub.dev",
			MinDuration: 1, MinDurationUnit: "weeks",
		},
	}
}

func Categories() []view_models.Category {
	return []view_models.Category{
		{ID: 1, Name: "Cameras", Icon: "camera", Active: true},
		{ID: 2, Name: "Drones", Icon: "drone", Active: true},
		{ID: 3, Name: "Lighting", Icon: "lamp", Active: true},
		{ID: 4, Name: "Lenses", Icon: "aperture", Active: true},
		{ID: 5, Name: "Audio", Icon: "mic", Active: false},
	}
}

func Tags() []view_models.Tag {
	return []view_models.Tag{
		{ID: 1, Name: "Featured", Color: "#f97316", Emoji: "🔥", Active: true, IsBannerTag: true, MaxProducts: 4},
		{ID: 2, Name: "Pro Gear", Color: "#6366f1", Emoji: "🎬", Active: true},
		{ID: 3, Name: "Budget", Color: "#22c55e", Emoji: "💸", Active: true},
	}
}

func Plans() []view_models.Plan {
	return []view_models.Plan{
		{ID: 1, Name: "Starter", Price: 0, Features: []string{"3 active listings", "Community support"}, Subscribers: 540, Revenue: 0, ProductExpiryDays: 30},
		{ID: 2, Name: "Pro", Price: 29, Features: []string{"Unlimited listings", "Priority support", "Featured rail eligibility"}, Subscribers: 120, Revenue: 3480, ProductExpiryDays: 60},
		{ID: 3, Name: "Business", Price: 99, Features: []string{"Unlimited listings", "Dedicated manager", "API access"}, Subscribers: 18, Revenue: 1782, ProductExpiryDays: 90},
	}
}

func Profiles() []view_models.Profile {
	return []view_models.Profile{
		{ID: 1, Name: "Mara Voss", Email: "mara@renthub.dev", Plan: "Pro", Status: view_models.ProfileActive, EmailVerified: true, PhoneVerified: true, City: "Berlin", Phone: "+49 151 0000001"},
		{ID: 2, Name: "Jonas Beck", Email: "jonas@example.com", Plan: "Starter", Status: view_models.ProfileActive, EmailVerified: true, City: "Hamburg", Phone: "+49 151 0000002"},
		{ID: 3, Name: "Lena Adler", Email: "lena@example.com", Plan: "Business", Status: view_models.ProfileSuspended, EmailVerified: false, City: "Munich", Phone: "+49 151 0000003"},
	}
}

func Orders() []view_models.Order {
	return []view_models.Order{
		{ID: 1, ProductID: 2, ProductName: "DJI Mavic 3 Drone", UserName: "Jonas Beck", UserEmail: "jonas@example.com", Amount: 180, Days: 3, Status: view_models.OrderActive, StartDate: "2026-08-20", EndDate: "2026-08-23"},
		{ID: 2, ProductID: 3, ProductName: "Canon EOS R6", UserName: "Lena Adler", UserEmail: "lena@example.com", Amount: 120, Days: 3, Status: view_models.OrderCompleted, StartDate: "2026-07-02", EndDate: "2026-07-05"},
		{ID: 3, ProductID: 1, ProductName: "Sony A7 III Camera", UserName: "Jonas Beck", UserEmail: "jonas@example.com", Amount: 105, Days: 3, Status: view_models.OrderPending, StartDate: "2026-09-01", EndDate: "2026-09-04"},
	}
}

func FeatureFlags() []view_models.FeatureFlag {
	return []view_models.FeatureFlag{
		{ID: 1, Key: view_models.FlagBannerRail, Enabled: true},
		{ID: 2, Key: view_models.FlagRealtimeSync, Enabled: false},
		{ID: 3, Key: view_models.FlagCustomFields, Enabled: true},
	}
}

func CustomFields() []view_models.CustomField {
	return []view_models.CustomField{
		{ID: 1, Key: "company", Label: "Company", InputType: "text", ShowInList: true, Active: true},
		{ID: 2, Key: "vat_id", Label: "VAT ID", InputType: "text", Required: false, Active: true},
	}
}

func Cities() []string {
	return []string{"Berlin", "Hamburg", "Munich", "Cologne"}
}
