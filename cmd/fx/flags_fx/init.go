package flagsfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"renthub/internal/gateway"
	"renthub/internal/seeds"
	"renthub/internal/stores"
)

var Module = fx.Provide(
	provideFeatureFlagStore,
	provideCityStore)

func provideFeatureFlagStore(api gateway.TableAPI, log *zap.Logger) *stores.FeatureFlagStore {
	return stores.NewFeatureFlagStore(api, seeds.FeatureFlags, log)
}

func provideCityStore(api gateway.TableAPI, log *zap.Logger) *stores.CityStore {
	return stores.NewCityStore(api, seeds.Cities, log)
}
