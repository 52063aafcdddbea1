package commercefx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"renthub/internal/gateway"
	"renthub/internal/seeds"
	"renthub/internal/stores"
)

var Module = fx.Provide(
	providePlanStore,
	provideOrderStore)

func providePlanStore(api gateway.TableAPI, log *zap.Logger) *stores.PlanStore {
	return stores.NewPlanStore(api, seeds.Plans, log)
}

func provideOrderStore(api gateway.TableAPI, log *zap.Logger) *stores.OrderStore {
	return stores.NewOrderStore(api, seeds.Orders, log)
}
