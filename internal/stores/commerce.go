package stores

import (
	"go.uber.org/zap"

	"renthub/internal/gateway"
	"renthub/internal/models/mapping"
	"renthub/internal/models/view_models"
	"renthub/internal/models/wire_models"
)

type PlanStore struct {
	*Resource[wire_models.Plan, view_models.Plan]
}

func NewPlanStore(api gateway.TableAPI, seeds func() []view_models.Plan, log *zap.Logger) *PlanStore {
	return &PlanStore{
		Resource: NewResource(
			gateway.NewTable[wire_models.Plan](api, "plans"),
			mapping.PlanFromWire,
			mapping.PlanToWire,
			func(p view_models.Plan) int64 { return p.ID },
			seeds,
			log,
		),
	}
}

type OrderStore struct {
	*Resource[wire_models.Order, view_models.Order]
}

func NewOrderStore(api gateway.TableAPI, seeds func() []view_models.Order, log *zap.Logger) *OrderStore {
	return &OrderStore{
		Resource: NewResource(
			gateway.NewTable[wire_models.Order](api, "orders"),
			mapping.OrderFromWire,
			mapping.OrderToWire,
			func(o view_models.Order) int64 { return o.ID },
			seeds,
			log,
		),
	}
}
