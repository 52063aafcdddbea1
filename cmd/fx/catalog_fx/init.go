package catalogfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"renthub/internal/gateway"
	"renthub/internal/seeds"
	"renthub/internal/stores"
)

var Module = fx.Provide(
	provideCategoryStore,
	provideTagStore,
	provideProductStore)

func provideCategoryStore(api gateway.TableAPI, log *zap.Logger) *stores.CategoryStore {
	return stores.NewCategoryStore(api, seeds.Categories, log)
}

func provideTagStore(api gateway.TableAPI, log *zap.Logger) *stores.TagStore {
	return stores.NewTagStore(api, seeds.Tags, log)
}

func provideProductStore(api gateway.TableAPI, tags *stores.TagStore, log *zap.Logger) *stores.ProductStore {
	return stores.NewProductStore(api, tags, seeds.Products, log)
}
