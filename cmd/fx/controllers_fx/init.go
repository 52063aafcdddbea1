package controllersfx

import (
	"go.uber.org/fx"

	"renthub/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewProductsController),
	fx.Provide(controllers.NewTaxonomyController),
	fx.Provide(controllers.NewCommerceController),
	fx.Provide(controllers.NewAccountsController),
	fx.Provide(controllers.NewFlagsController),
	fx.Provide(controllers.NewStorefrontController),
	fx.Provide(controllers.NewDiagnosticsController))
