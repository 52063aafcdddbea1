package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	accountsfx "renthub/cmd/fx/accounts_fx"
	catalogfx "renthub/cmd/fx/catalog_fx"
	commercefx "renthub/cmd/fx/commerce_fx"
	configfx "renthub/cmd/fx/config_fx"
	controllersfx "renthub/cmd/fx/controllers_fx"
	flagsfx "renthub/cmd/fx/flags_fx"
	gatewayfx "renthub/cmd/fx/gateway_fx"
	"renthub/internal/api/controllers"
	"renthub/internal/config"
	"renthub/internal/gateway"
	"renthub/internal/models/view_models"
	"renthub/internal/services"
	"renthub/internal/stores"
	"renthub/pkg/middleware"
)

func main() {
	app := fx.New(
		configfx.Module,
		gatewayfx.Module,
		catalogfx.Module,
		commercefx.Module,
		accountsfx.Module,
		flagsfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(LoadStores),
		fx.Invoke(StartServer),
	)

	app.Run()
}

// LoadStores hydrates every store once on startup and keeps the catalog
// fresh through the change watcher while realtime sync is switched on.
func LoadStores(
	lc fx.Lifecycle,
	cfg *config.Config,
	api gateway.TableAPI,
	logger *zap.Logger,
	categories *stores.CategoryStore,
	tags *stores.TagStore,
	products *stores.ProductStore,
	plans *stores.PlanStore,
	orders *stores.OrderStore,
	profiles *stores.ProfileStore,
	fields *stores.CustomFieldStore,
	flags *stores.FeatureFlagStore,
	cities *stores.CityStore,
) {
	watchCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Tags before products: the capacity checks need them.
			tags.Load(ctx)
			categories.Load(ctx)
			products.Load(ctx)
			plans.Load(ctx)
			orders.Load(ctx)
			profiles.Load(ctx)
			fields.Load(ctx)
			flags.Load(ctx)
			cities.Load(ctx)

			watcher := gateway.NewWatcher(api, "products", cfg.RealtimePollInterval, logger)
			go watcher.Run(watchCtx, func() {
				if !flags.Enabled(view_models.FlagRealtimeSync) {
					return
				}
				products.Load(watchCtx)
				orders.Load(watchCtx)
			})
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			return nil
		},
	})
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("port", cfg.Port))
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	productsController *controllers.ProductsController,
	taxonomyController *controllers.TaxonomyController,
	commerceController *controllers.CommerceController,
	accountsController *controllers.AccountsController,
	flagsController *controllers.FlagsController,
	storefrontController *controllers.StorefrontController,
	diagnosticsController *controllers.DiagnosticsController,
	authService services.AuthServiceInterface) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		authController,
		productsController,
		taxonomyController,
		commerceController,
		accountsController,
		flagsController,
		storefrontController,
		diagnosticsController,
		authService)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	productsController *controllers.ProductsController,
	taxonomyController *controllers.TaxonomyController,
	commerceController *controllers.CommerceController,
	accountsController *controllers.AccountsController,
	flagsController *controllers.FlagsController,
	storefrontController *controllers.StorefrontController,
	diagnosticsController *controllers.DiagnosticsController,
	authService services.AuthServiceInterface) {

	r.GET("/healthz", diagnosticsController.Healthz)
	r.NoRoute(diagnosticsController.NotFound)

	r.GET("/", storefrontController.Home)
	store := r.Group("/store")
	store.GET("/products", storefrontController.ListProducts)
	store.GET("/products/:id", storefrontController.GetProduct)
	store.POST("/products", storefrontController.SubmitListing)
	store.GET("/categories", storefrontController.ListCategories)
	store.GET("/plans", storefrontController.ListPlans)
	store.GET("/banner/:id", storefrontController.Banner)

	r.POST("/admin/login", authController.Login)
	r.POST("/admin/logout", authController.Logout)
	r.GET("/admin/session", authController.Session)

	admin := r.Group("/admin")
	admin.Use(middleware.SessionMiddleware(authService))

	admin.GET("/products", productsController.List)
	admin.POST("/products", productsController.Create)
	admin.PUT("/products/:id", productsController.Update)
	admin.DELETE("/products/:id", productsController.Delete)
	admin.POST("/products/:id/approve", productsController.Approve)
	admin.POST("/products/:id/reject", productsController.Reject)

	admin.GET("/categories", taxonomyController.ListCategories)
	admin.POST("/categories", taxonomyController.CreateCategory)
	admin.PUT("/categories/:id", taxonomyController.UpdateCategory)
	admin.DELETE("/categories/:id", taxonomyController.DeleteCategory)

	admin.GET("/tags", taxonomyController.ListTags)
	admin.POST("/tags", taxonomyController.CreateTag)
	admin.PUT("/tags/:id", taxonomyController.UpdateTag)
	admin.DELETE("/tags/:id", taxonomyController.DeleteTag)

	admin.GET("/plans", commerceController.ListPlans)
	admin.POST("/plans", commerceController.CreatePlan)
	admin.PUT("/plans/:id", commerceController.UpdatePlan)
	admin.DELETE("/plans/:id", commerceController.DeletePlan)

	admin.GET("/orders", commerceController.ListOrders)
	admin.POST("/orders", commerceController.CreateOrder)
	admin.PUT("/orders/:id", commerceController.UpdateOrder)
	admin.DELETE("/orders/:id", commerceController.DeleteOrder)

	admin.GET("/profiles", accountsController.ListProfiles)
	admin.POST("/profiles", accountsController.CreateProfile)
	admin.PUT("/profiles/:id", accountsController.UpdateProfile)
	admin.DELETE("/profiles/:id", accountsController.DeleteProfile)

	admin.GET("/custom-fields", accountsController.ListCustomFields)
	admin.POST("/custom-fields", accountsController.CreateCustomField)
	admin.PUT("/custom-fields/:id", accountsController.UpdateCustomField)
	admin.DELETE("/custom-fields/:id", accountsController.DeleteCustomField)

	admin.GET("/flags", flagsController.ListFlags)
	admin.POST("/flags/:key/toggle", flagsController.ToggleFlag)

	admin.GET("/cities", flagsController.ListCities)
	admin.PUT("/cities", flagsController.SaveCities)
}
