package accountsfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"renthub/internal/config"
	"renthub/internal/gateway"
	"renthub/internal/seeds"
	"renthub/internal/services"
	"renthub/internal/stores"
	mem "renthub/pkg/memcache"
	"renthub/pkg/utils"
)

var Module = fx.Provide(
	provideProfileStore,
	provideCustomFieldStore,
	provideSessions,
	provideTokenMaker,
	provideAuthService)

func provideProfileStore(api gateway.TableAPI, log *zap.Logger) *stores.ProfileStore {
	return stores.NewProfileStore(api, seeds.Profiles, log)
}

func provideCustomFieldStore(api gateway.TableAPI, log *zap.Logger) *stores.CustomFieldStore {
	return stores.NewCustomFieldStore(api, seeds.CustomFields, log)
}

func provideSessions() mem.SessionRegistry {
	return mem.NewSessions()
}

func provideTokenMaker(cfg *config.Config) *utils.TokenMaker {
	return utils.NewTokenMaker(cfg.JWTSecret)
}

func provideAuthService(cfg *config.Config, sessions mem.SessionRegistry, tokens *utils.TokenMaker, log *zap.Logger) services.AuthServiceInterface {
	return services.NewAuthService(cfg, sessions, tokens, log)
}
