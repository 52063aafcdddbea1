package gatewayfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"renthub/internal/config"
	"renthub/internal/gateway"
)

var Module = fx.Provide(provideTableAPI)

// provideTableAPI picks the backend: a direct database connection when one
// is configured, the hosted table API otherwise, and an offline stub when
// neither is present so the service still boots on seed data.
func provideTableAPI(cfg *config.Config, log *zap.Logger) (gateway.TableAPI, error) {
	switch {
	case cfg.DirectConfigured():
		return gateway.NewDirectClient(cfg.PostgresURL, log)
	case cfg.RESTConfigured():
		return gateway.NewRESTClient(cfg.TableAPIURL, cfg.TableAPIKey, log), nil
	default:
		log.Warn("no backend configured, running offline on seed data")
		return gateway.NewOfflineClient(), nil
	}
}
