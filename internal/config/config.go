package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every environment-derived setting. It is loaded once at
// startup and threaded through fx; nothing else reads the environment.
type Config struct {
	Port string

	// Remote table API (hosted backend). Both must be present for REST mode.
	TableAPIURL string
	TableAPIKey string

	// Direct Postgres DSN. When set it takes precedence over the REST mode.
	PostgresURL string

	AdminEmail    string
	AdminPassword string
	JWTSecret     string

	Log      string // dev|prod
	LogLevel string
	LogFile  string

	RealtimePollInterval time.Duration
}

// LoadConfig reads .env and the environment. Missing remote settings are not
// an error: the service degrades to seed data and a disabled admin login.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	cfg := &Config{
		Port: def(os.Getenv("PORT"), "8080"),

		TableAPIURL: strings.TrimRight(os.Getenv("TABLE_API_URL"), "/"),
		TableAPIKey: os.Getenv("TABLE_API_KEY"),
		PostgresURL: os.Getenv("POSTGRES_URL"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		JWTSecret:     def(os.Getenv("JWT_SECRET"), "renthub-dev-secret"),

		Log:      def(os.Getenv("LOG"), "prod"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		LogFile:  def(os.Getenv("LOGFILE"), "logs/renthub.log"),
	}

	seconds, err := strconv.Atoi(def(os.Getenv("REALTIME_POLL_SECONDS"), "15"))
	if err != nil || seconds < 1 {
		seconds = 15
	}
	cfg.RealtimePollInterval = time.Duration(seconds) * time.Second

	return cfg, nil
}

// RESTConfigured reports whether the hosted table API is reachable by config.
func (c *Config) RESTConfigured() bool {
	return c.TableAPIURL != "" && c.TableAPIKey != ""
}

// DirectConfigured reports whether a direct Postgres DSN is available.
func (c *Config) DirectConfigured() bool {
	return c.PostgresURL != ""
}

// Offline is true when no backend is configured at all. Stores then serve
// seed data and reject mutations.
func (c *Config) Offline() bool {
	return !c.RESTConfigured() && !c.DirectConfigured()
}

// AdminConfigured reports whether the admin login gate can operate.
func (c *Config) AdminConfigured() bool {
	return c.AdminEmail != "" && c.AdminPassword != ""
}
