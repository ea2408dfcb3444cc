// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for CampHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, token_secret, etc.
//   - Environment variables: CAMPHUB_MONGO_URI, CAMPHUB_TOKEN_SECRET, etc.
//   - Command-line flags: --mongo_uri, --token_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "summerCamp", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Identity tokens
	{Name: "token_secret", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "HMAC secret for identity tokens (must be strong in production)"},
	{Name: "token_issuer", Default: "camphub", Desc: "Issuer claim stamped on identity tokens"},
	{Name: "token_ttl", Default: "1h", Desc: "Identity token lifetime (e.g., 1h, 30m)"},

	// Payment processor
	{Name: "stripe_secret_key", Default: "", Desc: "Stripe API secret key"},
	{Name: "stripe_currency", Default: "usd", Desc: "Currency code for payment intents"},

	// Outbound-call timeouts
	{Name: "db_timeout_ping", Default: "", Desc: "Timeout for DB connectivity checks (e.g., 2s)"},
	{Name: "db_timeout_short", Default: "", Desc: "Timeout for single-document DB operations (e.g., 5s)"},
	{Name: "db_timeout_medium", Default: "", Desc: "Timeout for list queries and processor calls (e.g., 10s)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, CAMPHUB_* for app), and
// command-line flags, merged with precedence: flags > env > files >
// defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "CAMPHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		TokenSecret: appValues.String("token_secret"),
		TokenIssuer: appValues.String("token_issuer"),
		TokenTTL:    appValues.Duration("token_ttl", time.Hour),

		StripeSecretKey: appValues.String("stripe_secret_key"),
		StripeCurrency:  appValues.String("stripe_currency"),

		DBTimeoutPing:   appValues.Duration("db_timeout_ping", 0),
		DBTimeoutShort:  appValues.Duration("db_timeout_short", 0),
		DBTimeoutMedium: appValues.Duration("db_timeout_medium", 0),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI is checked up front so a bad connection string fails
// here instead of during connect, and payments are refused a dev-default
// token secret in production.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be positive")
	}

	if coreCfg.Env == "prod" {
		if appCfg.TokenSecret == "" || appCfg.TokenSecret == "dev-only-change-me-please-0123456789ABCDEF" {
			return fmt.Errorf("token_secret must be set to a strong value in production")
		}
		if appCfg.StripeSecretKey == "" {
			return fmt.Errorf("stripe_secret_key must be set in production")
		}
	}

	if appCfg.StripeSecretKey == "" {
		logger.Warn("stripe_secret_key is empty; payment-intent creation will fail")
	}

	return nil
}
