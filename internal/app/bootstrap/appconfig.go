// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, request limits); AppConfig is everything specific to this
// service: the MongoDB connection, token signing, outbound timeouts, and
// the payment-processor credentials.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Identity-token configuration
	TokenSecret string        // HMAC secret for signing identity tokens (must be strong in production)
	TokenIssuer string        // Issuer claim stamped on every token
	TokenTTL    time.Duration // Token lifetime (default 1h)

	// Payment processor configuration
	StripeSecretKey string // Stripe API secret key
	StripeCurrency  string // Currency code for payment intents (default: usd)

	// Outbound-call timeout overrides (zero keeps the package defaults)
	DBTimeoutPing   time.Duration
	DBTimeoutShort  time.Duration
	DBTimeoutMedium time.Duration
}
