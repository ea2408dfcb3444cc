// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	classesfeature "github.com/camphub/camphub/internal/app/features/classes"
	enrollmentsfeature "github.com/camphub/camphub/internal/app/features/enrollments"
	healthfeature "github.com/camphub/camphub/internal/app/features/health"
	paymentsfeature "github.com/camphub/camphub/internal/app/features/payments"
	selectionsfeature "github.com/camphub/camphub/internal/app/features/selections"
	tokenfeature "github.com/camphub/camphub/internal/app/features/token"
	usersfeature "github.com/camphub/camphub/internal/app/features/users"
	classstore "github.com/camphub/camphub/internal/app/store/classes"
	enrollmentstore "github.com/camphub/camphub/internal/app/store/enrollments"
	selectionstore "github.com/camphub/camphub/internal/app/store/selections"
	userstore "github.com/camphub/camphub/internal/app/store/users"
	"github.com/camphub/camphub/internal/app/system/payments"
	"github.com/camphub/camphub/internal/app/system/tokens"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE
// app. WAFFLE calls this after configuration, DB connection, schema
// setup, and Startup have completed.
//
// Auth posture: only the payment flow and the seat/enrollment mutations
// require a bearer token. Registration, role assignment, and class
// approval are open. Clients depend on that asymmetry, so it is kept.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.CampHubMongoDatabase

	tokenSvc := tokens.New(appCfg.TokenSecret, appCfg.TokenIssuer, appCfg.TokenTTL)
	intents := payments.NewStripeClient(appCfg.StripeSecretKey, appCfg.StripeCurrency)

	r := chi.NewRouter()

	// The browser frontend is served from a different origin and
	// expects permissive CORS.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.CampHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Handle("/metrics", promhttp.Handler())

	// Identity tokens
	tokenHandler := tokenfeature.NewHandler(tokenSvc, logger)
	r.Mount("/token", tokenfeature.Routes(tokenHandler))

	// Accounts and roles
	usersHandler := usersfeature.NewHandler(userstore.New(db), logger)
	r.Mount("/users", usersfeature.Routes(usersHandler))

	// Class catalog
	classesHandler := classesfeature.NewHandler(classstore.New(db), logger)
	r.Mount("/classes", classesfeature.Routes(classesHandler, tokenSvc))

	// Pending selections
	selectionsHandler := selectionsfeature.NewHandler(selectionstore.New(db), logger)
	r.Mount("/selectedClasses", selectionsfeature.Routes(selectionsHandler, tokenSvc))

	// Payment flow
	paymentsHandler := paymentsfeature.NewHandler(enrollmentstore.New(db), intents, logger)
	r.Mount("/payments", paymentsfeature.Routes(paymentsHandler, tokenSvc))

	// Paid enrollments
	enrollmentsHandler := enrollmentsfeature.NewHandler(enrollmentstore.New(db), logger)
	r.Mount("/enrolledClasses", enrollmentsfeature.Routes(enrollmentsHandler, tokenSvc))

	return r, nil
}
