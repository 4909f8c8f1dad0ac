package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pebworks/steelquote-backend/api/controllers"
	"github.com/pebworks/steelquote-backend/api/middleware"
	authsvc "github.com/pebworks/steelquote-backend/internal/auth"
	"github.com/pebworks/steelquote-backend/internal/estimation"
	product "github.com/pebworks/steelquote-backend/internal/products"
	"github.com/pebworks/steelquote-backend/internal/reports"
	"github.com/pebworks/steelquote-backend/pkg/auth/session"
	"github.com/pebworks/steelquote-backend/pkg/config"
	"github.com/pebworks/steelquote-backend/pkg/db"
	"github.com/pebworks/steelquote-backend/pkg/enums"
	"github.com/pebworks/steelquote-backend/pkg/logger"
	"github.com/pebworks/steelquote-backend/pkg/redis"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             db.Pinger
	Redis          *redis.Client
	SessionChecker session.AccessSessionChecker
	AuthService    authsvc.Service
	ProductService product.Service
	Estimations    estimation.Service
	Reports        reports.Service
	Metrics        http.Handler
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	var redisPinger redis.Pinger
	var rlStore middleware.RateLimiterStore
	var idemStore redis.IdempotencyStore
	if deps.Redis != nil {
		redisPinger = deps.Redis
		rlStore = deps.Redis
		idemStore = deps.Redis
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, redisPinger))
	})

	metricsHandler := deps.Metrics
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, rlStore, logg)).Post("/login", controllers.AuthLogin(deps.AuthService, logg))
		r.Post("/refresh", controllers.AuthRefresh(deps.AuthService, logg))
		r.With(middleware.Auth(cfg.JWT, deps.SessionChecker, logg)).Post("/logout", controllers.AuthLogout(deps.AuthService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionChecker, logg))
		r.Use(middleware.Idempotency(idemStore, cfg.Estimation.IdempotencyTTL, logg))

		r.Get("/ping", controllers.PrivatePing())

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(deps.ProductService, logg))
			r.Get("/{code}", controllers.ProductGet(deps.ProductService, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(logg, string(enums.MemberRoleAdmin), string(enums.MemberRoleEstimator)))
				r.Post("/", controllers.ProductCreate(deps.ProductService, logg))
				r.Patch("/{code}", controllers.ProductUpdate(deps.ProductService, logg))
				r.Delete("/{code}", controllers.ProductDeactivate(deps.ProductService, logg))
			})
		})

		r.Route("/estimations", func(r chi.Router) {
			r.Get("/", controllers.EstimationList(deps.Estimations, logg))
			r.Post("/", controllers.EstimationCreate(deps.Estimations, logg))

			r.Route("/{estimationId}", func(r chi.Router) {
				r.Get("/", controllers.EstimationGet(deps.Estimations, logg))
				r.Patch("/", controllers.EstimationUpdate(deps.Estimations, logg))
				r.Delete("/", controllers.EstimationDelete(deps.Estimations, logg))

				r.Post("/calculate", controllers.EstimationCalculate(deps.Estimations, logg))
				r.Post("/finalize", controllers.EstimationFinalize(deps.Estimations, logg))
				r.Post("/unlock", controllers.EstimationUnlock(deps.Estimations, logg))
				r.Get("/addons/{kind}/preview", controllers.EstimationAddonPreview(deps.Estimations, logg))

				r.Route("/reports", func(r chi.Router) {
					r.Get("/bom", controllers.ReportBOM(deps.Reports, logg))
					r.Get("/rawmat", controllers.ReportRawMat(deps.Reports, logg))
					r.Get("/fcpbs", controllers.ReportFCPBS(deps.Reports, logg))
					r.Get("/sal", controllers.ReportSAL(deps.Reports, logg))
				})

				r.Get("/erp-export", controllers.ErpExport(deps.Estimations, deps.Reports, logg))
			})
		})
	})

	return r
}
