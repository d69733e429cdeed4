package api

import (
	"context"
	_ "embed"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/acifab/fabric-inventory/internal/api/handler"
	mw "github.com/acifab/fabric-inventory/internal/api/middleware"
	"github.com/acifab/fabric-inventory/internal/config"
	"github.com/acifab/fabric-inventory/internal/core"
)

//go:embed docs/swagger.json
var swaggerJSON []byte

type Server struct {
	router      chi.Router
	logger      zerolog.Logger
	services    *core.Services
	pool        *pgxpool.Pool
	cfg         *config.Config
	auditLogger *mw.AuditLogger
}

func NewServer(logger zerolog.Logger, pool *pgxpool.Pool, cfg *config.Config) *Server {
	services := core.NewServices(pool)
	auditLogger := mw.NewAuditLogger(pool, logger)

	s := &Server{
		router:      chi.NewRouter(),
		logger:      logger,
		services:    services,
		pool:        pool,
		cfg:         cfg,
		auditLogger: auditLogger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Close shuts down the async audit writer.
func (s *Server) Close() {
	s.auditLogger.Close()
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(mw.RequestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(mw.Metrics)
}

func (s *Server) setupRoutes() {
	// Prometheus metrics endpoint
	s.router.Handle("/metrics", promhttp.Handler())

	// Health check endpoints
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Get("/readyz", s.handleReadyz)

	// API documentation (no auth required)
	s.router.Get("/docs/openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(swaggerJSON)
	})
	s.router.Get("/docs", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(scalarHTML))
	})

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.Auth(s.pool))
		r.Use(s.auditLogger.Middleware)

		// Cross-entity search
		search := handler.NewSearch(s.services.Search)
		r.Get("/search", search.Search)

		// Audit logs
		audit := handler.NewAudit(s.pool)
		r.Get("/audit-logs", audit.List)

		// Tenants
		tenant := handler.NewTenant(s.services.Tenant)
		r.Get("/tenants", tenant.List)
		r.Post("/tenants", tenant.Create)
		r.Get("/tenants/{id}", tenant.Get)
		r.Put("/tenants/{id}", tenant.Update)
		r.Delete("/tenants/{id}", tenant.Delete)

		// Application profiles
		appProfile := handler.NewAppProfile(s.services.AppProfile)
		r.Get("/tenants/{tenantID}/app-profiles", appProfile.ListByTenant)
		r.Post("/tenants/{tenantID}/app-profiles", appProfile.Create)
		r.Get("/app-profiles/{id}", appProfile.Get)
		r.Put("/app-profiles/{id}", appProfile.Update)
		r.Delete("/app-profiles/{id}", appProfile.Delete)

		// VRFs
		vrf := handler.NewVRF(s.services.VRF)
		r.Get("/tenants/{tenantID}/vrfs", vrf.ListByTenant)
		r.Post("/tenants/{tenantID}/vrfs", vrf.Create)
		r.Get("/vrfs/{id}", vrf.Get)
		r.Put("/vrfs/{id}", vrf.Update)
		r.Delete("/vrfs/{id}", vrf.Delete)

		// Bridge domains
		bridgeDomain := handler.NewBridgeDomain(s.services.BridgeDomain)
		r.Get("/vrfs/{vrfID}/bridge-domains", bridgeDomain.ListByVRF)
		r.Post("/vrfs/{vrfID}/bridge-domains", bridgeDomain.Create)
		r.Get("/bridge-domains/{id}", bridgeDomain.Get)
		r.Put("/bridge-domains/{id}", bridgeDomain.Update)
		r.Delete("/bridge-domains/{id}", bridgeDomain.Delete)

		// Bridge domain subnets
		subnet := handler.NewBridgeDomainSubnet(s.services.BridgeDomainSubnet)
		r.Get("/bridge-domains/{bdID}/subnets", subnet.ListByBridgeDomain)
		r.Post("/bridge-domains/{bdID}/subnets", subnet.Create)
		r.Get("/subnets/{id}", subnet.Get)
		r.Put("/subnets/{id}", subnet.Update)
		r.Delete("/subnets/{id}", subnet.Delete)

		// Endpoint groups
		endpointGroup := handler.NewEndpointGroup(s.services.EndpointGroup)
		r.Get("/app-profiles/{apID}/endpoint-groups", endpointGroup.ListByAppProfile)
		r.Post("/app-profiles/{apID}/endpoint-groups", endpointGroup.Create)
		r.Get("/endpoint-groups/{id}", endpointGroup.Get)
		r.Put("/endpoint-groups/{id}", endpointGroup.Update)
		r.Delete("/endpoint-groups/{id}", endpointGroup.Delete)

		// API keys
		apiKey := handler.NewAPIKey(s.services.APIKey)
		r.Get("/api-keys", apiKey.List)
		r.Post("/api-keys", apiKey.Create)
		r.Get("/api-keys/{id}", apiKey.Get)
		r.Delete("/api-keys/{id}", apiKey.Revoke)
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true

	if err := s.pool.Ping(ctx); err != nil {
		checks["db"] = err.Error()
		healthy = false
	} else {
		checks["db"] = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	if healthy {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(checks)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

const scalarHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Fabric Inventory API</title>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
</head>
<body>
  <script id="api-reference" data-url="/docs/openapi.json"></script>
  <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
