// Command preview serves a brand author's view of every registered tenant:
// the resolved configuration, the feature matrix and the derived light/dark
// themes, as JSON. It is a local development aid; the engine itself never
// serves anything.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/classpoint/brandkit/domains/brand/config"
	"github.com/classpoint/brandkit/domains/brand/feature"
	"github.com/classpoint/brandkit/domains/brand/registry"
	"github.com/classpoint/brandkit/domains/brand/resolve"
	"github.com/classpoint/brandkit/domains/brand/theme"
	platformlogging "github.com/classpoint/brandkit/platform/go/logging"
)

type previewConfig struct {
	Addr            string        `env:"PREVIEW_ADDR" envDefault:":8787"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	var cfg previewConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := platformlogging.NewLogger(platformlogging.Config{
		Component: "brand-preview",
		Level:     cfg.LogLevel,
	})
	if err != nil {
		log.Fatalf("init zap logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	reg, err := registry.NewWithSeeds()
	if err != nil {
		logger.Fatal("load tenant registry", zap.Error(err))
	}

	validateSeeds(logger)

	environ, err := resolve.LoadEnvironment()
	if err != nil {
		logger.Fatal("read environment overrides", zap.Error(err))
	}
	resolver := resolve.New(reg, "", environ, logger)

	srv := &previewServer{reg: reg, resolver: resolver, logger: logger}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.Recoverer)
	router.Get("/tenants", srv.listTenants)
	router.Get("/tenants/{id}/config", srv.tenantConfig)
	router.Get("/tenants/{id}/features", srv.tenantFeatures)
	router.Get("/tenants/{id}/theme", srv.tenantTheme)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		logger.Info("preview server listening", zap.String("addr", cfg.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("preview server stopped")
}

// validateSeeds runs the authoring schema over the shipped documents and
// logs warnings only; the engine stays permissive at runtime.
func validateSeeds(logger *zap.Logger) {
	validator, err := config.NewValidator()
	if err != nil {
		logger.Fatal("compile authoring schema", zap.Error(err))
	}

	seeds, err := registry.SeedDocuments()
	if err != nil {
		logger.Fatal("read seed documents", zap.Error(err))
	}

	for id, payload := range seeds {
		if err := validator.Validate(payload); err != nil {
			logger.Warn("seed document fails authoring schema",
				zap.String("tenant", id),
				zap.Error(err),
			)
		}
	}
}

type previewServer struct {
	reg      *registry.Registry
	resolver *resolve.Resolver
	logger   *zap.Logger
}

func (s *previewServer) listTenants(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]any{"tenants": s.reg.IDs()})
}

func (s *previewServer) tenantConfig(w http.ResponseWriter, r *http.Request) {
	snap := s.resolver.Resolve(chi.URLParam(r, "id"))
	s.writeJSON(w, map[string]any{
		"tenant":     snap.TenantID,
		"generation": snap.Generation,
		"config":     snap.Config,
	})
}

func (s *previewServer) tenantFeatures(w http.ResponseWriter, r *http.Request) {
	snap := s.resolver.Resolve(chi.URLParam(r, "id"))
	gate := feature.NewGate(snap.Config)

	modules := make(map[config.Module]bool, len(config.AllModules()))
	for _, m := range config.AllModules() {
		modules[m] = gate.Enabled(m)
	}

	s.writeJSON(w, map[string]any{
		"tenant":        snap.TenantID,
		"modules":       modules,
		"enabled":       gate.EnabledModules(),
		"notifications": gate.NotificationsEnabled(),
		"offline":       gate.OfflineEnabled(),
		"darkMode":      gate.DarkModeAvailable(),
	})
}

func (s *previewServer) tenantTheme(w http.ResponseWriter, r *http.Request) {
	snap := s.resolver.Resolve(chi.URLParam(r, "id"))

	dark := r.URL.Query().Get("mode") == "dark"
	if dark && !snap.Config.Features.DarkMode {
		dark = false
	}

	s.writeJSON(w, map[string]any{
		"tenant": snap.TenantID,
		"mode":   map[bool]string{true: "dark", false: "light"}[dark],
		"fonts":  snap.Config.Theme.Fonts,
		"colors": theme.DeriveColors(snap.Config.Theme.Colors, dark),
	})
}

func (s *previewServer) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}
