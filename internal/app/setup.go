// Package app contains the application setup for the storefront service.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mkraev/digistore/internal/config"
	"github.com/mkraev/digistore/internal/service"
	"github.com/mkraev/digistore/internal/store"
	"github.com/mkraev/digistore/internal/transport/rest"
	"github.com/mkraev/digistore/pkg/server"
)

type Dependencies struct {
	ProductService service.ProductService
	Logger         *slog.Logger
}

// SetupDependencies builds the store and service graph. When seed is true the
// sample catalog is loaded into the fresh store.
func SetupDependencies(ctx context.Context, logger *slog.Logger, seed bool) (*Dependencies, error) {
	productStore := store.NewInMemoryStore()
	if seed {
		if err := store.Seed(ctx, productStore); err != nil {
			return nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	return &Dependencies{
		ProductService: service.NewService(productStore),
		Logger:         logger,
	}, nil
}

// SetupHttpHandler initializes the router and routes for the storefront.
// Also used by the in-process API tests.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the storefront.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	productHandler := rest.NewHandler(deps.ProductService, deps.Logger)
	productHandler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures the HTTP server for the storefront.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
