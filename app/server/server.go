// Package server wires the catalog handlers into an http.Server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/mytheresa/storefront/app/admin"
	"github.com/mytheresa/storefront/app/brands"
	"github.com/mytheresa/storefront/app/catalog"
	"github.com/mytheresa/storefront/app/categories"
	"github.com/mytheresa/storefront/app/config"
	"github.com/mytheresa/storefront/app/logging"
	"github.com/mytheresa/storefront/app/view"
	"github.com/mytheresa/storefront/models"
)

// NewHandler builds the routing table on top of db.
func NewHandler(cfg *config.Config, db *gorm.DB, logger *zap.Logger) (http.Handler, error) {
	renderer, err := view.NewRenderer(cfg.MediaURL)
	if err != nil {
		return nil, err
	}

	productsRepo := models.NewProductsRepository(db)
	categoriesRepo := models.NewCategoriesRepository(db)
	brandsRepo := models.NewBrandsRepository(db)

	catalogHandler := catalog.NewCatalogHandler(productsRepo, categoriesRepo, brandsRepo, renderer, logger)
	categoryHandler := categories.NewCategoryHandler(categoriesRepo, logger)
	brandHandler := brands.NewBrandHandler(brandsRepo, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", catalogHandler.HandleIndex)
	mux.HandleFunc("GET /about/{$}", catalogHandler.HandleAbout)
	mux.HandleFunc("GET /catalog/{$}", catalogHandler.HandleCatalog)
	mux.HandleFunc("GET /catalog/{category}/{$}", catalogHandler.HandleCatalog)
	mux.HandleFunc("GET /product/{slug}", catalogHandler.HandleProduct)
	mux.HandleFunc("GET /prices/{$}", catalogHandler.HandlePrices)

	mux.HandleFunc("GET /api/categories", categoryHandler.HandleGetAll)
	mux.HandleFunc("GET /api/brands", brandHandler.HandleGetAll)

	if cfg.Admin.Enabled() {
		productHandler := admin.NewProductHandler(productsRepo, categoriesRepo, brandsRepo, logger)

		adminMux := http.NewServeMux()
		adminMux.HandleFunc("POST /admin/categories", categoryHandler.HandleCreate)
		adminMux.HandleFunc("POST /admin/brands", brandHandler.HandleCreate)
		adminMux.HandleFunc("POST /admin/products", productHandler.HandleCreateProduct)
		adminMux.HandleFunc("POST /admin/products/{slug}/images", productHandler.HandleAddImage)
		mux.Handle("/admin/", admin.BasicAuth(cfg.Admin)(adminMux))
	} else {
		logger.Info("admin endpoints disabled: no admin password configured")
	}

	var handler http.Handler = mux
	handler = logging.Recover(logger)(handler)
	handler = logging.Middleware(logger)(handler)
	return handler, nil
}

// Run serves handler until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger *zap.Logger) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}
	return Serve(ctx, cfg, ln, handler, logger)
}

// Serve is Run on an existing listener.
func Serve(ctx context.Context, cfg config.ServerConfig, ln net.Listener, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ErrorLog:          zap.NewStdLog(logger),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
