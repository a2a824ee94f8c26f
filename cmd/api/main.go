//	@title			Drive Gateway API
//	@version		1.0
//	@description	REST gateway for profile, product, and subproduct images stored in Google Drive.
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT Bearer token. Format: **Bearer {token}**

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/inventory/drive-gateway/internal/auth"
	"github.com/inventory/drive-gateway/internal/config"
	appMiddleware "github.com/inventory/drive-gateway/internal/middleware"
	"github.com/inventory/drive-gateway/internal/product"
	"github.com/inventory/drive-gateway/internal/profile"
	"github.com/inventory/drive-gateway/internal/storage"
	"github.com/inventory/drive-gateway/internal/subproduct"

	_ "github.com/inventory/drive-gateway/docs/swagger"
)

func main() {
	cfg := config.Load()

	// Credentials are resolved once here; a misconfigured secret aborts
	// startup instead of failing per request.
	store, err := storage.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("drive client init failed: %v", err)
	}

	verifier := auth.NewVerifier(cfg.JWTSecret)

	// Wire dependencies: storage → service → handler
	profileHandler := profile.NewHandler(profile.NewService(store, cfg.ProfileFolderID, cfg.AllowedExtensions))
	productHandler := product.NewHandler(product.NewService(store, cfg.ProductsFolderID, cfg.AllowedExtensions))
	subproductHandler := subproduct.NewHandler(subproduct.NewService(store, cfg.SubproductsFolderID, cfg.AllowedExtensions))

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "x-api-key"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Liveness
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"drive gateway up"}`))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/profile", func(r chi.Router) {
		r.Use(appMiddleware.RequireAuth(verifier))
		r.Post("/", profileHandler.Upload)
		r.Put("/{fileID}", profileHandler.Replace)
		r.Get("/download/{fileID}", profileHandler.Download)
		r.Delete("/delete/{fileID}", profileHandler.Delete)
		r.Get("/{fileID}", profileHandler.Metadata)
	})

	r.Route("/product/{productID}", func(r chi.Router) {
		r.Use(appMiddleware.RequireAuth(verifier))
		r.Post("/upload", productHandler.Upload)
		r.Get("/list", productHandler.List)
		r.Put("/replace/{fileID}", productHandler.Replace)
		r.Get("/download/{fileID}", productHandler.Download)
		r.Delete("/delete/{fileID}", productHandler.Delete)
	})

	r.Route("/subproduct/{productID}/{subproductID}", func(r chi.Router) {
		r.Use(appMiddleware.RequireAuth(verifier))
		r.Post("/upload", subproductHandler.Upload)
		r.Get("/list", subproductHandler.List)
		r.Put("/replace/{fileID}", subproductHandler.Replace)
		r.Get("/download/{fileID}", subproductHandler.Download)
		r.Delete("/delete/{fileID}", subproductHandler.Delete)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}
