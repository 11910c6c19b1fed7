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
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/solarwatch/panel-api/internal/advice"
	"github.com/solarwatch/panel-api/internal/config"
	"github.com/solarwatch/panel-api/internal/handlers"
	"github.com/solarwatch/panel-api/internal/model"
	"github.com/solarwatch/panel-api/internal/preprocess"
)

func main() {
	config.LoadEnvFile()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	model.SetRuntimeLibrary(cfg.OnnxRuntimeDylib)

	log.Printf("Loading model from: %s", cfg.ModelPath)
	engine, err := model.Load(cfg.ModelPath, advice.Labels(), cfg.ImageSize)
	if err != nil {
		log.Fatalf("Failed to load model: %v", err)
	}
	defer engine.Close()

	service := handlers.NewService(engine, preprocess.New(cfg.ImageSize), cfg.MaxUploadBytes)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	service.AddRoutes(r)

	server := &http.Server{
		Addr:    ":" + cfg.APIPort,
		Handler: r,
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}
	}()

	log.Printf("Model loaded: %s", cfg.ModelPath)
	log.Printf("Classes: %v", advice.Labels())
	log.Printf("API server listening on port %s", cfg.APIPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v", cfg.APIPort, err)
	}

	log.Println("Server stopped.")
}
