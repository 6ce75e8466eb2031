package main

import (
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/Luisfp0/online-course-products/internal/catalog"
	"github.com/Luisfp0/online-course-products/internal/config"
	apphttp "github.com/Luisfp0/online-course-products/internal/http"
	"github.com/Luisfp0/online-course-products/internal/modules/auth"
	"github.com/Luisfp0/online-course-products/internal/modules/products"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	gate, err := auth.NewGate(cfg.Auth.Username, cfg.Auth.Password)
	if err != nil {
		log.Fatalf("failed to build login gate: %v", err)
	}

	api := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout)
	svc := products.NewService(api, logger)
	store := products.NewStore(svc)

	r := apphttp.NewRouter(logger, cfg, gate, store)
	_ = r.Run(cfg.Server.Addr)
}
