// Command seed loads the demo catalogue into the configured store.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/supplyline/supplyline/internal/app"
)

func main() {
	envFile := flag.String("env", ".env", "dotenv file to load before the environment")
	flag.Parse()

	cfg, err := app.LoadConfig(*envFile)
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	st, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("open store", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			logger.Warn("store close", slog.Any("error", err))
		}
	}()

	res, err := app.Seed(ctx, app.NewServices(app.Deps{Store: st, Logger: logger}), time.Now().UTC())
	if err != nil {
		logger.Error("seed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("sample data inserted",
		slog.Int("suppliers", res.Suppliers),
		slog.Int("warehouses", res.Warehouses),
		slog.Int("products", res.Products),
		slog.Int("documents", res.Documents),
	)
}
