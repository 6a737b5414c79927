package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jgarciandiav/ventas-backend/internal/infrastructure/postgres"
	"github.com/jgarciandiav/ventas-backend/pkg/config"
	"github.com/jgarciandiav/ventas-backend/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error ejecutando migraciones: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	log.Info().Msg("aplicando migraciones")

	if err := postgres.Migrate(pool); err != nil {
		return fmt.Errorf("migrar base de datos: %w", err)
	}

	log.Info().Msg("migraciones aplicadas")
	return nil
}
