package main

import (
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"mpg-forecast/internal/adapters/primary/console"
	"mpg-forecast/internal/adapters/secondary/artifactfile"
	"mpg-forecast/internal/config"
	"mpg-forecast/internal/core/domain"
	"mpg-forecast/internal/core/services"
)

func main() {
	if err := run(context.Background(), os.Stdout); err != nil {
		log.Fatalf("predict: %v", err)
	}
}

func run(ctx context.Context, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	initLogger(cfg)

	loader := artifactfile.NewFileLoader()
	predictionSvc := services.NewPredictionService(loader)
	printer := console.NewPrinter(out)

	prediction, err := predictionSvc.Predict(ctx, cfg.Model.Path, domain.ExampleVehicle())
	if err != nil {
		return err
	}

	return printer.PrintPrediction(prediction)
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
