package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"lightcurve/app"
	"lightcurve/internal/config"
	"lightcurve/internal/container"
	"lightcurve/internal/errors"

	"github.com/joho/godotenv"
)

func main() {
	start := time.Now()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		os.Exit(errors.ExitCode(err))
	}

	c, err := container.New(appConfig)
	if err != nil {
		log.Printf("Failed to initialize: %v", err)
		os.Exit(errors.ExitCode(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := c.Pipeline.Run(ctx, app.OptionsFromConfig(appConfig)); err != nil {
		c.Logger.Error("%v", err)
		stop()
		os.Exit(errors.ExitCode(err))
	}

	fmt.Printf("lightcurve took %v seconds\n", time.Since(start).Seconds())
}
