// Gnssd is the GNSS identifier resolution daemon.
//
// It loads configuration, starts the HTTP/WebSocket server, and answers
// lookups for constellations, space vehicles, COSPAR launch designators,
// DOMES site numbers, and SBAS coverage. Shutdown is handled gracefully
// on SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/large-farva/gnss/internal/app"
	"github.com/large-farva/gnss/internal/config"
)

func main() {
	var (
		configPath = pflag.StringP("config", "c", "/etc/gnssd/gnssd.toml", "Path to config TOML")
		bind       = pflag.String("bind", "", "HTTP bind address (overrides config)")
	)
	pflag.Parse()

	logger := log.New(os.Stdout, "gnssd ", log.LstdFlags|log.Lmicroseconds)

	cfg, err := config.Load(*configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !pflag.CommandLine.Changed("config") {
			// No config file at the default location: run on defaults.
			logger.Printf("no config at %s, using defaults", *configPath)
			cfg = config.Default()
		} else {
			log.Fatalf("config load failed: %v", err)
		}
	}

	a := app.New(app.Options{
		Logger: logger,
		Cfg:    cfg,
		Bind:   *bind,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("gnssd failed: %v", err)
	}

	// Brief pause so in-flight log writes can flush before exit.
	time.Sleep(50 * time.Millisecond)
}
