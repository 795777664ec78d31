package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	var (
		configPath = flag.String("config", "config.json", "path to a JSON configuration file")
		driver     = flag.String("driver", "", "override the configured driver: window or terminal")
	)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			log.Fatalf("loading config: %v", err)
		}
		log.Printf("Using default configuration (%s not found)", *configPath)
		config = utils.DefaultConfig()
	}
	if *driver != "" {
		config.Driver = *driver
		if err = config.Validate(); err != nil {
			log.Fatalf("bad -driver flag: %v", err)
		}
	}

	sim, err := initializeGame(config)
	if err != nil {
		log.Fatalf("initializing game: %v", err)
	}
	displayGameInfo(config, sim)

	switch config.Driver {
	case utils.DriverTerminal:
		// Handle Ctrl+C gracefully
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		err = runTerminal(ctx, sim, config)
	default:
		err = runWindow(sim, config)
	}
	if err != nil {
		log.Fatalf("running %s driver: %v", config.Driver, err)
	}
}
