package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/terminal"
	"github.com/sheikhrachel/go-life/utils"
	"github.com/sheikhrachel/go-life/window"
)

// initializeGame sets up the simulation described by the config
func initializeGame(config utils.Config) (*model.Simulation, error) {
	mode, err := model.ParseInitMode(config.InitMode)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] bad init_mode")
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sim, err := model.NewSimulation(config.Width, config.Height, mode, seed)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to create simulation")
	}
	sim.SetRunning(config.StartRunning)
	return sim, nil
}

// displayGameInfo logs the initial game information
func displayGameInfo(config utils.Config, sim *model.Simulation) {
	log.Printf("Grid: %dx%d | Mode: %s | Driver: %s | Initial living cells: %d",
		sim.Width(), sim.Height(), config.InitMode, config.Driver, sim.LiveCells())
}

// runWindow drives the simulation in a desktop window
func runWindow(sim *model.Simulation, config utils.Config) error {
	game, err := window.New(sim, config)
	if err != nil {
		return err
	}
	return window.Run(game, config)
}

// runTerminal drives the simulation in the current terminal
func runTerminal(ctx context.Context, sim *model.Simulation, config utils.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[runTerminal] failed to create screen")
	}

	driver, err := terminal.NewDriver(screen, sim, config)
	if err != nil {
		return err
	}
	if err = driver.Run(ctx); err != nil {
		return err
	}

	stats := driver.Stats()
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		sim.Generation(), stats.Runtime(time.Now()).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
	return nil
}
