package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"trailmate/config"
	"trailmate/location"
	"trailmate/logging"
	"trailmate/ui"
)

func runInteractive() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}

	log, err := logging.New(cfg.LogFile, debugMode)
	if err != nil {
		return fmt.Errorf("error setting up logging: %w", err)
	}
	defer log.Sync()

	log.Info("starting",
		zap.Float64("lat", startLat),
		zap.Float64("lng", startLng),
		zap.Duration("update_interval", cfg.UpdateInterval),
		zap.Float64("min_distance", cfg.MinDistance),
	)

	provider := location.NewSimulatedGPS(startLat, startLng, location.WithLogger(log))

	app := ui.NewAppModel(provider, cfg, log, groupCode, displayName)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	log.Info("stopped")
	return nil
}
