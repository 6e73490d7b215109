package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/yigit/workload/internal/pkg/logger"
	"github.com/yigit/workload/internal/server"
)

// @title Teaching Workload API
// @version 1.0
// @description Teaching-load calculation, assignment validation and teacher workload tracking.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	configPath := flag.String("config", filepath.Join("configs", "config.yaml"), "path to the YAML configuration file")
	flag.Parse()

	srv, err := server.NewServer(*configPath)
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until shutdown
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
