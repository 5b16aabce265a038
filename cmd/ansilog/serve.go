package main

import (
	"github.com/spf13/cobra"

	"github.com/marcverde/ansilog/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the task log query service",
	Long: `Start the HTTP query service over the task log store.

Endpoints:
  GET /api/playbooks   aggregated playbook runs, newest first
  GET /api/logs        filtered, paginated task log entries
  GET /health          liveness probe
  GET /metrics         store-wide aggregate counts
  GET /swagger/...     API documentation (also reachable via /)

Configuration is environment-driven: ANSIBLE_SQLITE_PATH, API_PORT,
ENVIRONMENT, LOG_LEVEL and CORS_ORIGINS.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return api.NewServer().Serve()
	},
}
