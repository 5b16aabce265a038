package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/marcverde/ansilog/docs" // swagger docs registration
)

// Version information (set via ldflags at build time)
var (
	version = "dev"
	commit  = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "ansilog",
	Short: "Record and browse Ansible task results",
	Long: `Ansilog persists one row per Ansible task outcome into a SQLite
store and serves the results over a filtered, paginated HTTP API.

The two roles never talk to each other directly; the store file is the
only integration point:

  ansilog ingest   reads task-event JSON lines from stdin (emitted by
                   the Ansible callback hook) and appends them to the
                   store. Never fails the run it is logging.
  ansilog serve    exposes GET /api/playbooks and GET /api/logs over
                   the same store.

The store location comes from ANSIBLE_SQLITE_PATH and defaults to
/var/cache/ansible_logs/logs.db.`,
	Version: fmt.Sprintf("%s (commit: %s)", version, commit),
}

// @title Ansilog Query API
// @version 1.0
// @description Read API over recorded Ansible task results: aggregated playbook runs and filtered, paginated task log entries.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
// @schemes http

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(ingestCmd)
}
