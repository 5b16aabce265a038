package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcverde/ansilog/internal/ingest"
	"github.com/marcverde/ansilog/internal/logging"
	"github.com/marcverde/ansilog/internal/mirror"
	"github.com/marcverde/ansilog/internal/recorder"
	"github.com/marcverde/ansilog/pkg/config"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Record task events from stdin into the task log store",
	Long: `Read task-event JSON lines from stdin and append one store row per
task outcome. This is the bridge the Ansible callback hook pipes into.

An unusable store (missing directory, locked file, failed migration)
disables recording for the rest of the process but never fails the
command: the automation run must complete regardless of logging health.

When KAFKA_BROKERS is set, every recorded entry is also published to
KAFKA_TOPIC, again best-effort only.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()

		logger, err := logging.NewFromEnv()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		defer logger.Sync()

		opts := []recorder.Option{}
		if cfg.MirrorEnabled() {
			publisher := mirror.NewPublisher(cfg.BrokerList(), cfg.KafkaTopic)
			defer publisher.Close()
			opts = append(opts, recorder.WithMirror(publisher))
		}

		rec := recorder.New(cfg.DBPath, logger, opts...)
		defer rec.Close()

		if !rec.Enabled() {
			logger.Warn("store unusable, task events will be dropped",
				zap.String("path", cfg.DBPath),
			)
		}

		return ingest.Run(os.Stdin, rec, logger)
	},
}
