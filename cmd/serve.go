package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/shotdash/core"
	"github.com/huangsam/shotdash/internal/contract"
	"github.com/huangsam/shotdash/internal/web"
	"github.com/spf13/cobra"
)

// serveCmd starts the dashboard web server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive shot distribution dashboard.",
	Long: `Load the dataset once and serve the dashboard page, its JSON chart
endpoint and static SVG/PNG renderings until interrupted.

Examples:
  # Serve on the default address (:8050)
  shotdash serve

  # Serve another dataset on another port
  shotdash serve --data shots.parquet --addr :9000`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runServe()
	},
}

// runServe blocks until SIGINT or SIGTERM, then shuts the server down gracefully.
func runServe() {
	ctrl, err := loadController()
	if err != nil {
		contract.LogFatal("Cannot load dataset", err)
	}
	layout := core.BuildLayout(ctrl, cfg.DefaultGroup)
	srv := web.NewServer(ctrl, layout, web.Config{Logger: slog.Default()})

	ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := srv.Run(ctx, cfg.Addr); err != nil {
		contract.LogFatal("Cannot serve dashboard", err)
	}
}
