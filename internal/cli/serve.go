package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/uninest/uninest/internal/config"
	"github.com/uninest/uninest/internal/logging"
	"github.com/uninest/uninest/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Start the uninest HTTP API server.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			return runServe(cfg)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")

	return cmd
}

func runServe(cfg config.Config) error {
	logging.Setup(cfg.DevMode)

	database, err := openDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeDB(database)

	server := web.NewServer(database, cfg)

	if cfg.AdminEmail != "" {
		if _, err := server.EnsureAdmin(cfg.AdminEmail); err != nil {
			return err
		}
	}

	slog.Info("starting uninest server", "port", cfg.Port, "dev_mode", cfg.DevMode)
	return server.ListenAndServe()
}
