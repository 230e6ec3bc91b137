package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/tocscan/internal/config"
	"github.com/jackzampolin/tocscan/internal/home"
	"github.com/jackzampolin/tocscan/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tocscan HTTP server",
	Long: `Start the tocscan HTTP server, exposing the same scan operation as
the CLI's "scan" command over HTTP.

  POST /v1/toc   infer a table of contents for a posted article
  GET  /health   basic server health check

Examples:
  tocscan serve                    # Start on default port 8080
  tocscan serve --port 3000        # Start on custom port
  tocscan serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := newLogger()

		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		configFile := cfgFile
		if configFile == "" {
			if _, statErr := os.Stat("config.yaml"); statErr == nil {
				configFile = "config.yaml"
			} else {
				configFile = filepath.Join(h.Path(), "config.yaml")
			}
		}
		if _, statErr := os.Stat(configFile); os.IsNotExist(statErr) {
			logger.Info("creating default config", "path", configFile)
			if err := config.WriteDefault(configFile); err != nil {
				logger.Warn("failed to write default config", "error", err)
			}
		}
		cfgMgr, err := config.NewManager(configFile)
		if err != nil {
			logger.Warn("config not loaded, using defaults", "error", err)
		} else {
			cfgMgr.WatchConfig()
			logger.Info("configuration loaded", "file", configFile)
		}

		host, port := serveHost, servePort
		if cfgMgr != nil {
			cfg := cfgMgr.Get()
			if !cmd.Flags().Changed("host") && cfg.Server.Host != "" {
				host = cfg.Server.Host
			}
			if !cmd.Flags().Changed("port") && cfg.Server.Port != "" {
				port = cfg.Server.Port
			}
		}

		srv, err := server.New(server.Config{
			Host:   host,
			Port:   port,
			Logger: logger,
			Home:   h,
		})
		if err != nil {
			return err
		}

		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")
}
