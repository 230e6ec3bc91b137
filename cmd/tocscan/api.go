package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/tocscan/internal/api"
	"github.com/jackzampolin/tocscan/internal/server/endpoints"
)

var serverURL string

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	registry := api.NewRegistry()
	for _, ep := range endpoints.All() {
		registry.Register(ep)
	}

	apiCmd := registry.BuildCommands(getServerURL)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://127.0.0.1:8080", "tocscan server URL",
	)

	rootCmd.AddCommand(apiCmd)
}
