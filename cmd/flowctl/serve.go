package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/trustnet/flowengine/config"
	"github.com/trustnet/flowengine/httpapi"
	"github.com/trustnet/flowengine/logging"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON flow API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			logger := logging.Init(cfg.Log)
			srv := httpapi.NewServer(logger)

			logger.Info("listening", "addr", cfg.HTTP.ListenAddr)
			if err := http.ListenAndServe(cfg.HTTP.ListenAddr, srv); err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file (optional; FLOWENGINE_ env vars always apply)")
	return cmd
}
