package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/server"
)

var (
	serveConfigPath string
	serveListenAddr string
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume analysis and batch screening.`,
	RunE:  runServeCmd,
}

func init() {
	serveCommand.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCommand.Flags().StringVar(&serveListenAddr, "listen-addr", "", "Address to listen on, e.g. :8080 (overrides config file and LISTEN_ADDR)")
	rootCmd.AddCommand(serveCommand)
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(cmd, serveConfigPath, map[string]*string{
		"listen-addr": &serveListenAddr,
	})
	if err != nil {
		return err
	}
	cfg = cfg.MergeWithDefaults(config.Config{ListenAddr: ":8080"})

	if cfg.APIKey == "" {
		return fmt.Errorf("an OpenAI API key is required: set OPENAI_API_KEY or api_key in the config file")
	}

	srv, err := server.New(server.Config{
		ListenAddr:  cfg.ListenAddr,
		DatabaseURL: cfg.DatabaseURL, // optional, history disabled without it
		APIKey:      cfg.APIKey,
		UserEmail:   cfg.UserEmail,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
