package main

import (
	"github.com/spf13/cobra"

	"github.com/a3tai/pdf-quiz/internal/config"
	"github.com/a3tai/pdf-quiz/internal/mcp"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the extraction and quiz tools over MCP stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			service, err := mcp.NewService(cfg, log)
			if err != nil {
				return err
			}
			server, err := mcp.NewServer(cfg, service, log)
			if err != nil {
				return err
			}
			return server.Run(cmd.Context())
		},
	}
	config.DefineServeFlags(cmd.Flags())
	return cmd
}
