package main

import (
	"github.com/spf13/cobra"

	"github.com/a3tai/pdf-quiz/internal/config"
	"github.com/a3tai/pdf-quiz/internal/logger"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pdf-quiz",
		Short: "Extract quiz questions from PDFs and practice them",
		Long: "pdf-quiz finds multiple-choice and fill-in-the-blank questions in the text of a PDF,\n" +
			"saves them as a JSON question list and runs interactive practice sessions over it.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.DefineGlobalFlags(root.PersistentFlags())

	root.AddCommand(newExtractCmd())
	root.AddCommand(newQuizCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// loadConfig reads the configuration for cmd and builds its logger
func loadConfig(cmd *cobra.Command) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	if version != "dev" {
		cfg.Version = version
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if cfg.IsDebug() {
		log.Debug("configuration loaded", "command", cmd.Name(), "config", cfg.String())
	}
	return cfg, log, nil
}
