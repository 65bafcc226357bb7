package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/triage/internal/config"
	"github.com/abhisek/triage/internal/logging"
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

// newRootCmd builds the command tree. Every call returns fresh flag state.
func newRootCmd() *cobra.Command {
	cfg := config.Default()

	root := &cobra.Command{
		Use:   "triage",
		Short: "Insomnia checklist and symptom checker (demo, no medical advice)",
		Long: "Triage: terminal app with a guided insomnia checklist (acute and chronic\n" +
			"pathways) and a symptom checker that ranks common conditions.\n\n" +
			"This is a demonstration. Weights, thresholds and texts are illustrative\n" +
			"and do not constitute medical advice.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return resolveConfig(cmd, &cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			skip, _ := cmd.Flags().GetBool("skip-disclaimer")
			return runApp(cfg, skip)
		},
	}

	root.PersistentFlags().String("catalog", "", "Path to a YAML or JSON condition catalog (overrides "+config.EnvCatalog+")")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides "+config.EnvLogLevel+")")
	root.Flags().Bool("skip-disclaimer", false, "Start at the home screen")

	root.AddCommand(newRankCmd(&cfg))
	root.AddCommand(newCatalogCmd(&cfg))
	root.AddCommand(newChecklistCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// resolveConfig layers flags (highest priority) over environment variables
// and defaults, validates the result and installs the logger.
func resolveConfig(cmd *cobra.Command, cfg *config.Config) error {
	*cfg = config.FromEnv()
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		cfg.CatalogPath = p
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		cfg.LogLevel = l
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logging.SetDefaultCLILogger(cfg.LogLevel)
	return nil
}
