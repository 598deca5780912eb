package cmd

import (
	"fmt"
	"os"

	"github.com/Mohsinsiddi/w3account/internal/config"
	"github.com/Mohsinsiddi/w3account/internal/logx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/Mohsinsiddi/w3account/cmd.Version=1.2.3" .
var Version = "0.1.0"

var (
	cfgDir  string
	cfg     *config.Config
	log     = zap.NewNop()
	verbose bool
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "w3account",
	Short: "Wallet account settings from the terminal",
	Long: `w3account — inspect and drive the account settings of a connected wallet.

  Pick the active network and connector, configure which account types
  the embedded wallet may use per namespace, and see whether the
  "switch preferred account type" toggle is offered, and why.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		log, err = logx.New(verbose)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		log.Debug("config loaded", zap.String("dir", cfg.Dir()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// W3ACCOUNT_CONFIG_DIR env var overrides the --config default.
	if envDir := os.Getenv("W3ACCOUNT_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.w3account)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		settingsCmd,
		toggleCmd,
		networkCmd,
		connectorCmd,
		configCmd,
	)
}
