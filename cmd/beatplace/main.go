package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"beatplace/internal/config"
)

var (
	logger *zap.Logger

	configFile string
	verbose    bool
	flags      config.Flags
)

var rootCmd = &cobra.Command{
	Use:   "beatplace",
	Short: "Resolve beatmap object placements, mirrors and event tracks",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (.json or .yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.ObjectsFile, "objects", "", "Objects file (default: from config)")
	rootCmd.PersistentFlags().StringVar(&flags.OutputDir, "output", "", "Output directory (default: ./placements)")

	rootCmd.AddCommand(placeCmd, mirrorCmd, tracksCmd)
}

// loadConfig reads the optional config file and applies CLI overrides.
func loadConfig() (config.Config, error) {
	var cfg config.Config
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return config.Config{}, err
		}
	}
	cfg.Resolve(flags)
	if err := cfg.GridConfig().Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
