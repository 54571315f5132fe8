// Package cmd is the goextrude command line.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goextrude/pkg/config"
	"github.com/philipparndt/goextrude/version"
)

var (
	configPath string
	logLevel   string

	// cfg and logger are set up before every subcommand runs
	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "goextrude",
	Short: "Sketch polygons and extrude them into solids",
	Long: `goextrude draws closed polygons on the ground plane and extrudes them
into prism solids. The solids can be moved, reshaped vertex by vertex,
previewed and exported as STL or OpenSCAD.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides the config)")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	name := cfg.LogLevel
	if logLevel != "" {
		name = logLevel
	}
	level, err := config.ParseLevel(name)
	if err != nil {
		return err
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
