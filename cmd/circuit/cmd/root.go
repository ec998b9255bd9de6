package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/OpenCircuitLab/OpenCircuitSim/pkg/circuit"
	"github.com/OpenCircuitLab/OpenCircuitSim/pkg/engine"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	defsDir string
)

var rootCmd = &cobra.Command{
	Use:   "circuit",
	Short: "Virtual breadboard circuit analyzer",
	Long: `Analyze virtual Arduino breadboard circuits described in .ckt files.

Examples:
  circuit validate blink.ckt                 # Check the circuit for defects
  circuit trace blink.ckt --png flow.png     # Trace and render the power path
  circuit nets blink.ckt --kicad out.net     # Export the electrical nets
  circuit parse blink.ckt                    # Dump the parsed description`,
	Version:       "0.3.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&defsDir, "defs", "",
		"directory with extra YAML component definitions")
}

// registry returns the built-in component set plus any user definitions.
func registry() (*circuit.MemoryRegistry, error) {
	reg := circuit.Builtin()
	if defsDir != "" {
		if err := reg.LoadDir(defsDir); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// engineConfig builds the traversal config shared by all subcommands.
func engineConfig() *engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Logger = slog.Default()
	return cfg
}
