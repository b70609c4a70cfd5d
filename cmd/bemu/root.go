package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/reoring/bemu/catalog"
	"github.com/reoring/bemu/i18n"
)

// app carries the state shared by every subcommand.
type app struct {
	// Global flags
	verbose     bool
	catalogPath string
	lang        string

	cat    catalog.Catalog
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cat: catalog.Default(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "bemu",
		Short: "Inspect and synthesize emulated market and reference data elements",
		Long: `bemu works with the element trees returned by the emulated market,
reference and historical data services.

It prints JSON or YAML fixtures in the element text format, resolves
elements by JSON Pointer, and synthesizes the exception collections the
services return for unknown fields.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "Error catalog file (.yaml, .yml or .toml)")
	root.PersistentFlags().StringVar(&a.lang, "lang", "en", "Message language (en or ja)")

	root.AddCommand(newPrintCmd(a))
	root.AddCommand(newGetCmd(a))
	root.AddCommand(newExceptionsCmd(a))
	return root
}

func (a *app) setup() error {
	config := zap.NewProductionConfig()
	if a.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	switch a.lang {
	case "en", "ja":
		i18n.SetLanguage(a.lang)
	default:
		return fmt.Errorf("unsupported language %q (want en or ja)", a.lang)
	}

	if a.catalogPath != "" {
		c, err := catalog.Load(a.catalogPath)
		if err != nil {
			return err
		}
		a.cat = c
		a.logger.Debug("Catalog loaded", zap.String("path", a.catalogPath))
	}
	return nil
}
