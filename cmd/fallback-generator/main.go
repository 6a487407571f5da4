// Package main provides the CLI entrypoint for fallback-generator.
//
// fallback-generator is a codegen tool that:
//   - Parses Go packages (go/types) to find the structs named in a YAML schema
//   - Derives a companion type per struct with every field wrapped in a fallback pair
//   - Generates the conversion function that splits a pair of records field-wise
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "fallback-generator",
	Short: "Derive per-field fallback companion types for Go structs",
	Long: `fallback-generator derives, for each struct named in a YAML schema,
a companion type whose fields are all wrapped in fallback.Fallback, plus
a conversion function from a fallback pair of records to the companion.

Generated files are written into each source package's directory, so a
record need not be accepted or rejected wholesale: individual fields can
fall back independently.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(genCmd, listCmd, initCmd)
}

// newLogger builds a console logger; --verbose lowers it to debug.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !flagVerbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	return cfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Stderr.WriteString("error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
