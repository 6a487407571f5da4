package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fallback-generator/internal/analyze"
	"fallback-generator/internal/diagnostic"
	"fallback-generator/internal/gen"
	"fallback-generator/internal/plan"
	"fallback-generator/internal/schema"
)

var (
	genSchemaPath string
	genDryRun     bool
	genNoComments bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate fallback companions from a schema file",
	Long: `Loads the packages named in the schema, resolves each derive entry to a
struct type, and writes one generated file per source package.

Examples:
  fallback-generator gen
  fallback-generator gen --schema ./fallback.yaml --dry-run`,
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringVar(&genSchemaPath, "schema", "fallback.yaml", "Path to the derivation schema")
	genCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "Print generated files instead of writing them")
	genCmd.Flags().BoolVar(&genNoComments, "no-comments", false, "Omit explanatory comments from generated code")
}

func runGen(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	f, err := schema.LoadFile(genSchemaPath)
	if err != nil {
		return err
	}

	// Relative package patterns resolve against the schema file, not
	// the working directory.
	analyzer := analyze.NewAnalyzer()
	if _, err := analyzer.LoadPackagesIn(filepath.Dir(genSchemaPath), f.Packages...); err != nil {
		return err
	}

	p, ds := plan.Resolve(analyzer, f)
	logDiagnostics(logger, ds)

	if ds.HasErrors() {
		return fmt.Errorf("schema resolution failed with %d error(s)", len(ds.Errors))
	}

	g := gen.NewGenerator(gen.Config{
		Filename:         f.Output.Filename,
		GenerateComments: !genNoComments,
	})

	files, err := g.Generate(p)
	if err != nil {
		return err
	}

	if genDryRun {
		for _, file := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "--- %s\n%s\n",
				filepath.Join(file.Dir, file.Filename), file.Content)
		}

		return nil
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}

	logger.Info("generation complete",
		zap.Int("types", len(p.Targets)),
		zap.Int("files", len(files)))

	return nil
}

func logDiagnostics(logger *zap.Logger, ds *diagnostic.Diagnostics) {
	for _, d := range ds.All() {
		switch d.Severity {
		case diagnostic.SeverityError:
			logger.Error(d.String())
		case diagnostic.SeverityWarning:
			logger.Warn(d.String())
		default:
			logger.Info(d.String())
		}
	}
}
