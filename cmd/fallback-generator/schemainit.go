package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fallback-generator/internal/schema"
)

var (
	initSchemaPath string
	initPackages   []string
	initForce      bool
)

var initCmd = &cobra.Command{
	Use:   "init [types...]",
	Short: "Write a starter schema file",
	Long: `Writes a schema file with the given package patterns and one derive
entry per type argument, ready for fallback-generator gen.

Examples:
  fallback-generator init User Profile
  fallback-generator init --package ./api --schema api/fallback.yaml User`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initSchemaPath, "schema", "fallback.yaml", "Path of the schema file to write")
	initCmd.Flags().StringSliceVar(&initPackages, "package", []string{"."}, "Package patterns the schema loads")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing schema file")
}

func runInit(cmd *cobra.Command, args []string) error {
	if !initForce {
		if _, err := os.Stat(initSchemaPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", initSchemaPath)
		}
	}

	f := &schema.File{
		Version:  schema.SupportedVersion,
		Packages: initPackages,
		Output:   schema.OutputDef{Filename: schema.DefaultFilename},
	}

	for _, ref := range args {
		f.Derive = append(f.Derive, schema.TypeDef{Type: ref})
	}

	if err := schema.WriteFile(f, initSchemaPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", initSchemaPath)

	return nil
}
