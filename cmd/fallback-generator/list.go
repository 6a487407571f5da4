package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"fallback-generator/internal/analyze"
	"fallback-generator/internal/schema"
)

var listSchemaPath string

var listCmd = &cobra.Command{
	Use:   "list [packages...]",
	Short: "List struct types a companion can be derived for",
	Long: `Loads the given package patterns (or the schema's packages when none are
given) and prints every named struct type with its field count.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listSchemaPath, "schema", "fallback.yaml", "Schema to take package patterns from")
}

func runList(cmd *cobra.Command, args []string) error {
	patterns := args
	dir := ""

	if len(patterns) == 0 {
		f, err := schema.LoadFile(listSchemaPath)
		if err != nil {
			return err
		}

		patterns = f.Packages
		dir = filepath.Dir(listSchemaPath)
	}

	analyzer := analyze.NewAnalyzer()

	graph, err := analyzer.LoadPackagesIn(dir, patterns...)
	if err != nil {
		return err
	}

	var pkgPaths []string
	for pkgPath := range graph.Packages {
		pkgPaths = append(pkgPaths, pkgPath)
	}

	sort.Strings(pkgPaths)

	for _, pkgPath := range pkgPaths {
		pkgInfo := graph.Packages[pkgPath]
		if len(pkgInfo.Structs) == 0 {
			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", pkgPath)

		for _, id := range pkgInfo.Structs {
			info := graph.GetStruct(id)
			fmt.Fprintf(cmd.OutOrStdout(), "  %s (%d fields)\n", id.Name, len(info.Fields))
		}
	}

	return nil
}
