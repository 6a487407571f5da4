package schema

import (
	"strings"

	"fallback-generator/internal/common"
	"fallback-generator/internal/diagnostic"
)

// SupportedVersion is the only schema version this tool understands.
const SupportedVersion = "1"

// Validate checks a parsed schema for structural problems before any
// package is loaded. It never touches the filesystem.
func Validate(f *File) *diagnostic.Diagnostics {
	ds := &diagnostic.Diagnostics{}

	if f.Version != SupportedVersion {
		ds.Errorf("unsupported-version", "",
			"schema version %q is not supported (want %q)", f.Version, SupportedVersion)
	}

	if common.IsEmpty(f.Packages) {
		ds.Errorf("no-packages", "", "schema must list at least one package pattern")
	}

	if common.IsEmpty(f.Derive) {
		ds.Errorf("no-types", "", "schema must list at least one type to derive")
	}

	seen := make(map[string]bool, len(f.Derive))

	for _, d := range f.Derive {
		if d.Type == "" {
			ds.Errorf("empty-type", "", "derive entry has an empty type reference")
			continue
		}

		if seen[d.Type] {
			ds.Errorf("duplicate-type", d.Type, "type is listed more than once")
		}

		seen[d.Type] = true
	}

	if !strings.HasSuffix(f.Output.Filename, ".go") {
		ds.Errorf("bad-filename", "",
			"output filename %q must end with .go", f.Output.Filename)
	}

	return ds
}
