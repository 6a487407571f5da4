package schema

// File represents the root of a YAML derivation schema file.
// It names the packages to analyze and the struct types that get a
// fallback companion generated for them.
type File struct {
	// Version of the schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Packages lists Go package patterns to load (e.g., "./examples/basic").
	Packages []string `yaml:"packages"`

	// Derive lists the struct types to derive companions for.
	Derive []TypeDef `yaml:"derive"`

	// Output controls where and how generated files are written.
	Output OutputDef `yaml:"output,omitempty"`
}

// TypeDef selects one struct type for derivation.
type TypeDef struct {
	// Type references the struct, either bare ("User") when unique, or
	// qualified by package name ("basic.User").
	Type string `yaml:"type"`

	// Companion overrides the generated companion type name.
	// Defaults to "<Type>Fallback".
	Companion string `yaml:"companion,omitempty"`

	// Func overrides the generated conversion function name.
	// Defaults to "<Companion>Of".
	Func string `yaml:"func,omitempty"`
}

// OutputDef controls generated file placement.
type OutputDef struct {
	// Filename is the name of the generated file written into each
	// source package's directory. Defaults to "fallback_gen.go".
	Filename string `yaml:"filename,omitempty"`
}

// DefaultFilename is the generated file name when the schema does not
// override it.
const DefaultFilename = "fallback_gen.go"

// CompanionName returns the effective companion type name for a source
// struct name.
func (d TypeDef) CompanionName(structName string) string {
	if d.Companion != "" {
		return d.Companion
	}

	return structName + "Fallback"
}

// FuncName returns the effective conversion function name for a source
// struct name.
func (d TypeDef) FuncName(structName string) string {
	if d.Func != "" {
		return d.Func
	}

	return d.CompanionName(structName) + "Of"
}
