package analyze

import (
	"go/types"
	"reflect"
)

// TypeID uniquely identifies a struct type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "fallback-generator/examples/basic"
	Name    string // e.g., "User"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// StructInfo describes a named struct type eligible for derivation.
type StructInfo struct {
	ID     TypeID
	Fields []FieldInfo
	// Named is the original go/types object, kept for rendering field
	// type expressions with correct package qualifiers.
	Named *types.Named
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     types.Type        // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// Graph holds all analyzed struct types from loaded packages.
type Graph struct {
	// Structs maps TypeID to StructInfo for all named struct types.
	Structs map[TypeID]*StructInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		Structs:  make(map[TypeID]*StructInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetStruct returns the StructInfo for a given TypeID, or nil if not found.
func (g *Graph) GetStruct(id TypeID) *StructInfo {
	return g.Structs[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path    string   // Import path
	Name    string   // Package name
	Dir     string   // Directory holding the package's source files
	Structs []TypeID // Named struct types defined in this package
}
