package analyze

import (
	"fmt"
	"go/types"
	"path/filepath"
	"reflect"
	"strings"

	"golang.org/x/tools/go/packages"

	"fallback-generator/internal/common"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and collects their named struct types.
type Analyzer struct {
	graph *Graph
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{graph: NewGraph()}
}

// LoadPackages loads the specified packages and collects struct types.
// Patterns are standard Go package patterns (e.g., "./examples/basic",
// "fallback-generator/examples/basic").
func (a *Analyzer) LoadPackages(patterns ...string) (*Graph, error) {
	return a.LoadPackagesIn("", patterns...)
}

// LoadPackagesIn is LoadPackages with relative patterns resolved
// against dir instead of the working directory. Schema-driven loads
// use the schema file's directory so a schema behaves the same no
// matter where the tool runs from.
func (a *Analyzer) LoadPackagesIn(dir string, patterns ...string) (*Graph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.graph, nil
}

// Graph returns the current graph.
func (a *Analyzer) Graph() *Graph {
	return a.graph
}

// processPackage extracts named struct types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	if len(pkg.GoFiles) > 0 {
		pkgInfo.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		// Only process type names (not variables, constants, functions)
		typeName, ok := obj.(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			continue
		}

		info := &StructInfo{
			ID:    TypeID{PkgPath: pkg.PkgPath, Name: name},
			Named: named,
		}
		collectFields(st, info)

		a.graph.Structs[info.ID] = info
		pkgInfo.Structs = append(pkgInfo.Structs, info.ID)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo
}

// collectFields extracts fields from a struct type.
func collectFields(st *types.Struct, info *StructInfo) {
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		info.Fields = append(info.Fields, FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Type:     field.Type(),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
		})
	}
}

// GetStruct returns the StructInfo for a named struct by its fully
// qualified name.
func (a *Analyzer) GetStruct(pkgPath, typeName string) (*StructInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: typeName}

	info := a.graph.GetStruct(id)
	if info == nil {
		return nil, fmt.Errorf("struct %s not found", id)
	}

	return info, nil
}

// Resolve finds a struct by reference. A reference is either a bare type
// name ("User"), which must be unique among the loaded packages, or a
// qualified "pkgname.User" form, where pkgname is the package name or
// the last element of its import path.
func (a *Analyzer) Resolve(ref string) (*StructInfo, error) {
	pkgRef, name, qualified := strings.Cut(ref, ".")
	if !qualified {
		name = ref
		pkgRef = ""
	}

	var found []*StructInfo

	for _, pkgInfo := range a.graph.Packages {
		if qualified && pkgInfo.Name != pkgRef && filepath.Base(pkgInfo.Path) != pkgRef {
			continue
		}

		id := TypeID{PkgPath: pkgInfo.Path, Name: name}
		if info := a.graph.GetStruct(id); info != nil {
			found = append(found, info)
		}
	}

	switch {
	case common.IsEmpty(found):
		return nil, fmt.Errorf("struct %q not found in loaded packages", ref)
	case common.IsSingle(found):
		info, _ := common.First(found)
		return info, nil
	default:
		ids := make([]string, 0, len(found))
		for _, info := range found {
			ids = append(ids, info.ID.String())
		}

		return nil, fmt.Errorf("struct %q is ambiguous: matches %s", ref, strings.Join(ids, ", "))
	}
}
