package plan

import (
	"go/types"

	"fallback-generator/internal/analyze"
	"fallback-generator/internal/common"
	"fallback-generator/internal/diagnostic"
	"fallback-generator/internal/schema"
)

// DeriveTarget is one struct type resolved against the loaded packages,
// with its effective companion and function names.
type DeriveTarget struct {
	Struct    *analyze.StructInfo
	Companion string
	Func      string
}

// Plan is the fully resolved derivation plan handed to the generator.
type Plan struct {
	Graph   *analyze.Graph
	Targets []DeriveTarget
}

// Resolve maps the schema's derive entries onto loaded struct types and
// applies naming defaults. Resolution problems are reported as
// diagnostics; a plan with errors must not be generated from.
func Resolve(a *analyze.Analyzer, f *schema.File) (*Plan, *diagnostic.Diagnostics) {
	ds := schema.Validate(f)

	p := &Plan{Graph: a.Graph()}

	// Companion names must be unique per package, and must not collide
	// with a type that already exists there.
	taken := make(map[analyze.TypeID]string)

	for _, def := range f.Derive {
		info, err := a.Resolve(def.Type)
		if err != nil {
			ds.Errorf("type-not-found", def.Type, "%v", err)
			continue
		}

		target := DeriveTarget{
			Struct:    info,
			Companion: def.CompanionName(info.ID.Name),
			Func:      def.FuncName(info.ID.Name),
		}

		companionID := analyze.TypeID{PkgPath: info.ID.PkgPath, Name: target.Companion}

		if prev, ok := taken[companionID]; ok {
			ds.Errorf("companion-collision", def.Type,
				"companion name %s already used for %s", target.Companion, prev)
			continue
		}

		// A pre-existing struct with the companion's name is fine when it
		// is the previously generated companion itself; anything else in
		// the package scope would clash on regeneration.
		if existing := p.Graph.GetStruct(companionID); existing != nil && !isCompanionShape(existing) {
			ds.Warnf("companion-exists", def.Type,
				"type %s already exists in %s and will be shadowed by the generated file",
				target.Companion, info.ID.PkgPath)
		}

		if len(info.Fields) == 0 {
			ds.Warnf("no-fields", def.Type, "struct has no fields; companion will be empty")
		}

		taken[companionID] = def.Type
		p.Targets = append(p.Targets, target)
	}

	return p, ds
}

// isCompanionShape reports whether every field of the struct is a
// fallback pair, which is what a previously generated companion looks
// like.
func isCompanionShape(info *analyze.StructInfo) bool {
	if len(info.Fields) == 0 {
		return false
	}

	for _, f := range info.Fields {
		named, ok := f.Type.(*types.Named)
		if !ok {
			return false
		}

		obj := named.Obj()
		if obj.Name() != "Fallback" || obj.Pkg() == nil || obj.Pkg().Path() != common.RuntimePkgPath {
			return false
		}
	}

	return true
}
