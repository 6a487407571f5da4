package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/types"
	"text/template"

	"fallback-generator/internal/analyze"
	"fallback-generator/internal/common"
	"fallback-generator/internal/plan"
)

// Config holds configuration for code generation.
type Config struct {
	// Filename is the name of the generated file written into each
	// source package's directory.
	Filename string
	// GenerateComments enables generation of explanatory comments.
	GenerateComments bool
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		Filename:         "fallback_gen.go",
		GenerateComments: true,
	}
}

// Generator generates companion types and conversion functions from a
// resolved derivation plan.
type Generator struct {
	config Config
	graph  *analyze.Graph
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory the file belongs in (the source package's
	// directory).
	Dir string
	// Filename is the name of the file within Dir.
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate produces one file per source package, each holding the
// companion type and conversion function for every target in that
// package, in plan order.
func (g *Generator) Generate(p *plan.Plan) ([]GeneratedFile, error) {
	g.graph = p.Graph

	grouped := make(map[string][]plan.DeriveTarget)

	var order []string

	for _, target := range p.Targets {
		pkgPath := target.Struct.ID.PkgPath
		if _, seen := grouped[pkgPath]; !seen {
			order = append(order, pkgPath)
		}

		grouped[pkgPath] = append(grouped[pkgPath], target)
	}

	var files []GeneratedFile

	for _, pkgPath := range order {
		file, err := g.generatePackage(pkgPath, grouped[pkgPath])
		if err != nil {
			return nil, fmt.Errorf("generating package %s: %w", pkgPath, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// generatePackage renders the companion file for one source package.
func (g *Generator) generatePackage(pkgPath string, targets []plan.DeriveTarget) (*GeneratedFile, error) {
	pkgInfo, ok := g.graph.Packages[pkgPath]
	if !ok {
		return nil, fmt.Errorf("package %s not in graph", pkgPath)
	}

	imports := newImportSet(pkgPath)
	imports.qualifier(common.RuntimePkgPath, "")

	// The option package only appears in per-field constructors, so a
	// file of empty companions must not import it.
	for _, target := range targets {
		if len(target.Struct.Fields) > 0 {
			imports.qualifier(common.OptionPkgPath, "")
			break
		}
	}

	data := &templateData{
		PackageName:      pkgInfo.Name,
		GenerateComments: g.config.GenerateComments,
	}

	for _, target := range targets {
		data.Types = append(data.Types, g.buildCompanionData(target, imports))
	}

	data.Imports = imports.sorted()

	var buf bytes.Buffer
	if err := companionTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid
		// debugging; the write attempt is intentionally non-fatal.
		if pkgInfo.Dir != "" {
			_ = writeDebugUnformatted(pkgInfo.Dir, g.config.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Dir:      pkgInfo.Dir,
			Filename: g.config.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Dir:      pkgInfo.Dir,
		Filename: g.config.Filename,
		Content:  formatted,
	}, nil
}

// templateData holds all data needed for one generated file.
type templateData struct {
	PackageName      string
	Imports          []importSpec
	Types            []companionData
	GenerateComments bool
}

// companionData describes one companion type and its conversion.
type companionData struct {
	SourceName    string
	CompanionName string
	FuncName      string
	Fields        []fieldData
}

// fieldData is one field of the companion, with its element type
// rendered relative to the generated file's package.
type fieldData struct {
	Name    string
	TypeStr string
}

// buildCompanionData renders field types and collects their imports.
func (g *Generator) buildCompanionData(target plan.DeriveTarget, imports *importSet) companionData {
	data := companionData{
		SourceName:    target.Struct.ID.Name,
		CompanionName: target.Companion,
		FuncName:      target.Func,
	}

	qual := func(other *types.Package) string {
		if other == nil {
			return ""
		}

		return imports.qualifier(other.Path(), other.Name())
	}

	for _, f := range target.Struct.Fields {
		data.Fields = append(data.Fields, fieldData{
			Name:    f.Name,
			TypeStr: types.TypeString(f.Type, qual),
		})
	}

	return data
}

// Template for the companion file.

var companionTemplate = template.Must(template.New("companion").Parse(`// Code generated by fallback-generator. DO NOT EDIT.

package {{.PackageName}}

{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{range .Types}}
{{if $.GenerateComments}}// {{.CompanionName}} pairs every field of {{.SourceName}} with a fallback slot.
{{end}}type {{.CompanionName}} struct {
{{range .Fields}}	{{.Name}} fallback.Fallback[{{.TypeStr}}]
{{end}}}

{{if $.GenerateComments}}// {{.FuncName}} splits a fallback pair of {{.SourceName}} records into
// independent per-field fallback pairs. An absent record contributes
// an absent slot to every field.
{{end}}func {{.FuncName}}(f fallback.Fallback[{{.SourceName}}]) {{.CompanionName}} {
{{- if .Fields}}
	primary, secondary := f.Unzip()
	p, pok := primary.Get()
	s, sok := secondary.Get()

	return {{.CompanionName}}{
{{range .Fields}}		{{.Name}}: fallback.New(option.When(pok, p.{{.Name}}), option.When(sok, s.{{.Name}})),
{{end}}	}
{{- else}}
	return {{.CompanionName}}{}
{{- end}}
}
{{end}}
`))
