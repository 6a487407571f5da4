package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fallback-generator/internal/analyze"
	"fallback-generator/internal/schema"
)

const basicPkg = "fallback-generator/examples/basic"

func loadBasic(t *testing.T) *analyze.Analyzer {
	t.Helper()

	analyzer := analyze.NewAnalyzer()
	_, err := analyzer.LoadPackages(basicPkg)
	require.NoError(t, err)

	return analyzer
}

func TestResolve_Defaults(t *testing.T) {
	analyzer := loadBasic(t)

	f := &schema.File{
		Version:  "1",
		Packages: []string{basicPkg},
		Derive:   []schema.TypeDef{{Type: "basic.User"}},
		Output:   schema.OutputDef{Filename: schema.DefaultFilename},
	}

	p, ds := Resolve(analyzer, f)
	require.False(t, ds.HasErrors(), "diagnostics: %v", ds.All())
	require.Len(t, p.Targets, 1)

	target := p.Targets[0]
	assert.Equal(t, "User", target.Struct.ID.Name)
	assert.Equal(t, "UserFallback", target.Companion)
	assert.Equal(t, "UserFallbackOf", target.Func)
}

func TestResolve_NameOverrides(t *testing.T) {
	analyzer := loadBasic(t)

	f := &schema.File{
		Version:  "1",
		Packages: []string{basicPkg},
		Derive: []schema.TypeDef{
			{Type: "basic.Profile", Companion: "ProfileOverlay", Func: "OverlayOf"},
		},
		Output: schema.OutputDef{Filename: schema.DefaultFilename},
	}

	p, ds := Resolve(analyzer, f)
	require.False(t, ds.HasErrors())
	require.Len(t, p.Targets, 1)
	assert.Equal(t, "ProfileOverlay", p.Targets[0].Companion)
	assert.Equal(t, "OverlayOf", p.Targets[0].Func)
}

func TestResolve_TypeNotFound(t *testing.T) {
	analyzer := loadBasic(t)

	f := &schema.File{
		Version:  "1",
		Packages: []string{basicPkg},
		Derive:   []schema.TypeDef{{Type: "basic.Missing"}},
		Output:   schema.OutputDef{Filename: schema.DefaultFilename},
	}

	p, ds := Resolve(analyzer, f)
	assert.True(t, ds.HasErrors())
	assert.Empty(t, p.Targets)
}

func TestResolve_NoFieldsWarns(t *testing.T) {
	analyzer := loadBasic(t)

	f := &schema.File{
		Version:  "1",
		Packages: []string{basicPkg},
		Derive:   []schema.TypeDef{{Type: "basic.Empty"}},
		Output:   schema.OutputDef{Filename: schema.DefaultFilename},
	}

	p, ds := Resolve(analyzer, f)
	require.False(t, ds.HasErrors())

	// A field-less struct still derives, with a warning.
	require.Len(t, ds.Warnings, 1)
	assert.Equal(t, "no-fields", ds.Warnings[0].Code)
	assert.Len(t, p.Targets, 1)
}

func TestResolve_CompanionCollision(t *testing.T) {
	analyzer := loadBasic(t)

	f := &schema.File{
		Version:  "1",
		Packages: []string{basicPkg},
		Derive: []schema.TypeDef{
			{Type: "basic.User"},
			{Type: "basic.Profile", Companion: "UserFallback"},
		},
		Output: schema.OutputDef{Filename: schema.DefaultFilename},
	}

	p, ds := Resolve(analyzer, f)
	require.True(t, ds.HasErrors())
	assert.Equal(t, "companion-collision", ds.Errors[0].Code)
	assert.Len(t, p.Targets, 1)
}

func TestResolve_RegeneratedCompanionIsNotACollision(t *testing.T) {
	// examples/basic already holds checked-in companions; deriving the
	// same types again must not warn about them.
	analyzer := loadBasic(t)

	f := &schema.File{
		Version:  "1",
		Packages: []string{basicPkg},
		Derive: []schema.TypeDef{
			{Type: "basic.User"},
			{Type: "basic.Profile"},
		},
		Output: schema.OutputDef{Filename: schema.DefaultFilename},
	}

	p, ds := Resolve(analyzer, f)
	require.False(t, ds.HasErrors())
	assert.Empty(t, ds.Warnings)
	assert.Len(t, p.Targets, 2)
}
