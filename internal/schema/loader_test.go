package schema

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
version: "1"
packages:
  - ./examples/basic
derive:
  - type: basic.User
  - type: Profile
    companion: ProfileOverlay
    func: OverlayOf
output:
  filename: companions_gen.go
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, []string{"./examples/basic"}, f.Packages)
	require.Len(t, f.Derive, 2)
	assert.Equal(t, "basic.User", f.Derive[0].Type)
	assert.Equal(t, "ProfileOverlay", f.Derive[1].Companion)
	assert.Equal(t, "OverlayOf", f.Derive[1].Func)
	assert.Equal(t, "companions_gen.go", f.Output.Filename)
}

func TestParse_Defaults(t *testing.T) {
	f, err := Parse([]byte("packages: [./x]\nderive: [{type: User}]\n"))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, DefaultFilename, f.Output.Filename)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("derive: {not: [a, list"))
	assert.Error(t, err)
}

func TestTypeDef_Names(t *testing.T) {
	d := TypeDef{Type: "basic.User"}
	assert.Equal(t, "UserFallback", d.CompanionName("User"))
	assert.Equal(t, "UserFallbackOf", d.FuncName("User"))

	d = TypeDef{Type: "Profile", Companion: "ProfileOverlay"}
	assert.Equal(t, "ProfileOverlay", d.CompanionName("Profile"))
	assert.Equal(t, "ProfileOverlayOf", d.FuncName("Profile"))

	d = TypeDef{Type: "Profile", Func: "DeriveProfile"}
	assert.Equal(t, "DeriveProfile", d.FuncName("Profile"))
}

func TestMarshal_Roundtrip(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	data, err := Marshal(f)
	require.NoError(t, err)

	f2, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, f, f2)
}

func TestWriteFile_Roundtrip(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "fallback.yaml")
	require.NoError(t, WriteFile(f, path))

	f2, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, f2)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
