package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basicPkg = "fallback-generator/examples/basic"

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer := NewAnalyzer()

	graph, err := analyzer.LoadPackages(basicPkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	assert.Contains(t, graph.Packages, basicPkg)
	assert.NotEmpty(t, graph.Packages[basicPkg].Dir)

	userID := TypeID{PkgPath: basicPkg, Name: "User"}
	assert.Contains(t, graph.Structs, userID)

	profileID := TypeID{PkgPath: basicPkg, Name: "Profile"}
	assert.Contains(t, graph.Structs, profileID)
}

func TestAnalyzer_UserFields(t *testing.T) {
	analyzer := NewAnalyzer()

	graph, err := analyzer.LoadPackages(basicPkg)
	require.NoError(t, err)

	user := graph.GetStruct(TypeID{PkgPath: basicPkg, Name: "User"})
	require.NotNil(t, user)

	names := make([]string, 0, len(user.Fields))
	for _, f := range user.Fields {
		names = append(names, f.Name)
	}

	// Field order must be preserved; derivation is structure-preserving.
	assert.Equal(t, []string{"ID", "Email", "Name", "CreatedAt", "Active"}, names)

	assert.Equal(t, "int64", user.Fields[0].Type.String())
	assert.Equal(t, "id", user.Fields[0].Tag.Get("json"))
}

func TestAnalyzer_GetStruct_NotFound(t *testing.T) {
	analyzer := NewAnalyzer()

	_, err := analyzer.LoadPackages(basicPkg)
	require.NoError(t, err)

	_, err = analyzer.GetStruct(basicPkg, "Nope")
	assert.Error(t, err)
}

func TestAnalyzer_Resolve(t *testing.T) {
	analyzer := NewAnalyzer()

	_, err := analyzer.LoadPackages(basicPkg)
	require.NoError(t, err)

	info, err := analyzer.Resolve("User")
	require.NoError(t, err)
	assert.Equal(t, "User", info.ID.Name)

	info, err = analyzer.Resolve("basic.Profile")
	require.NoError(t, err)
	assert.Equal(t, "Profile", info.ID.Name)

	_, err = analyzer.Resolve("basic.Missing")
	assert.Error(t, err)

	_, err = analyzer.Resolve("wrongpkg.User")
	assert.Error(t, err)
}

func TestAnalyzer_LoadPackages_BadPattern(t *testing.T) {
	analyzer := NewAnalyzer()

	_, err := analyzer.LoadPackages("fallback-generator/does/not/exist")
	assert.Error(t, err)
}
