package common

import "path"

// UnknownStr is used when a value cannot be resolved to a name.
const UnknownStr = "unknown"

// Import paths of the runtime packages that generated companions
// depend on.
const (
	RuntimePkgPath = "fallback-generator/fallback"
	OptionPkgPath  = "fallback-generator/option"
)

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}
