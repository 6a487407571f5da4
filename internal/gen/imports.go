package gen

import (
	"fmt"
	"sort"

	"fallback-generator/internal/common"
)

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// qualifier returns the selector prefix the import is used under.
func (i importSpec) qualifier() string {
	if i.Alias != "" {
		return i.Alias
	}

	return common.PkgAlias(i.Path)
}

// importSet assigns each imported package a unique qualifier within one
// generated file. The runtime packages are registered first, so the
// template's hardcoded "fallback." and "option." selectors always refer
// to them; a source package that imports another package by one of
// those names sees it aliased instead.
type importSet struct {
	contextPkgPath string
	byPath         map[string]importSpec
	owners         map[string]string // qualifier -> import path
}

func newImportSet(contextPkgPath string) *importSet {
	return &importSet{
		contextPkgPath: contextPkgPath,
		byPath:         make(map[string]importSpec),
		owners:         make(map[string]string),
	}
}

// qualifier registers pkgPath on first use and returns the selector
// prefix for it. The context package gets no qualifier. When two
// packages share a name, later ones get a numbered alias (util,
// util2, ...).
func (s *importSet) qualifier(pkgPath, pkgName string) string {
	if pkgPath == "" || pkgPath == s.contextPkgPath {
		return ""
	}

	if imp, ok := s.byPath[pkgPath]; ok {
		return imp.qualifier()
	}

	if pkgName == "" {
		pkgName = common.PkgAlias(pkgPath)
	}

	qual := pkgName
	for n := 2; ; n++ {
		if _, taken := s.owners[qual]; !taken {
			break
		}

		qual = fmt.Sprintf("%s%d", pkgName, n)
	}

	s.owners[qual] = pkgPath

	imp := importSpec{Path: pkgPath}
	if qual != common.PkgAlias(pkgPath) {
		imp.Alias = qual
	}

	s.byPath[pkgPath] = imp

	return qual
}

// sorted returns the registered imports ordered by import path.
func (s *importSet) sorted() []importSpec {
	imps := make([]importSpec, 0, len(s.byPath))
	for _, imp := range s.byPath {
		imps = append(imps, imp)
	}

	sort.Slice(imps, func(i, j int) bool { return imps[i].Path < imps[j].Path })

	return imps
}
