// Package analyze provides package loading and struct extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to build an
// in-memory model of the named struct types that fallback companions
// can be derived for.
//
// Key types:
//   - TypeID: package import path + type name
//   - StructInfo: a named struct and its ordered field list
//   - FieldInfo: field name, go/types type, tags, and embedding
package analyze
