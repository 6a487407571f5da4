// Package schema provides YAML schema definitions, parsing, and
// validation for fallback companion derivation.
//
// The schema pins which struct types get a companion, so regeneration
// is deterministic and reviewable. A minimal file looks like:
//
//	version: "1"
//	packages:
//	  - ./examples/basic
//	derive:
//	  - type: basic.User
//	  - type: Profile
//	    companion: ProfileOverlay
//	output:
//	  filename: fallback_gen.go
//
// Type references are either bare names, which must be unique among the
// loaded packages, or qualified by package name. Companion and function
// names default to "<Type>Fallback" and "<Type>FallbackOf" and can be
// overridden per type.
package schema
