// Package plan resolves a derivation schema against loaded packages
// into concrete generation targets.
//
// Resolution binds each schema entry to a struct, applies companion and
// function naming defaults, and flags collisions before any code is
// generated.
package plan
