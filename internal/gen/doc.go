// Package gen renders companion types and conversion functions from a
// resolved derivation plan.
//
// Generation uses text/template + go/format for readable, deterministic
// Go code. For a struct R with fields f1..fn, the generated file holds:
//
//   - type RFallback struct { f1 fallback.Fallback[T1]; ... }
//   - func RFallbackOf(f fallback.Fallback[R]) RFallback
//
// The conversion is purely structural: it unzips the outer pair,
// extracts per-field contributions (an absent record contributes an
// absent slot to every field), and assembles the companion without ever
// inspecting field values. Files are written into the source package's
// directory so unexported fields stay reachable.
package gen
