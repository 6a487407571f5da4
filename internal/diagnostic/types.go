package diagnostic

import (
	"fmt"
	"strings"

	"fallback-generator/internal/common"
)

// Diagnostics collects everything reported while resolving a derivation
// schema against loaded packages.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic
	// (e.g., "type-not-found", "no-fields").
	Code string
	// Message is the human-readable description.
	Message string
	// Type identifies which derived type this relates to (if any).
	Type string
	// Field identifies which struct field this relates to (if any).
	Field string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// String formats a diagnostic as a single line.
func (d Diagnostic) String() string {
	var sb strings.Builder

	sb.WriteString(d.Severity.String())
	sb.WriteString(" [")
	sb.WriteString(d.Code)
	sb.WriteString("]")

	if d.Type != "" {
		sb.WriteString(" ")
		sb.WriteString(d.Type)

		if d.Field != "" {
			sb.WriteString(".")
			sb.WriteString(d.Field)
		}
	}

	sb.WriteString(": ")
	sb.WriteString(d.Message)

	return sb.String()
}

// Add records a diagnostic in the bucket matching its severity.
func (ds *Diagnostics) Add(d Diagnostic) {
	switch d.Severity {
	case SeverityError:
		ds.Errors = append(ds.Errors, d)
	case SeverityWarning:
		ds.Warnings = append(ds.Warnings, d)
	default:
		ds.Infos = append(ds.Infos, d)
	}
}

// Errorf records an error diagnostic for a derived type.
func (ds *Diagnostics) Errorf(code, typeName, format string, args ...any) {
	ds.Add(Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Type:     typeName,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Warnf records a warning diagnostic for a derived type.
func (ds *Diagnostics) Warnf(code, typeName, format string, args ...any) {
	ds.Add(Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Type:     typeName,
		Message:  fmt.Sprintf(format, args...),
	})
}

// HasErrors reports whether any error diagnostic was recorded.
func (ds *Diagnostics) HasErrors() bool {
	return len(ds.Errors) > 0
}

// All returns every diagnostic, errors first.
func (ds *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(ds.Errors)+len(ds.Warnings)+len(ds.Infos))
	out = append(out, ds.Errors...)
	out = append(out, ds.Warnings...)
	out = append(out, ds.Infos...)

	return out
}
