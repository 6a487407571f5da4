package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnostics_Buckets(t *testing.T) {
	ds := &Diagnostics{}

	ds.Errorf("type-not-found", "basic.User", "struct %q not found", "User")
	ds.Warnf("no-fields", "basic.Empty", "struct has no fields")
	ds.Add(Diagnostic{Severity: SeverityInfo, Code: "resolved", Message: "ok"})

	assert.True(t, ds.HasErrors())
	assert.Len(t, ds.Errors, 1)
	assert.Len(t, ds.Warnings, 1)
	assert.Len(t, ds.Infos, 1)

	all := ds.All()
	assert.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Severity: SeverityWarning,
		Code:     "no-fields",
		Type:     "basic.Empty",
		Message:  "struct has no fields",
	}

	assert.Equal(t, "warning [no-fields] basic.Empty: struct has no fields", d.String())

	d.Field = "Name"
	assert.Contains(t, d.String(), "basic.Empty.Name")
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
