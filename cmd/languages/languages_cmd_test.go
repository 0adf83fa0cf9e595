package languages

import (
	"bytes"
	"testing"
)

func TestLanguagesCommand_PrintsSupportedLanguagesAndExtensions(t *testing.T) {
	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute() error = %v", err)
	}

	expected := `Java (.java)
JavaScript (.js, .mjs, .cjs, .jsx)
JSON (.json)
Python (.py)
TypeScript (.ts, .tsx)
`

	if out.String() != expected {
		t.Fatalf("output = %q, want %q", out.String(), expected)
	}
}
