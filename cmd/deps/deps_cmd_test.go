package deps

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}
}

func canonicalPath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("filepath.EvalSymlinks() error = %v", err)
	}
	return resolved
}

func TestDepsCommand_ListsDepthTaggedClosure(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.py")
	bPath := filepath.Join(dir, "b.py")
	writeFile(t, aPath, "import b\n")
	writeFile(t, bPath, "x = 1\n")

	cmd := NewCommand()
	cmd.SetArgs([]string{aPath, "-r", dir})

	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute() error = %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "[0] "+canonicalPath(t, aPath)) {
		t.Fatalf("expected depth-0 entry for a.py, got:\n%s", output)
	}
	if !strings.Contains(output, "[1] "+canonicalPath(t, bPath)) {
		t.Fatalf("expected depth-1 entry for b.py, got:\n%s", output)
	}
}

func TestDepsCommand_PrintsEdges(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.py")
	bPath := filepath.Join(dir, "b.py")
	writeFile(t, aPath, "import b\n")
	writeFile(t, bPath, "x = 1\n")

	cmd := NewCommand()
	cmd.SetArgs([]string{aPath, "-r", dir, "--edges"})

	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute() error = %v", err)
	}

	edge := canonicalPath(t, aPath) + " -> " + canonicalPath(t, bPath)
	if !strings.Contains(out.String(), edge) {
		t.Fatalf("expected edge %q, got:\n%s", edge, out.String())
	}
}

func TestDepsCommand_ReportsCycles(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.py")
	bPath := filepath.Join(dir, "b.py")
	writeFile(t, aPath, "import b\n")
	writeFile(t, bPath, "import a\n")

	cmd := NewCommand()
	cmd.SetArgs([]string{aPath, "-r", dir, "--cycles"})

	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute() error = %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "cycle: ") {
		t.Fatalf("expected a cycle report, got:\n%s", output)
	}
	if !strings.Contains(output, canonicalPath(t, aPath)+" <-> "+canonicalPath(t, bPath)) {
		t.Fatalf("expected both cycle members in sorted order, got:\n%s", output)
	}
}

func TestDepsCommand_ReportsNoCycles(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.py")
	writeFile(t, aPath, "x = 1\n")

	cmd := NewCommand()
	cmd.SetArgs([]string{aPath, "--cycles"})

	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute() error = %v", err)
	}

	if !strings.Contains(out.String(), "No dependency cycles.") {
		t.Fatalf("expected no-cycles message, got:\n%s", out.String())
	}
}
