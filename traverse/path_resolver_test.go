package traverse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeContextHQ/ccc/traverse/languages/java"
	"github.com/CodeContextHQ/ccc/traverse/languages/javascript"
	"github.com/CodeContextHQ/ccc/traverse/languages/python"
	"github.com/CodeContextHQ/ccc/traverse/languages/typescript"
)

func writeFile(t *testing.T, path string, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func canonical(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}

func TestResolve_RootRelativeDottedPath(t *testing.T) {
	root := t.TempDir()
	target := writeFile(t, filepath.Join(root, "package", "module.py"), "")
	current := writeFile(t, filepath.Join(root, "main.py"), "")

	resolved, ok := Resolve("package.module", current, []string{root}, python.Module{}.Resolution())
	require.True(t, ok)
	assert.Equal(t, canonical(t, target), resolved)
}

func TestResolve_FirstRootWins(t *testing.T) {
	root1 := t.TempDir()
	root2 := t.TempDir()
	winner := writeFile(t, filepath.Join(root1, "util.py"), "")
	writeFile(t, filepath.Join(root2, "util.py"), "")
	current := writeFile(t, filepath.Join(root2, "main.py"), "")

	res := python.Module{}.Resolution()
	for i := 0; i < 10; i++ {
		resolved, ok := Resolve("util", current, []string{root1, root2}, res)
		require.True(t, ok)
		assert.Equal(t, canonical(t, winner), resolved)
	}
}

func TestResolve_LaterRootFallback(t *testing.T) {
	root1 := t.TempDir()
	root2 := t.TempDir()
	target := writeFile(t, filepath.Join(root2, "com", "example", "Util.java"), "")
	current := writeFile(t, filepath.Join(root1, "Main.java"), "")

	resolved, ok := Resolve("com.example.Util", current, []string{root1, root2}, java.Module{}.Resolution())
	require.True(t, ok)
	assert.Equal(t, canonical(t, target), resolved)
}

func TestResolve_RelativeImportAgainstCurrentFile(t *testing.T) {
	root := t.TempDir()
	target := writeFile(t, filepath.Join(root, "src", "utils.js"), "")
	current := writeFile(t, filepath.Join(root, "src", "app.js"), "")

	resolved, ok := Resolve("./utils", current, nil, javascript.Module{}.Resolution())
	require.True(t, ok)
	assert.Equal(t, canonical(t, target), resolved)
}

func TestResolve_ParentRelativeImport(t *testing.T) {
	root := t.TempDir()
	target := writeFile(t, filepath.Join(root, "shared", "base.ts"), "")
	current := writeFile(t, filepath.Join(root, "feature", "view.ts"), "")

	resolved, ok := Resolve("../shared/base", current, nil, typescript.Module{}.Resolution())
	require.True(t, ok)
	assert.Equal(t, canonical(t, target), resolved)
}

func TestResolve_PythonDotRelativePackage(t *testing.T) {
	root := t.TempDir()
	target := writeFile(t, filepath.Join(root, "pkg", "sibling.py"), "")
	current := writeFile(t, filepath.Join(root, "pkg", "main.py"), "")

	resolved, ok := Resolve(".sibling", current, []string{root}, python.Module{}.Resolution())
	require.True(t, ok)
	assert.Equal(t, canonical(t, target), resolved)
}

func TestResolve_PythonDoubleDotClimbsOneLevel(t *testing.T) {
	root := t.TempDir()
	target := writeFile(t, filepath.Join(root, "shared", "base.py"), "")
	current := writeFile(t, filepath.Join(root, "feature", "main.py"), "")

	resolved, ok := Resolve("..shared.base", current, []string{root}, python.Module{}.Resolution())
	require.True(t, ok)
	assert.Equal(t, canonical(t, target), resolved)
}

func TestResolve_PythonBareDotResolvesPackageInit(t *testing.T) {
	root := t.TempDir()
	target := writeFile(t, filepath.Join(root, "pkg", "__init__.py"), "")
	current := writeFile(t, filepath.Join(root, "pkg", "main.py"), "")

	resolved, ok := Resolve(".", current, []string{root}, python.Module{}.Resolution())
	require.True(t, ok)
	assert.Equal(t, canonical(t, target), resolved)
}

func TestResolve_ExactNameBeforeExtensions(t *testing.T) {
	root := t.TempDir()
	exact := writeFile(t, filepath.Join(root, "src", "data.json"), "{}")
	writeFile(t, filepath.Join(root, "src", "data.json.js"), "")
	current := writeFile(t, filepath.Join(root, "src", "app.js"), "")

	resolved, ok := Resolve("./data.json", current, nil, javascript.Module{}.Resolution())
	require.True(t, ok)
	assert.Equal(t, canonical(t, exact), resolved)
}

func TestResolve_IndexFileInsideDirectory(t *testing.T) {
	root := t.TempDir()
	target := writeFile(t, filepath.Join(root, "src", "widgets", "index.ts"), "")
	current := writeFile(t, filepath.Join(root, "src", "app.ts"), "")

	resolved, ok := Resolve("./widgets", current, nil, typescript.Module{}.Resolution())
	require.True(t, ok)
	assert.Equal(t, canonical(t, target), resolved)
}

func TestResolve_DirectoryWithoutIndexIsUnresolved(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "empty"), 0o755))
	current := writeFile(t, filepath.Join(root, "src", "app.ts"), "")

	_, ok := Resolve("./empty", current, nil, typescript.Module{}.Resolution())
	assert.False(t, ok)
}

func TestResolve_MissingCandidateIsUnresolvedNotError(t *testing.T) {
	root := t.TempDir()
	current := writeFile(t, filepath.Join(root, "main.py"), "")

	_, ok := Resolve("nonexistent_module", current, []string{root}, python.Module{}.Resolution())
	assert.False(t, ok)
}

func TestResolve_EmptyReference(t *testing.T) {
	root := t.TempDir()
	current := writeFile(t, filepath.Join(root, "main.py"), "")

	_, ok := Resolve("", current, []string{root}, python.Module{}.Resolution())
	assert.False(t, ok)
}
