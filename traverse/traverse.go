package traverse

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// UnlimitedDepth disables the depth bound: traversal expands until the
// frontier empties.
const UnlimitedDepth = -1

// File is a discovered file together with the hop count at which it was
// first reached. Depth is assigned once, at first discovery, and never
// revised.
type File struct {
	Path  string
	Depth int
}

// Edge is one resolved import relation between two discovered files.
type Edge struct {
	From string
	To   string
}

// Warning records a per-file failure that degraded the file to a leaf.
type Warning struct {
	Path   string
	Reason string
}

// Result is the outcome of one traversal: every discovered file in discovery
// order, depth-tagged, plus the resolved edges and any per-file warnings.
type Result struct {
	Files    []File
	Edges    []Edge
	Warnings []Warning
}

// PrimaryFiles returns the depth-0 files in discovery order.
func (r Result) PrimaryFiles() []string {
	var primary []string
	for _, f := range r.Files {
		if f.Depth == 0 {
			primary = append(primary, f.Path)
		}
	}

	return primary
}

// DependencyFiles returns the files discovered at depth >= 1, in discovery
// order.
func (r Result) DependencyFiles() []File {
	var deps []File
	for _, f := range r.Files {
		if f.Depth >= 1 {
			deps = append(deps, f)
		}
	}

	return deps
}

// Paths returns every discovered path in discovery order.
func (r Result) Paths() []string {
	paths := make([]string, 0, len(r.Files))
	for _, f := range r.Files {
		paths = append(paths, f.Path)
	}

	return paths
}

// Traverser performs breadth-first, depth-bounded, deduplicated expansion
// over the dependency graph induced by import extraction and path
// resolution. One Traverse call owns all of its state; traversal is
// single-threaded and deterministic for identical inputs.
type Traverser struct {
	reader ContentReader
	logger *slog.Logger
}

// NewTraverser creates a traverser. A nil reader defaults to the filesystem;
// a nil logger discards output.
func NewTraverser(reader ContentReader, logger *slog.Logger) *Traverser {
	if reader == nil {
		reader = os.ReadFile
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Traverser{reader: reader, logger: logger}
}

// Traverse expands the dependency graph starting from the primary files.
// The mandatory first round always runs and yields the direct dependencies;
// maxDepth additional rounds follow (UnlimitedDepth removes the bound).
// Roots are probed in order during resolution; when none are configured,
// each file's own directory acts as the root list.
func (t *Traverser) Traverse(primaryFiles []string, roots []string, maxDepth int) (Result, error) {
	if len(primaryFiles) == 0 {
		return Result{}, fmt.Errorf("no primary files supplied")
	}

	var result Result
	visited := make(map[string]bool)
	seenEdges := make(map[Edge]bool)

	var frontier []string
	for _, primary := range primaryFiles {
		absPath, err := filepath.Abs(primary)
		if err != nil {
			return Result{}, fmt.Errorf("failed to resolve path %s: %w", primary, err)
		}
		canonical := resolveSymlinks(filepath.Clean(absPath))

		if !isRegularFile(canonical) {
			return Result{}, fmt.Errorf("primary file does not exist: %s", primary)
		}
		if visited[canonical] {
			continue
		}

		visited[canonical] = true
		result.Files = append(result.Files, File{Path: canonical, Depth: 0})
		frontier = append(frontier, canonical)
	}

	for depth := 0; len(frontier) > 0 && (maxDepth < 0 || depth <= maxDepth); depth++ {
		var next []string

		for _, current := range frontier {
			t.logger.Debug("processing file", "path", current, "depth", depth)

			for _, resolved := range t.expand(current, roots, &result) {
				if resolved == current {
					continue
				}

				edge := Edge{From: current, To: resolved}
				if !seenEdges[edge] {
					seenEdges[edge] = true
					result.Edges = append(result.Edges, edge)
				}

				if visited[resolved] {
					continue
				}

				visited[resolved] = true
				result.Files = append(result.Files, File{Path: resolved, Depth: depth + 1})
				next = append(next, resolved)
			}
		}

		frontier = next
	}

	return result, nil
}

// expand extracts and resolves the imports of a single file. Failures
// degrade the file to a leaf and are recorded as warnings; they never abort
// the traversal.
func (t *Traverser) expand(current string, roots []string, result *Result) []string {
	module, ok := ModuleForFile(current)
	if !ok {
		return nil
	}

	content, err := t.reader(current)
	if err != nil {
		t.logger.Warn("failed to read file", "path", current, "error", err)
		result.Warnings = append(result.Warnings, Warning{Path: current, Reason: err.Error()})
		return nil
	}

	if !isDecodableText(content) {
		t.logger.Warn("skipping undecodable content", "path", current)
		result.Warnings = append(result.Warnings, Warning{Path: current, Reason: "content is not decodable text"})
		return nil
	}

	effectiveRoots := roots
	if len(effectiveRoots) == 0 {
		effectiveRoots = []string{filepath.Dir(current)}
	}

	var resolvedPaths []string
	for _, ref := range module.ParseImports(content) {
		resolved, ok := Resolve(ref, current, effectiveRoots, module.Resolution())
		if !ok {
			t.logger.Debug("unresolved import", "path", current, "import", ref)
			continue
		}
		resolvedPaths = append(resolvedPaths, resolved)
	}

	return resolvedPaths
}

func isDecodableText(content []byte) bool {
	return !bytes.ContainsRune(content, 0) && utf8.Valid(content)
}
