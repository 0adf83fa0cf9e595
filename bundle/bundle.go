// Package bundle orchestrates one context-bundle build: collect primary
// files, traverse their dependencies, condense dependency files to
// signatures, and render the markdown document.
package bundle

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/CodeContextHQ/ccc/internal/logging"
	"github.com/CodeContextHQ/ccc/render"
	"github.com/CodeContextHQ/ccc/signature"
	"github.com/CodeContextHQ/ccc/traverse"
)

// Options selects what goes into one bundle.
type Options struct {
	// Files are the explicitly requested primary files.
	Files []string

	// Find is an optional doublestar glob pattern selecting additional
	// primary files. Matches are sorted so the selection is stable.
	Find string

	// Roots are the ordered project roots for root-relative resolution.
	Roots []string

	// MaxDepth bounds expansion rounds; traverse.UnlimitedDepth removes
	// the bound.
	MaxDepth int

	// SigTokens caps the signatures section, 0 = unlimited.
	SigTokens int

	SigOnly     bool
	SigDetailed bool
}

// Builder builds context bundles. Collaborators are injectable for tests.
type Builder struct {
	traverser *traverse.Traverser
	generator func(detailed bool) *signature.Generator
	counter   signature.TokenCounter
	reader    traverse.ContentReader
	logger    *slog.Logger
}

// NewBuilder creates a builder with filesystem reading and the default
// token counter. A nil logger discards output.
func NewBuilder(logger *slog.Logger) *Builder {
	if logger == nil {
		logger = logging.Discard()
	}

	return &Builder{
		traverser: traverse.NewTraverser(nil, logger),
		generator: signature.NewGenerator,
		reader:    os.ReadFile,
		logger:    logger,
	}
}

// tokenCounter initializes the counter on first use; builds without a token
// budget never pay for tokenizer setup.
func (b *Builder) tokenCounter() signature.TokenCounter {
	if b.counter == nil {
		b.counter = signature.NewTokenCounter()
	}

	return b.counter
}

// Build produces the rendered bundle and the traversal result it was built
// from. In sig-only mode no traversal happens and the result is empty.
func (b *Builder) Build(opts Options) (string, traverse.Result, error) {
	files, err := CollectFiles(opts.Files, opts.Find)
	if err != nil {
		return "", traverse.Result{}, err
	}
	if len(files) == 0 {
		return "", traverse.Result{}, fmt.Errorf("no files selected")
	}

	if opts.SigOnly {
		doc := render.Document{SigOnly: true}
		doc.Signatures, doc.Omitted = b.signatures(files, opts)
		return render.Markdown(doc), traverse.Result{}, nil
	}

	result, err := b.traverser.Traverse(files, opts.Roots, opts.MaxDepth)
	if err != nil {
		return "", traverse.Result{}, err
	}

	if len(result.Warnings) > 0 {
		b.logger.Warn("some files degraded to leaves", "count", len(result.Warnings))
	}

	var doc render.Document
	for _, path := range result.PrimaryFiles() {
		doc.Primary = append(doc.Primary, render.SourceFile{Path: path, Content: b.readForDisplay(path)})
	}

	var dependencyPaths []string
	for _, dep := range result.DependencyFiles() {
		dependencyPaths = append(dependencyPaths, dep.Path)
	}
	doc.Signatures, doc.Omitted = b.signatures(dependencyPaths, opts)

	return render.Markdown(doc), result, nil
}

func (b *Builder) signatures(paths []string, opts Options) ([]signature.Entry, int) {
	generator := b.generator(opts.SigDetailed)

	entries := make([]signature.Entry, 0, len(paths))
	for _, path := range paths {
		content, err := b.reader(path)
		if err != nil {
			b.logger.Warn("failed to read dependency", "path", path, "error", err)
			entries = append(entries, signature.Entry{Path: path})
			continue
		}
		entries = append(entries, generator.File(path, content))
	}

	if opts.SigTokens <= 0 {
		return entries, 0
	}

	return signature.Budget(entries, opts.SigTokens, b.tokenCounter())
}

// readForDisplay reads a primary file's full content; a read failure is
// reported inline in the bundle rather than aborting it.
func (b *Builder) readForDisplay(path string) string {
	content, err := b.reader(path)
	if err != nil {
		return fmt.Sprintf("Error reading: %v", err)
	}

	return string(content)
}

// CollectFiles merges explicitly named files with glob matches, absolutized
// and deduplicated in a stable order: named files first, then sorted
// matches.
func CollectFiles(files []string, pattern string) ([]string, error) {
	collected := make([]string, 0, len(files))
	collected = append(collected, files...)

	if pattern != "" {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid find pattern %q: %w", pattern, err)
		}
		sort.Strings(matches)
		collected = append(collected, matches...)
	}

	seen := make(map[string]bool)
	result := make([]string, 0, len(collected))
	for _, file := range collected {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		if seen[absPath] {
			continue
		}
		seen[absPath] = true
		result = append(result, absPath)
	}

	return result, nil
}
