package traverse

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/CodeContextHQ/ccc/traverse/langsupport"
)

// Resolve maps a raw import reference to at most one canonical absolute file
// path. Resolution has two mutually exclusive modes: references carrying a
// relative marker (or a leading dot for dotted-path languages) resolve
// against the importing file's directory; every other reference is probed
// under each root in order, first root with an existing candidate wins.
// A reference that matches no candidate yields ok=false, never an error.
func Resolve(ref, currentFile string, roots []string, res langsupport.Resolution) (string, bool) {
	if ref == "" {
		return "", false
	}

	currentDir := filepath.Dir(currentFile)

	if base, relative := relativeBase(ref, currentDir, res); relative {
		return probeCandidates(base, res)
	}

	if filepath.IsAbs(ref) {
		return probeCandidates(filepath.Clean(ref), res)
	}

	pathRef := ref
	if res.DottedPaths {
		pathRef = strings.ReplaceAll(ref, ".", string(filepath.Separator))
	}
	pathRef = filepath.FromSlash(pathRef)

	for _, root := range roots {
		if resolved, ok := probeCandidates(filepath.Join(root, pathRef), res); ok {
			return resolved, true
		}
	}

	return "", false
}

// relativeBase reports whether the reference is relative and, if so, returns
// the base path it designates (before candidate probing).
func relativeBase(ref, currentDir string, res langsupport.Resolution) (string, bool) {
	for _, marker := range res.RelativeMarkers {
		if strings.HasPrefix(ref, marker) {
			return filepath.Clean(filepath.Join(currentDir, filepath.FromSlash(ref))), true
		}
	}

	if res.DottedPaths && strings.HasPrefix(ref, ".") {
		return dottedRelativeBase(ref, currentDir), true
	}

	return "", false
}

// dottedRelativeBase resolves Python-style leading-dot references: one dot is
// the current package, each additional dot climbs one package level.
func dottedRelativeBase(ref, currentDir string) string {
	dots := 0
	for dots < len(ref) && ref[dots] == '.' {
		dots++
	}

	base := currentDir
	for level := 1; level < dots; level++ {
		base = filepath.Dir(base)
	}

	rest := ref[dots:]
	if rest == "" {
		return base
	}

	return filepath.Join(base, filepath.FromSlash(strings.ReplaceAll(rest, ".", "/")))
}

// probeCandidates tries the exact path, then each recognized extension, then
// each index file inside a same-named directory, returning the first
// candidate that exists as a regular file.
func probeCandidates(base string, res langsupport.Resolution) (string, bool) {
	candidates := make([]string, 0, 1+len(res.Extensions)+len(res.IndexNames))
	candidates = append(candidates, base)
	for _, ext := range res.Extensions {
		candidates = append(candidates, base+ext)
	}
	for _, index := range res.IndexNames {
		candidates = append(candidates, filepath.Join(base, index))
	}

	for _, candidate := range candidates {
		if isRegularFile(candidate) {
			return canonicalPath(candidate), true
		}
	}

	return "", false
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// canonicalPath normalizes a path to its absolute, symlink-resolved form so
// downstream deduplication sees one identity per file regardless of how the
// path was constructed.
func canonicalPath(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}

	return resolveSymlinks(absPath)
}

func resolveSymlinks(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}
