package java

import (
	"regexp"
	"strings"

	"github.com/CodeContextHQ/ccc/traverse/langsupport"
)

var (
	// import pkg.Class; and wildcard import pkg.*;
	importPattern = regexp.MustCompile(`(?m)^[ \t]*import[ \t]+([A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)*(?:\.\*)?)[ \t]*;`)

	// import static pkg.Class.member; the member is stripped so the
	// reference resolves to the declaring type's file.
	staticImportPattern = regexp.MustCompile(`(?m)^[ \t]*import[ \t]+static[ \t]+([A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)*)\.[A-Za-z_$][A-Za-z0-9_$]*[ \t]*;`)
)

type Module struct{}

func (Module) Name() string {
	return "Java"
}

func (Module) Tag() string {
	return "java"
}

func (Module) Extensions() []string {
	return []string{".java"}
}

func (Module) ParseImports(source []byte) []string {
	return langsupport.ExtractImports(source, []langsupport.ImportPattern{
		{Regexp: importPattern, Expand: stripWildcard},
		{Regexp: staticImportPattern},
	})
}

func (Module) Resolution() langsupport.Resolution {
	return langsupport.Resolution{
		DottedPaths: true,
		Extensions:  []string{".java"},
	}
}

// stripWildcard reduces "pkg.util.*" to its base package path. Java has no
// package index file, so a wildcard usually stays unresolved; the base path
// is still offered to the resolver for projects that keep a type named after
// the package.
func stripWildcard(ref string) []string {
	return []string{strings.TrimSuffix(ref, ".*")}
}
