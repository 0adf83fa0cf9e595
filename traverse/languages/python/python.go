package python

import (
	"regexp"
	"strings"

	"github.com/CodeContextHQ/ccc/traverse/langsupport"
)

var (
	// import a, import a.b.c, import a as x, import a, b
	importPattern = regexp.MustCompile(`(?m)^[ \t]*import[ \t]+([^\n#;]+)`)

	// from pkg.mod import x, from . import x, from ..pkg import y,
	// from pkg import * (wildcard resolves the base module).
	fromImportPattern = regexp.MustCompile(`(?m)^[ \t]*from[ \t]+([A-Za-z0-9_.]+)[ \t]+import`)

	modulePathPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)
)

type Module struct{}

func (Module) Name() string {
	return "Python"
}

func (Module) Tag() string {
	return "python"
}

func (Module) Extensions() []string {
	return []string{".py"}
}

func (Module) ParseImports(source []byte) []string {
	return langsupport.ExtractImports(source, []langsupport.ImportPattern{
		{Regexp: importPattern, Expand: expandImportClause},
		{Regexp: fromImportPattern},
	})
}

func (Module) Resolution() langsupport.Resolution {
	return langsupport.Resolution{
		DottedPaths: true,
		Extensions:  []string{".py"},
		IndexNames:  []string{"__init__.py"},
	}
}

// expandImportClause splits "a, b as c" into its module paths, dropping
// aliases and anything that is not a plain dotted module path.
func expandImportClause(clause string) []string {
	parts := strings.Split(clause, ",")
	modules := make([]string, 0, len(parts))

	for _, part := range parts {
		name := strings.TrimSpace(part)
		if idx := strings.Index(name, " as "); idx >= 0 {
			name = strings.TrimSpace(name[:idx])
		}
		if !modulePathPattern.MatchString(name) {
			continue
		}
		modules = append(modules, name)
	}

	return modules
}
