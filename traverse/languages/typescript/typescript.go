package typescript

import (
	"github.com/CodeContextHQ/ccc/traverse/langsupport"
	"github.com/CodeContextHQ/ccc/traverse/languages/javascript"
)

type Module struct{}

func (Module) Name() string {
	return "TypeScript"
}

func (Module) Tag() string {
	return "typescript"
}

func (Module) Extensions() []string {
	return []string{".ts", ".tsx"}
}

func (Module) ParseImports(source []byte) []string {
	return langsupport.ExtractImports(source, javascript.Patterns())
}

func (Module) Resolution() langsupport.Resolution {
	// TypeScript extension resolution order
	return langsupport.Resolution{
		RelativeMarkers: []string{"./", "../"},
		Extensions:      []string{".ts", ".tsx", ".js", ".jsx"},
		IndexNames:      []string{"index.ts", "index.tsx", "index.js"},
	}
}
