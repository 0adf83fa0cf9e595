package javascript

import (
	"regexp"

	"github.com/CodeContextHQ/ccc/traverse/langsupport"
)

var (
	// import defaultExport from 'x', import { a, b } from 'x',
	// import * as ns from 'x', import React, { useState } from 'x',
	// side-effect import 'x', and the type-only TypeScript variants.
	importPattern = regexp.MustCompile(`(?m)^[ \t]*import\b(?:[ \t]+type\b)?[ \t]*(?:\{[^}]*\}|\*[ \t]+as[ \t]+\w+|\w+(?:[ \t]*,[ \t]*(?:\{[^}]*\}|\*[ \t]+as[ \t]+\w+))?)?[ \t\r\n]*(?:from[ \t]*)?['"]([^'"\n]+)['"]`)

	// export { a } from 'x', export * from 'x', export * as ns from 'x'
	exportPattern = regexp.MustCompile(`(?m)^[ \t]*export\b[ \t]+(?:\{[^}]*\}|\*(?:[ \t]+as[ \t]+\w+)?)[ \t\r\n]*from[ \t]*['"]([^'"\n]+)['"]`)

	// require('x') anywhere in the file
	requirePattern = regexp.MustCompile(`\brequire[ \t]*\([ \t]*['"]([^'"\n]+)['"][ \t]*\)`)
)

// Patterns returns the import forms shared by the JavaScript and TypeScript
// modules. Dynamic import(...) is intentionally not recognized.
func Patterns() []langsupport.ImportPattern {
	return []langsupport.ImportPattern{
		{Regexp: importPattern},
		{Regexp: exportPattern},
		{Regexp: requirePattern},
	}
}

type Module struct{}

func (Module) Name() string {
	return "JavaScript"
}

func (Module) Tag() string {
	return "javascript"
}

func (Module) Extensions() []string {
	return []string{".js", ".mjs", ".cjs", ".jsx"}
}

func (Module) ParseImports(source []byte) []string {
	return langsupport.ExtractImports(source, Patterns())
}

func (Module) Resolution() langsupport.Resolution {
	return langsupport.Resolution{
		RelativeMarkers: []string{"./", "../"},
		Extensions:      []string{".js", ".mjs", ".cjs", ".jsx", ".json"},
		IndexNames:      []string{"index.js", "index.mjs", "index.jsx"},
	}
}
