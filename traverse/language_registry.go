package traverse

import (
	"path/filepath"
	"strings"

	"github.com/CodeContextHQ/ccc/traverse/langsupport"
	"github.com/CodeContextHQ/ccc/traverse/languages/java"
	"github.com/CodeContextHQ/ccc/traverse/languages/javascript"
	"github.com/CodeContextHQ/ccc/traverse/languages/jsonfile"
	"github.com/CodeContextHQ/ccc/traverse/languages/python"
	"github.com/CodeContextHQ/ccc/traverse/languages/typescript"
)

type languageRegistryEntry struct {
	Module langsupport.Module
}

// languageRegistry is the single source of truth for supported languages.
// Adding/removing a language should happen here.
var languageRegistry = []languageRegistryEntry{
	{Module: java.Module{}},
	{Module: javascript.Module{}},
	{Module: jsonfile.Module{}},
	{Module: python.Module{}},
	{Module: typescript.Module{}},
}

// ModuleForExtension returns the language module handling the given file
// extension (with leading dot), if any.
func ModuleForExtension(ext string) (langsupport.Module, bool) {
	ext = strings.ToLower(ext)
	for _, language := range languageRegistry {
		for _, languageExt := range language.Module.Extensions() {
			if languageExt == ext {
				return language.Module, true
			}
		}
	}

	return nil, false
}

// ModuleForFile returns the language module inferred from a file's extension.
func ModuleForFile(path string) (langsupport.Module, bool) {
	return ModuleForExtension(filepath.Ext(path))
}

// ModuleForTag returns the language module registered under a language tag.
func ModuleForTag(tag string) (langsupport.Module, bool) {
	for _, language := range languageRegistry {
		if language.Module.Tag() == tag {
			return language.Module, true
		}
	}

	return nil, false
}

// SupportedModules returns all registered language modules in registry order.
func SupportedModules() []langsupport.Module {
	modules := make([]langsupport.Module, 0, len(languageRegistry))
	for _, language := range languageRegistry {
		modules = append(modules, language.Module)
	}

	return modules
}

// SupportedLanguageExtensions returns every extension handled by a registered
// language module, in registry order.
func SupportedLanguageExtensions() []string {
	var extensions []string
	for _, language := range languageRegistry {
		extensions = append(extensions, language.Module.Extensions()...)
	}

	return extensions
}
