// Package signature produces condensed declaration listings for source
// files. A signature stands in for the full content of dependency files in
// the rendered bundle: one line per declaration, nested declarations
// indented under their parent.
package signature

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

const indentStep = "  "

// maxLineLength caps one signature line; longer declarations are cut.
const maxLineLength = 160

// Entry is the condensed signature of one file. Lines is empty when the
// file's language has no signature support or parsing failed; the file then
// appears in the bundle as a path-only entry.
type Entry struct {
	Path  string
	Lines []string
}

// Generator extracts signatures with tree-sitter. Detailed mode additionally
// includes fields and constant bindings.
type Generator struct {
	detailed bool
}

func NewGenerator(detailed bool) *Generator {
	return &Generator{detailed: detailed}
}

// File produces the signature entry for one file. Failures degrade to a
// path-only entry, never an error: a bundle must not fail because one
// dependency could not be parsed.
func (g *Generator) File(path string, content []byte) Entry {
	cfg, lang, ok := grammarForFile(path)
	if !ok {
		return Entry{Path: path}
	}

	parser := sitter.NewParser()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return Entry{Path: path}
	}
	defer tree.Close()

	var lines []string
	g.collect(tree.RootNode(), content, cfg, 0, &lines)

	return Entry{Path: path, Lines: lines}
}

// languageConfig names the AST node kinds that form a language's signature.
type languageConfig struct {
	// declarations are emitted as one signature line each.
	declarations map[string]bool

	// containers are declarations whose body is descended into for nested
	// declarations (classes, interfaces, enums).
	containers map[string]bool

	// detailedOnly are emitted only in detailed mode (fields, constants).
	detailedOnly map[string]bool

	// wrappers map a wrapper node kind to the field holding the wrapped
	// declaration (decorators, export statements).
	wrappers map[string]string
}

func set(kinds ...string) map[string]bool {
	m := make(map[string]bool, len(kinds))
	for _, kind := range kinds {
		m[kind] = true
	}
	return m
}

var pythonConfig = languageConfig{
	declarations: set("function_definition", "class_definition"),
	containers:   set("class_definition"),
	detailedOnly: set("expression_statement"),
	wrappers:     map[string]string{"decorated_definition": "definition"},
}

var javascriptConfig = languageConfig{
	declarations: set(
		"function_declaration", "generator_function_declaration",
		"class_declaration", "method_definition"),
	containers: set("class_declaration"),
	detailedOnly: set(
		"lexical_declaration", "variable_declaration",
		"field_definition", "public_field_definition"),
	wrappers: map[string]string{"export_statement": "declaration"},
}

var typescriptConfig = languageConfig{
	declarations: set(
		"function_declaration", "generator_function_declaration",
		"class_declaration", "abstract_class_declaration",
		"method_definition", "method_signature", "abstract_method_signature",
		"interface_declaration", "type_alias_declaration", "enum_declaration"),
	containers: set(
		"class_declaration", "abstract_class_declaration",
		"interface_declaration", "enum_declaration"),
	detailedOnly: set(
		"lexical_declaration", "variable_declaration",
		"public_field_definition", "property_signature"),
	wrappers: map[string]string{"export_statement": "declaration"},
}

var javaConfig = languageConfig{
	declarations: set(
		"class_declaration", "interface_declaration", "enum_declaration",
		"record_declaration", "annotation_type_declaration",
		"method_declaration", "constructor_declaration"),
	containers: set(
		"class_declaration", "interface_declaration", "enum_declaration",
		"record_declaration"),
	detailedOnly: set("field_declaration", "constant_declaration"),
}

func grammarForFile(path string) (languageConfig, *sitter.Language, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		return pythonConfig, python.GetLanguage(), true
	case ".js", ".mjs", ".cjs", ".jsx":
		return javascriptConfig, javascript.GetLanguage(), true
	case ".ts":
		return typescriptConfig, typescript.GetLanguage(), true
	case ".tsx":
		return typescriptConfig, tsx.GetLanguage(), true
	case ".java":
		return javaConfig, java.GetLanguage(), true
	default:
		return languageConfig{}, nil, false
	}
}

func (g *Generator) collect(parent *sitter.Node, source []byte, cfg languageConfig, depth int, out *[]string) {
	count := int(parent.NamedChildCount())
	for i := 0; i < count; i++ {
		child := parent.NamedChild(i)
		kind := child.Type()

		if field, ok := cfg.wrappers[kind]; ok {
			if wrapped := child.ChildByFieldName(field); wrapped != nil {
				g.emit(wrapped, source, cfg, depth, out)
			}
			continue
		}

		g.emit(child, source, cfg, depth, out)
	}
}

func (g *Generator) emit(node *sitter.Node, source []byte, cfg languageConfig, depth int, out *[]string) {
	kind := node.Type()

	switch {
	case cfg.declarations[kind]:
		*out = append(*out, strings.Repeat(indentStep, depth)+headline(node, source))
		if cfg.containers[kind] {
			if body := node.ChildByFieldName("body"); body != nil {
				g.collect(body, source, cfg, depth+1, out)
			}
		}
	case g.detailed && cfg.detailedOnly[kind]:
		*out = append(*out, strings.Repeat(indentStep, depth)+headline(node, source))
	}
}

// headline renders a declaration as a single line: the source text from the
// declaration start up to its body, whitespace-collapsed.
func headline(node *sitter.Node, source []byte) string {
	end := node.EndByte()
	if body := node.ChildByFieldName("body"); body != nil {
		end = body.StartByte()
	}

	text := string(source[node.StartByte():end])
	line := strings.Join(strings.Fields(text), " ")
	if len(line) > maxLineLength {
		line = line[:maxLineLength] + "..."
	}

	return line
}

// Budget limits the signature entries to a token budget using the supplied
// counter. Entries are kept in input order until the budget is exceeded;
// omitted reports how many entries were dropped. A budget of 0 keeps
// everything.
func Budget(entries []Entry, budget int, counter TokenCounter) (kept []Entry, omitted int) {
	if budget <= 0 {
		return entries, 0
	}

	used := 0
	for i, entry := range entries {
		cost := counter.Count(entryText(entry))
		if used+cost > budget && i > 0 {
			return entries[:i], len(entries) - i
		}
		used += cost
	}

	return entries, 0
}

func entryText(entry Entry) string {
	return fmt.Sprintf("%s\n%s\n", entry.Path, strings.Join(entry.Lines, "\n"))
}
