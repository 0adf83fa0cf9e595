// Package render assembles the final context bundle document: full content
// of primary files followed by condensed signatures of their dependencies.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/CodeContextHQ/ccc/signature"
	"github.com/CodeContextHQ/ccc/traverse"
)

// SourceFile is a primary file with its full content.
type SourceFile struct {
	Path    string
	Content string
}

// Document is everything the markdown bundle is built from.
type Document struct {
	Primary    []SourceFile
	Signatures []signature.Entry

	// SigOnly omits the full-content section and titles the signature
	// section accordingly.
	SigOnly bool

	// Omitted is the number of signature entries dropped by the token
	// budget.
	Omitted int
}

// Markdown renders the bundle document. Primary files are ordered by path;
// signatures keep their discovery order.
func Markdown(doc Document) string {
	var b strings.Builder
	b.WriteString("# Context\n\n")

	if !doc.SigOnly && len(doc.Primary) > 0 {
		b.WriteString("## Primary Files (Full Content)\n\n")

		primary := make([]SourceFile, len(doc.Primary))
		copy(primary, doc.Primary)
		sort.Slice(primary, func(i, j int) bool { return primary[i].Path < primary[j].Path })

		for _, file := range primary {
			fmt.Fprintf(&b, "### %s\n", file.Path)
			fmt.Fprintf(&b, "```%s\n%s\n```\n\n", fenceLanguage(file.Path), strings.TrimRight(file.Content, "\n"))
		}
	}

	if len(doc.Signatures) > 0 || doc.Omitted > 0 {
		if doc.SigOnly {
			b.WriteString("## File Signatures\n\n")
		} else {
			b.WriteString("## Dependencies (Signatures)\n\n")
		}

		for _, entry := range doc.Signatures {
			fmt.Fprintf(&b, "### %s\n", entry.Path)
			if len(entry.Lines) > 0 {
				fmt.Fprintf(&b, "```%s\n%s\n```\n", fenceLanguage(entry.Path), strings.Join(entry.Lines, "\n"))
			}
			b.WriteString("\n")
		}

		if doc.Omitted > 0 {
			fmt.Fprintf(&b, "_%d dependency files omitted by the signature token budget._\n", doc.Omitted)
		}
	}

	return b.String()
}

// fenceLanguage picks the markdown code fence tag for a file. Language tags
// in the registry double as fence names.
func fenceLanguage(path string) string {
	module, ok := traverse.ModuleForFile(path)
	if !ok {
		return ""
	}

	return module.Tag()
}
