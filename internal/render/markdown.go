// Package render serializes generated documents to Markdown.
package render

import (
	"strings"

	"github.com/readme-maestro/maestro-backend/internal/assembler"
)

// Markdown serializes the document in canonical order, each heading as a
// level-2 heading. Identical documents serialize to identical bytes.
func Markdown(doc *assembler.GeneratedDocument) string {
	var b strings.Builder
	for _, s := range doc.Sections {
		b.WriteString("## ")
		b.WriteString(s.Heading)
		b.WriteString("\n\n")
		b.WriteString(strings.TrimRight(s.Body, "\n"))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
