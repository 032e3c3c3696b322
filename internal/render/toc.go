package render

import "strings"

// TableOfContents builds a Markdown table of contents from the headings of
// an already-rendered document. Anchors follow the GitHub convention of
// lowercased, hyphen-joined heading text.
func TableOfContents(markdown string) string {
	var b strings.Builder
	b.WriteString("## Table of Contents\n")

	for _, line := range strings.Split(markdown, "\n") {
		if !strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		level := len(fields[0])
		title := strings.TrimSpace(strings.TrimLeft(line, "#"))
		anchor := strings.ReplaceAll(strings.ToLower(title), " ", "-")

		b.WriteString(strings.Repeat("  ", level-1))
		b.WriteString("- [")
		b.WriteString(title)
		b.WriteString("](#")
		b.WriteString(anchor)
		b.WriteString(")\n")
	}

	return b.String() + "\n"
}
