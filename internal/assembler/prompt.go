package assembler

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the provider prompt for one generation call. The prompt
// pins the canonical section list so a well-formed completion can be split
// back into sections by heading.
func BuildPrompt(meta ProjectMetadata) string {
	var b strings.Builder

	b.WriteString("Generate a professional GitHub README in Markdown format.\n\n")
	fmt.Fprintf(&b, "Project Name: %s\n", strings.TrimSpace(meta.Name))
	fmt.Fprintf(&b, "Description: %s\n", strings.TrimSpace(meta.Description))
	fmt.Fprintf(&b, "Features: %s\n", strings.Join(meta.Features, ", "))
	fmt.Fprintf(&b, "Badges: %s\n", strings.Join(meta.Badges, ", "))
	if s := strings.TrimSpace(meta.Installation); s != "" {
		fmt.Fprintf(&b, "Installation: %s\n", s)
	}
	if s := strings.TrimSpace(meta.Usage); s != "" {
		fmt.Fprintf(&b, "Usage: %s\n", s)
	}
	if s := strings.TrimSpace(meta.License); s != "" {
		fmt.Fprintf(&b, "License: %s\n", s)
	}

	b.WriteString("\nInclude exactly these sections, each under its own Markdown heading, in this order: ")
	b.WriteString(strings.Join(CanonicalHeadings, ", "))
	b.WriteString(".\nMake it professional, GitHub-ready, and well-formatted.\n")

	return b.String()
}
