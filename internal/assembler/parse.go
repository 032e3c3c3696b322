package assembler

import "strings"

// parseCompletion splits a provider completion into canonical-heading bodies.
// Headings are matched case-insensitively against the canonical names after
// stripping Markdown markers; a leading top-level heading that matches none
// of them is treated as the Title. Returns nil when no canonical heading is
// found at all, which the caller treats as a malformed completion.
func parseCompletion(text string) map[string]string {
	lines := strings.Split(text, "\n")

	bodies := make(map[string]string)
	current := ""
	var buf []string

	flush := func() {
		if current == "" {
			return
		}
		body := strings.TrimSpace(strings.Join(buf, "\n"))
		if body != "" && bodies[current] == "" {
			bodies[current] = body
		}
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "#") {
			buf = append(buf, line)
			continue
		}

		heading := matchCanonical(trimmed)
		if heading == "" && i == 0 && strings.HasPrefix(trimmed, "# ") {
			// First line like "# MyProject" carries the title text itself.
			flush()
			current = HeadingTitle
			buf = []string{strings.TrimSpace(strings.TrimLeft(trimmed, "# "))}
			continue
		}
		if heading == "" {
			// Unknown sub-heading, keep it inside the current section body.
			buf = append(buf, line)
			continue
		}

		flush()
		current = heading
		buf = nil
	}
	flush()

	if len(bodies) == 0 {
		return nil
	}
	return bodies
}

func matchCanonical(headingLine string) string {
	h := strings.TrimLeft(headingLine, "#")
	h = strings.TrimSpace(h)
	h = strings.TrimSuffix(h, ":")
	for _, c := range CanonicalHeadings {
		if strings.EqualFold(h, c) {
			return c
		}
	}
	return ""
}
