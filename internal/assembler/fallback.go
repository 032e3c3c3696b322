package assembler

import (
	"fmt"
	"strings"
)

// fallbackSections synthesizes every canonical section deterministically from
// the metadata. badgeLines must already be resolved through the registry, in
// input order. Identical input always yields byte-identical output.
func fallbackSections(meta ProjectMetadata, badgeLines []string) []Section {
	name := strings.TrimSpace(meta.Name)

	sections := make([]Section, 0, len(CanonicalHeadings))
	for _, heading := range CanonicalHeadings {
		var body string
		switch heading {
		case HeadingTitle:
			body = name
		case HeadingDescription:
			body = strings.TrimSpace(meta.Description)
		case HeadingFeatures:
			body = bulletList(meta.Features)
		case HeadingBadges:
			body = strings.Join(badgeLines, "\n")
		case HeadingInstallation:
			body = textOrDefault(meta.Installation, fmt.Sprintf(
				"Clone the repository and install the dependencies listed in the project manifest to run %s locally.", name))
		case HeadingUsage:
			body = textOrDefault(meta.Usage, fmt.Sprintf(
				"Start %s and follow the on-screen instructions. See the project documentation for details.", name))
		case HeadingLicense:
			body = textOrDefault(meta.License,
				"This project is distributed under the terms described in the LICENSE file.")
		}
		sections = append(sections, Section{Heading: heading, Body: body})
	}
	return sections
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, "- "+strings.TrimSpace(it))
	}
	return strings.Join(lines, "\n")
}

func textOrDefault(text, def string) string {
	if t := strings.TrimSpace(text); t != "" {
		return t
	}
	return def
}
