package assembler

import "strings"

// ProjectMetadata is the structured input for one generation call. It is
// treated as immutable for the duration of the call; the assembler keeps no
// reference to it afterwards.
type ProjectMetadata struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Badges      []string `json:"badges"`

	// Optional free-text sections. When empty the assembler substitutes a
	// deterministic template parameterized by the project name.
	Installation string `json:"installation,omitempty"`
	Usage        string `json:"usage,omitempty"`
	License      string `json:"license,omitempty"`
}

// Section is one heading/body pair of a generated document.
type Section struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Source marks which branch produced a document.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// GeneratedDocument is the output of one generation call. Sections always
// holds the canonical headings in canonical order, on both branches.
type GeneratedDocument struct {
	Sections  []Section `json:"sections"`
	Source    Source    `json:"source"`
	WordCount int       `json:"word_count"`
}

const (
	HeadingTitle        = "Title"
	HeadingDescription  = "Description"
	HeadingFeatures     = "Features"
	HeadingBadges       = "Badges"
	HeadingInstallation = "Installation"
	HeadingUsage        = "Usage"
	HeadingLicense      = "License"
)

// CanonicalHeadings is the fixed section order every document follows.
var CanonicalHeadings = []string{
	HeadingTitle,
	HeadingDescription,
	HeadingFeatures,
	HeadingBadges,
	HeadingInstallation,
	HeadingUsage,
	HeadingLicense,
}

// Section returns the section with the given heading, or nil.
func (d *GeneratedDocument) Section(heading string) *Section {
	for i := range d.Sections {
		if d.Sections[i].Heading == heading {
			return &d.Sections[i]
		}
	}
	return nil
}

func countWords(sections []Section) int {
	n := 0
	for _, s := range sections {
		n += len(strings.Fields(s.Body))
	}
	return n
}
