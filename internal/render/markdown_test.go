package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readme-maestro/maestro-backend/internal/assembler"
)

func sampleDocument() *assembler.GeneratedDocument {
	return &assembler.GeneratedDocument{
		Sections: []assembler.Section{
			{Heading: "Title", Body: "Apex"},
			{Heading: "Description", Body: "Anime player"},
			{Heading: "Features", Body: "- No ads"},
		},
		Source: assembler.SourceFallback,
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleDocument())

	assert.Equal(t, "## Title\n\nApex\n\n## Description\n\nAnime player\n\n## Features\n\n- No ads\n", md)

	// Serialization is deterministic.
	assert.Equal(t, md, Markdown(sampleDocument()))
}

func TestMarkdown_HeadingsInOrder(t *testing.T) {
	md := Markdown(sampleDocument())

	idxTitle := strings.Index(md, "## Title")
	idxDesc := strings.Index(md, "## Description")
	idxFeat := strings.Index(md, "## Features")
	require.GreaterOrEqual(t, idxTitle, 0)
	assert.Less(t, idxTitle, idxDesc)
	assert.Less(t, idxDesc, idxFeat)
}

func TestTableOfContents(t *testing.T) {
	md := "## Title\n\nApex\n\n## Getting Started\n\ntext\n\n### Quick Start\n\nmore\n"
	toc := TableOfContents(md)

	assert.Contains(t, toc, "## Table of Contents")
	assert.Contains(t, toc, "- [Title](#title)")
	assert.Contains(t, toc, "- [Getting Started](#getting-started)")
	assert.Contains(t, toc, "    - [Quick Start](#quick-start)")
}
