package assembler

import (
	"fmt"
	"sort"
)

// badgeDef describes one shields.io badge: label-value-color as they appear
// in the badge path segment.
type badgeDef struct {
	Label string
	Value string
	Color string
}

// The fixed identifier table. Values with special characters are already
// percent-encoded for the shields.io path.
var badgeTable = map[string]badgeDef{
	"python":         {"Python", "3.9%2B", "blue"},
	"go":             {"Go", "1.22%2B", "00ADD8"},
	"openai":         {"OpenAI", "API", "orange"},
	"license":        {"License", "MIT", "green"},
	"license-gplv3":  {"License", "GPLv3", "blue"},
	"github-actions": {"CI", "GitHub%20Actions", "2088FF"},
	"docker":         {"Docker", "ready", "2496ED"},
	"pypi":           {"PyPI", "package", "yellow"},
	"build":          {"Build", "passing", "brightgreen"},
	"stars":          {"Stars", "%E2%AD%90", "yellow"},
}

// Badge is a resolved registry entry.
type Badge struct {
	ID     string `json:"id"`
	Markup string `json:"markup"`
}

// BadgeRegistry maps badge identifiers to fixed Markdown image fragments.
// Built once at startup from the table above and a badge style; immutable
// afterwards.
type BadgeRegistry struct {
	style  string
	markup map[string]string
}

// NewBadgeRegistry builds a registry rendering badges with the given
// shields.io style (flat, plastic, for-the-badge).
func NewBadgeRegistry(style string) *BadgeRegistry {
	if style == "" {
		style = "flat"
	}
	m := make(map[string]string, len(badgeTable))
	for id, d := range badgeTable {
		m[id] = fmt.Sprintf(
			"![%s](https://img.shields.io/badge/%s-%s-%s?style=%s)",
			d.Label, d.Label, d.Value, d.Color, style,
		)
	}
	return &BadgeRegistry{style: style, markup: m}
}

// Resolve maps an identifier to its markup fragment.
func (r *BadgeRegistry) Resolve(id string) (string, error) {
	m, ok := r.markup[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidBadge, id)
	}
	return m, nil
}

// List returns every registry entry sorted by identifier.
func (r *BadgeRegistry) List() []Badge {
	out := make([]Badge, 0, len(r.markup))
	for id, m := range r.markup {
		out = append(out, Badge{ID: id, Markup: m})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Style returns the configured shields.io style.
func (r *BadgeRegistry) Style() string { return r.style }
