// Package assembler turns structured project metadata into a README-shaped
// document. Generation is a single request/response transform with two
// branches: an AI-backed path through an external text provider, and a
// deterministic fallback that synthesizes the same section layout locally.
// Provider failures never fail a call; they only select the fallback branch.
package assembler

import (
	"context"
	"fmt"
	"strings"
)

// Provider is the generative-text dependency. Implementations send one prompt
// and return the raw completion text.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Limits caps the metadata list fields. Insertion past a cap is rejected,
// never truncated.
type Limits struct {
	MaxFeatures int
	MaxBadges   int
}

func DefaultLimits() Limits {
	return Limits{MaxFeatures: 20, MaxBadges: 10}
}

// Assembler holds the fixed configuration for generation calls. It keeps no
// per-call state; a single instance is safe for concurrent use.
type Assembler struct {
	badges   *BadgeRegistry
	limits   Limits
	provider Provider
}

// New builds an assembler. provider may be nil, in which case every call
// takes the deterministic fallback branch.
func New(badges *BadgeRegistry, limits Limits, provider Provider) *Assembler {
	if badges == nil {
		badges = NewBadgeRegistry("flat")
	}
	if limits.MaxFeatures <= 0 {
		limits.MaxFeatures = DefaultLimits().MaxFeatures
	}
	if limits.MaxBadges <= 0 {
		limits.MaxBadges = DefaultLimits().MaxBadges
	}
	return &Assembler{badges: badges, limits: limits, provider: provider}
}

// Generate validates the metadata and produces a document. Only input errors
// (ErrInvalidMetadata, ErrInvalidBadge) and caller cancellation fail the
// call; provider errors are absorbed by the fallback branch.
func (a *Assembler) Generate(ctx context.Context, meta ProjectMetadata) (*GeneratedDocument, error) {
	badgeLines, err := a.validate(meta)
	if err != nil {
		return nil, err
	}

	if a.provider == nil {
		return a.fallbackDocument(meta, badgeLines), nil
	}

	completion, err := a.provider.Complete(ctx, BuildPrompt(meta))
	if err != nil {
		// The caller backing out is not a provider failure; return no
		// document and let the caller decide whether to retry.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return a.fallbackDocument(meta, badgeLines), nil
	}

	bodies := parseCompletion(completion)
	if bodies == nil {
		return a.fallbackDocument(meta, badgeLines), nil
	}

	// Any section the completion omitted gets its deterministic fallback
	// body, so no section is ever empty.
	fb := fallbackSections(meta, badgeLines)
	sections := make([]Section, 0, len(CanonicalHeadings))
	for i, heading := range CanonicalHeadings {
		body := bodies[heading]
		if strings.TrimSpace(body) == "" {
			body = fb[i].Body
		}
		sections = append(sections, Section{Heading: heading, Body: body})
	}

	return &GeneratedDocument{
		Sections:  sections,
		Source:    SourceAI,
		WordCount: countWords(sections),
	}, nil
}

func (a *Assembler) fallbackDocument(meta ProjectMetadata, badgeLines []string) *GeneratedDocument {
	sections := fallbackSections(meta, badgeLines)
	return &GeneratedDocument{
		Sections:  sections,
		Source:    SourceFallback,
		WordCount: countWords(sections),
	}
}

// validate enforces the metadata invariants and resolves every badge
// identifier up front, returning the markup lines in input order.
func (a *Assembler) validate(meta ProjectMetadata) ([]string, error) {
	if strings.TrimSpace(meta.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidMetadata)
	}
	if strings.TrimSpace(meta.Description) == "" {
		return nil, fmt.Errorf("%w: description must not be empty", ErrInvalidMetadata)
	}

	if len(meta.Features) > a.limits.MaxFeatures {
		return nil, fmt.Errorf("%w: feature count %d exceeds the maximum of %d",
			ErrInvalidMetadata, len(meta.Features), a.limits.MaxFeatures)
	}
	if len(meta.Badges) > a.limits.MaxBadges {
		return nil, fmt.Errorf("%w: badge count %d exceeds the maximum of %d",
			ErrInvalidMetadata, len(meta.Badges), a.limits.MaxBadges)
	}

	seen := make(map[string]struct{}, len(meta.Features))
	for _, f := range meta.Features {
		key := strings.ToLower(strings.TrimSpace(f))
		if key == "" {
			return nil, fmt.Errorf("%w: features must not be empty", ErrInvalidMetadata)
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: duplicate feature %q", ErrInvalidMetadata, f)
		}
		seen[key] = struct{}{}
	}

	badgeLines := make([]string, 0, len(meta.Badges))
	seenBadges := make(map[string]struct{}, len(meta.Badges))
	for _, id := range meta.Badges {
		key := strings.ToLower(strings.TrimSpace(id))
		if _, dup := seenBadges[key]; dup {
			return nil, fmt.Errorf("%w: duplicate badge %q", ErrInvalidMetadata, id)
		}
		seenBadges[key] = struct{}{}

		markup, err := a.badges.Resolve(key)
		if err != nil {
			return nil, err
		}
		badgeLines = append(badgeLines, markup)
	}

	return badgeLines, nil
}
