package assembler

import "errors"

var (
	// ErrInvalidMetadata covers caller input errors: empty required fields,
	// duplicate features or badges, counts over the configured caps.
	ErrInvalidMetadata = errors.New("invalid project metadata")

	// ErrInvalidBadge is returned for a badge identifier the registry does
	// not know. Unrecognized badges are never silently dropped.
	ErrInvalidBadge = errors.New("unknown badge identifier")

	// Provider-side failures. These never escape Generate; they only route
	// the call onto the fallback branch.
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrProviderEmpty       = errors.New("provider returned an empty completion")
)
