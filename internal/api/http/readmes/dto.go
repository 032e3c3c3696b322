package readmes

import "github.com/readme-maestro/maestro-backend/internal/assembler"

type generateReq struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Badges       []string `json:"badges"`
	Installation string   `json:"installation"`
	Usage        string   `json:"usage"`
	License      string   `json:"license"`

	// IncludeTOC prepends a table of contents to the rendered Markdown.
	IncludeTOC bool `json:"include_toc"`
}

func (r generateReq) metadata() assembler.ProjectMetadata {
	return assembler.ProjectMetadata{
		Name:         r.Name,
		Description:  r.Description,
		Features:     r.Features,
		Badges:       r.Badges,
		Installation: r.Installation,
		Usage:        r.Usage,
		License:      r.License,
	}
}

type generateResp struct {
	OK       bool                         `json:"ok"`
	ID       string                       `json:"id,omitempty"`
	PublicID string                       `json:"public_id,omitempty"`
	Document *assembler.GeneratedDocument `json:"document"`
	Markdown string                       `json:"markdown"`
}
