package model

import "github.com/rosterhub/rosterhub/pkg/domain/types"

// SearchResult is a uniform entity summary used for teams, leagues and
// tournaments regardless of origin (remote query, local filter, fixture)
type SearchResult struct {
	ID       string           `json:"id"`
	Type     types.EntityType `json:"type"`
	Name     string           `json:"name"`
	Subtitle string           `json:"subtitle,omitempty"`
	LogoURL  string           `json:"logoUrl,omitempty"`
	Private  bool             `json:"private,omitempty"`
}

// MergeOptions controls how search sources are combined
type MergeOptions struct {
	// Query is the free-text query the local sources were filtered with
	Query string
	// IncludeMocks gates fixture data out of production builds. It is
	// caller-supplied, never inferred here.
	IncludeMocks bool
}
