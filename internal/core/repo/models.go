package repo

import "encoding/json"

// CreateRepoRequest represents a request to create an idea repository.
type CreateRepoRequest struct {
	// CallerID is the authenticated identity creating the repo.
	CallerID string
	// Name is a short human-readable label. Required.
	Name string
	// Description explains the idea. Required.
	Description string
	// Visibility is "public" or "private"; defaults to public.
	Visibility string
	// Category defaults to "general".
	Category string
	// Tags is an ordered list of labels.
	Tags []string
	// Content is the loosely-typed idea bag (originalIdea, goal, variants,
	// businessInsights, analysis). Advisory schema, not enforced on write.
	Content json.RawMessage
}

// UpdateRepoRequest represents a partial patch. Empty fields are treated as
// "not provided" and leave the stored value unchanged, matching the
// observed patch semantics: a field cannot be cleared through this path.
type UpdateRepoRequest struct {
	CallerID    string
	RepoID      string
	Name        string
	Description string
	Visibility  string
	Category    string
	Tags        []string
	Content     json.RawMessage
}

// ListReposQuery represents a discovery/listing query.
type ListReposQuery struct {
	// CallerID is empty for anonymous listings.
	CallerID string
	// OwnerID restricts the listing to one owner's repos.
	OwnerID string
	// Visibility filters by visibility when no owner is targeted.
	Visibility string
	// Sort is a response field name (createdAt, updatedAt, starCount,
	// forkCount, viewCount, name). Unknown values fall back to createdAt.
	Sort string
	// Order is "asc" or "desc"; defaults to desc.
	Order string
}
