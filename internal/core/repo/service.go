package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ideaforge/ideaforge/server/internal/storage"
)

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"

	defaultCategory = "general"
	listCap         = 100
)

// sortColumns whitelists list sort fields to their storage columns.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"starCount": "star_count",
	"forkCount": "fork_count",
	"viewCount": "view_count",
	"name":      "name",
}

// Service contains the core business logic for idea repository operations.
type Service struct {
	storage storage.Storage
}

// NewService creates a new repo service.
func NewService(storage storage.Storage) *Service {
	return &Service{storage: storage}
}

// Create creates a new idea repository owned by the caller.
func (s *Service) Create(ctx context.Context, req CreateRepoRequest) (*storage.IdeaRepo, error) {
	if req.CallerID == "" {
		return nil, NewUnauthorizedError("authentication required")
	}
	if req.Name == "" || req.Description == "" {
		return nil, NewValidationError("name", "name and description are required")
	}
	visibility := req.Visibility
	if visibility == "" {
		visibility = VisibilityPublic
	}
	if visibility != VisibilityPublic && visibility != VisibilityPrivate {
		return nil, NewValidationError("visibility", "visibility must be public or private")
	}
	category := req.Category
	if category == "" {
		category = defaultCategory
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	content := req.Content
	if len(content) == 0 {
		content = []byte("{}")
	}

	repoID := uuid.New()
	log.Info().Str("repoID", repoID.String()).Str("ownerID", req.CallerID).Msg("Creating repo")

	created, err := s.storage.CreateRepo(ctx, storage.CreateRepoRequest{
		RepoID:      repoID,
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     req.CallerID,
		Visibility:  visibility,
		Category:    category,
		Tags:        tags,
		Content:     content,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, NewNotFoundError("ownerId", "owner not found")
		}
		log.Error().Err(err).Str("repoID", repoID.String()).Msg("Failed to create repo")
		return nil, err
	}
	return created, nil
}

// Get loads a repo by id, enforces visibility, and bumps the view counter.
// Every successful read counts as a view, the owner's included.
func (s *Service) Get(ctx context.Context, callerID, repoID string) (*storage.IdeaRepo, error) {
	id, err := parseRepoID(repoID)
	if err != nil {
		return nil, err
	}
	r, err := s.storage.GetRepo(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, NewNotFoundError("repoId", "repository not found")
		}
		return nil, err
	}
	if r.Visibility == VisibilityPrivate && callerID != r.OwnerID {
		return nil, NewAccessDeniedError("access denied")
	}
	views, err := s.storage.IncrementViewCount(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("repoID", repoID).Msg("Failed to increment view count")
		return nil, err
	}
	r.ViewCount = views
	return r, nil
}

// List returns up to 100 repos matching the query. A caller browsing another
// user's repos only sees public ones; owners see all of their own.
func (s *Service) List(ctx context.Context, q ListReposQuery) ([]*storage.IdeaRepo, error) {
	req := storage.ListReposRequest{Limit: listCap}

	switch {
	case q.OwnerID != "":
		req.OwnerID = q.OwnerID
		if q.CallerID != q.OwnerID {
			req.Visibility = VisibilityPublic
		}
	case q.Visibility != "":
		req.Visibility = q.Visibility
	default:
		req.Visibility = VisibilityPublic
	}

	col, ok := sortColumns[q.Sort]
	if !ok {
		col = sortColumns["createdAt"]
	}
	req.SortColumn = col
	req.Descending = q.Order != "asc"

	repos, err := s.storage.ListRepos(ctx, req)
	if err != nil {
		log.Warn().Err(err).Msg("ListRepos failed")
	}
	return repos, err
}

// Update applies a partial patch to an owned repo. Only provided (non-empty)
// fields change.
func (s *Service) Update(ctx context.Context, req UpdateRepoRequest) (*storage.IdeaRepo, error) {
	if req.CallerID == "" {
		return nil, NewUnauthorizedError("authentication required")
	}
	id, err := parseRepoID(req.RepoID)
	if err != nil {
		return nil, err
	}
	existing, err := s.storage.GetRepo(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, NewNotFoundError("repoId", "repository not found")
		}
		return nil, err
	}
	if existing.OwnerID != req.CallerID {
		return nil, NewAccessDeniedError("access denied")
	}

	patch := storage.UpdateRepoRequest{RepoID: id}
	if req.Name != "" {
		patch.Name = &req.Name
	}
	if req.Description != "" {
		patch.Description = &req.Description
	}
	if req.Visibility != "" {
		if req.Visibility != VisibilityPublic && req.Visibility != VisibilityPrivate {
			return nil, NewValidationError("visibility", "visibility must be public or private")
		}
		patch.Visibility = &req.Visibility
	}
	if req.Category != "" {
		patch.Category = &req.Category
	}
	if len(req.Tags) > 0 {
		patch.Tags = req.Tags
	}
	if len(req.Content) > 0 && string(req.Content) != "null" {
		patch.Content = req.Content
	}

	updated, err := s.storage.UpdateRepo(ctx, patch)
	if err != nil {
		log.Error().Err(err).Str("repoID", req.RepoID).Msg("Failed to update repo")
		return nil, err
	}
	return updated, nil
}

// Delete removes an owned repo. Hard delete; fork children keep their
// forkedFrom pointer and must tolerate a missing parent.
func (s *Service) Delete(ctx context.Context, callerID, repoID string) error {
	if callerID == "" {
		return NewUnauthorizedError("authentication required")
	}
	id, err := parseRepoID(repoID)
	if err != nil {
		return err
	}
	existing, err := s.storage.GetRepo(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return NewNotFoundError("repoId", "repository not found")
		}
		return err
	}
	if existing.OwnerID != callerID {
		return NewAccessDeniedError("access denied")
	}
	log.Info().Str("repoID", repoID).Str("ownerID", callerID).Msg("Deleting repo")
	return s.storage.DeleteRepo(ctx, id)
}

// ToggleStar flips the caller's star on a repo and returns the new state.
func (s *Service) ToggleStar(ctx context.Context, callerID, repoID string) (bool, int, error) {
	if callerID == "" {
		return false, 0, NewUnauthorizedError("authentication required")
	}
	id, err := parseRepoID(repoID)
	if err != nil {
		return false, 0, err
	}
	starred, count, err := s.storage.ToggleStar(ctx, id, callerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, 0, NewNotFoundError("repoId", "repository not found")
		}
		log.Error().Err(err).Str("repoID", repoID).Msg("Failed to toggle star")
		return false, 0, err
	}
	return starred, count, nil
}

// Fork copies a public repo the caller does not own. The copy is public,
// points back at the source, and the source's fork count goes up by one.
func (s *Service) Fork(ctx context.Context, callerID, repoID string) (*storage.IdeaRepo, error) {
	if callerID == "" {
		return nil, NewUnauthorizedError("authentication required")
	}
	id, err := parseRepoID(repoID)
	if err != nil {
		return nil, err
	}
	source, err := s.storage.GetRepo(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, NewNotFoundError("repoId", "repository not found")
		}
		return nil, err
	}
	if source.Visibility != VisibilityPublic {
		return nil, NewAccessDeniedError("can only fork public repositories")
	}
	if source.OwnerID == callerID {
		return nil, NewValidationError("repoId", "cannot fork your own repository")
	}

	forkID := uuid.New()
	sourceID := source.RepoID
	log.Info().Str("sourceID", sourceID.String()).Str("forkID", forkID.String()).Str("ownerID", callerID).Msg("Forking repo")

	fork, err := s.storage.ForkRepo(ctx, source, storage.CreateRepoRequest{
		RepoID:      forkID,
		Name:        source.Name,
		Description: source.Description,
		OwnerID:     callerID,
		Visibility:  VisibilityPublic,
		Category:    source.Category,
		Tags:        source.Tags,
		Content:     source.Content,
		ForkedFrom:  &sourceID,
	})
	if err != nil {
		log.Error().Err(err).Str("sourceID", sourceID.String()).Msg("Failed to fork repo")
		return nil, err
	}
	return fork, nil
}

func parseRepoID(repoID string) (uuid.UUID, error) {
	id, err := uuid.Parse(repoID)
	if err != nil {
		return uuid.Nil, NewValidationError("repoId", "invalid repository id")
	}
	return id, nil
}
