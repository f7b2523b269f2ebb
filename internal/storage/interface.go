package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by adapters when a row does not exist.
var ErrNotFound = errors.New("storage: not found")

// ErrDuplicate is returned by adapters when an insert hits a uniqueness
// constraint (user id or email already taken).
var ErrDuplicate = errors.New("storage: duplicate")

// User represents an account consumed by reference. The real account
// provider is external; these rows exist so owner expansion works.
type User struct {
	UserID       string    `json:"userId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Image        *string   `json:"image,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Location     string    `json:"location,omitempty"`
	Website      string    `json:"website,omitempty"`
	CreationTime time.Time `json:"creationTime"`
}

// UserSummary is the owner expansion embedded in repo responses.
type UserSummary struct {
	UserID string  `json:"userId"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Image  *string `json:"image,omitempty"`
}

// RepoRef is the shallow fork-parent expansion.
type RepoRef struct {
	RepoID  uuid.UUID `json:"repoId"`
	Name    string    `json:"name"`
	OwnerID string    `json:"ownerId"`
}

// IdeaRepo is the persisted unit holding a submitted idea plus generated artifacts.
type IdeaRepo struct {
	RepoID      uuid.UUID       `json:"repoId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	OwnerID     string          `json:"ownerId"`
	Visibility  string          `json:"visibility"`
	Category    string          `json:"category"`
	Tags        []string        `json:"tags"`
	Content     json.RawMessage `json:"content"`
	ForkedFrom  *uuid.UUID      `json:"forkedFrom,omitempty"`
	Forks       []uuid.UUID     `json:"forks,omitempty"`
	StarCount   int             `json:"starCount"`
	ForkCount   int             `json:"forkCount"`
	ViewCount   int             `json:"viewCount"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	// Expanded references, populated on reads.
	Owner         *UserSummary `json:"owner,omitempty"`
	ForkedFromRef *RepoRef     `json:"forkedFromRef,omitempty"`
}

// CreateUserRequest represents the request to create a user row.
type CreateUserRequest struct {
	UserID   string  `json:"userId"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Image    *string `json:"image,omitempty"`
	Bio      string  `json:"bio,omitempty"`
	Location string  `json:"location,omitempty"`
	Website  string  `json:"website,omitempty"`
}

// CreateRepoRequest represents the request to create a repo.
type CreateRepoRequest struct {
	RepoID      uuid.UUID       `json:"repoId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	OwnerID     string          `json:"ownerId"`
	Visibility  string          `json:"visibility"`
	Category    string          `json:"category"`
	Tags        []string        `json:"tags"`
	Content     json.RawMessage `json:"content"`
	ForkedFrom  *uuid.UUID      `json:"forkedFrom,omitempty"`
}

// UpdateRepoRequest carries a partial patch; nil fields are left unchanged.
type UpdateRepoRequest struct {
	RepoID      uuid.UUID       `json:"repoId"`
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	Visibility  *string         `json:"visibility,omitempty"`
	Category    *string         `json:"category,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Content     json.RawMessage `json:"content,omitempty"`
}

// ListReposRequest filters and orders a repo listing.
type ListReposRequest struct {
	OwnerID    string `json:"ownerId,omitempty"`
	Visibility string `json:"visibility,omitempty"`
	SortColumn string `json:"sortColumn"`
	Descending bool   `json:"descending"`
	Limit      int    `json:"limit"`
}

// Storage is the persistence port for the service. Counter updates must be
// atomic at the adapter level: a star toggle runs in one transaction and the
// view counter uses a single-statement increment.
type Storage interface {
	HealthCheck(ctx context.Context) error

	// Users
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
	GetUser(ctx context.Context, userID string) (*User, error)

	// Repos
	CreateRepo(ctx context.Context, req CreateRepoRequest) (*IdeaRepo, error)
	GetRepo(ctx context.Context, repoID uuid.UUID) (*IdeaRepo, error)
	ListRepos(ctx context.Context, req ListReposRequest) ([]*IdeaRepo, error)
	UpdateRepo(ctx context.Context, req UpdateRepoRequest) (*IdeaRepo, error)
	DeleteRepo(ctx context.Context, repoID uuid.UUID) error

	// IncrementViewCount bumps the view counter and returns the new value.
	IncrementViewCount(ctx context.Context, repoID uuid.UUID) (int, error)

	// ToggleStar flips membership of userID in the repo's star set and
	// adjusts the denormalized count (floored at zero) in one transaction.
	ToggleStar(ctx context.Context, repoID uuid.UUID, userID string) (starred bool, starCount int, err error)

	// ForkRepo inserts the fork and bumps the source's fork count in one
	// transaction, returning the new entity.
	ForkRepo(ctx context.Context, source *IdeaRepo, req CreateRepoRequest) (*IdeaRepo, error)
}
