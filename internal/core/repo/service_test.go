package repo

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ideaforge/ideaforge/server/internal/storage"
	"github.com/ideaforge/ideaforge/server/internal/storage/sqlite"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := sqlite.NewSqliteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	for _, id := range []string{"alice", "bob"} {
		_, err := store.CreateUser(context.Background(), storage.CreateUserRequest{
			UserID: id,
			Name:   id,
			Email:  id + "@example.com",
		})
		require.NoError(t, err)
	}
	return NewService(store)
}

func createRepo(t *testing.T, s *Service, owner, visibility string) *storage.IdeaRepo {
	t.Helper()
	r, err := s.Create(context.Background(), CreateRepoRequest{
		CallerID:    owner,
		Name:        "study-matcher",
		Description: "AI-powered study group matching",
		Visibility:  visibility,
		Tags:        []string{"edtech", "social"},
		Content:     json.RawMessage(`{"originalIdea":"match students into study groups"}`),
	})
	require.NoError(t, err)
	return r
}

func TestCreate_RequiresAuth(t *testing.T) {
	s := newTestService(t)
	_, err := s.Create(context.Background(), CreateRepoRequest{Name: "n", Description: "d"})
	require.True(t, IsUnauthorizedError(err))
}

func TestCreate_RequiresNameAndDescription(t *testing.T) {
	s := newTestService(t)
	_, err := s.Create(context.Background(), CreateRepoRequest{CallerID: "alice", Name: "n"})
	require.True(t, IsValidationError(err))
	_, err = s.Create(context.Background(), CreateRepoRequest{CallerID: "alice", Description: "d"})
	require.True(t, IsValidationError(err))
}

func TestCreate_Defaults(t *testing.T) {
	s := newTestService(t)
	r, err := s.Create(context.Background(), CreateRepoRequest{
		CallerID:    "alice",
		Name:        "bare",
		Description: "no optional fields",
	})
	require.NoError(t, err)
	require.Equal(t, VisibilityPublic, r.Visibility)
	require.Equal(t, "general", r.Category)
	require.Equal(t, []string{}, r.Tags)
	require.JSONEq(t, `{}`, string(r.Content))
	require.Equal(t, "alice", r.OwnerID)
	require.NotNil(t, r.Owner)
	require.Equal(t, "alice@example.com", r.Owner.Email)
}

func TestCreate_RejectsBadVisibility(t *testing.T) {
	s := newTestService(t)
	_, err := s.Create(context.Background(), CreateRepoRequest{
		CallerID: "alice", Name: "n", Description: "d", Visibility: "secret",
	})
	require.True(t, IsValidationError(err))
}

func TestGet_IncrementsViewCountEveryRead(t *testing.T) {
	s := newTestService(t)
	created := createRepo(t, s, "alice", VisibilityPublic)

	for i := 1; i <= 3; i++ {
		got, err := s.Get(context.Background(), "", created.RepoID.String())
		require.NoError(t, err)
		require.Equal(t, i, got.ViewCount)
	}

	// the owner's own reads count too
	got, err := s.Get(context.Background(), "alice", created.RepoID.String())
	require.NoError(t, err)
	require.Equal(t, 4, got.ViewCount)
}

func TestGet_PrivateVisibility(t *testing.T) {
	s := newTestService(t)
	created := createRepo(t, s, "alice", VisibilityPrivate)

	_, err := s.Get(context.Background(), "bob", created.RepoID.String())
	require.True(t, IsAccessDeniedError(err))
	_, err = s.Get(context.Background(), "", created.RepoID.String())
	require.True(t, IsAccessDeniedError(err))

	got, err := s.Get(context.Background(), "alice", created.RepoID.String())
	require.NoError(t, err)
	require.Equal(t, 1, got.ViewCount)
}

func TestGet_Errors(t *testing.T) {
	s := newTestService(t)
	_, err := s.Get(context.Background(), "", "not-a-uuid")
	require.True(t, IsValidationError(err))
	_, err = s.Get(context.Background(), "", "123e4567-e89b-12d3-a456-426614174000")
	require.True(t, IsNotFoundError(err))
}

func TestList_VisibilityComposition(t *testing.T) {
	s := newTestService(t)
	createRepo(t, s, "alice", VisibilityPublic)
	createRepo(t, s, "alice", VisibilityPrivate)
	createRepo(t, s, "bob", VisibilityPublic)

	// owner browsing their own repos sees public and private
	mine, err := s.List(context.Background(), ListReposQuery{CallerID: "alice", OwnerID: "alice"})
	require.NoError(t, err)
	require.Len(t, mine, 2)

	// someone else browsing alice's repos only sees public, even when they
	// ask for private explicitly
	theirs, err := s.List(context.Background(), ListReposQuery{CallerID: "bob", OwnerID: "alice", Visibility: VisibilityPrivate})
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	require.Equal(t, VisibilityPublic, theirs[0].Visibility)

	// anonymous default feed is public-only
	feed, err := s.List(context.Background(), ListReposQuery{})
	require.NoError(t, err)
	require.Len(t, feed, 2)
	for _, r := range feed {
		require.Equal(t, VisibilityPublic, r.Visibility)
	}
}

func TestList_SortWhitelist(t *testing.T) {
	s := newTestService(t)
	createRepo(t, s, "alice", VisibilityPublic)

	// unknown sort falls back to createdAt instead of erroring
	repos, err := s.List(context.Background(), ListReposQuery{Sort: "owner_id; DROP TABLE repos"})
	require.NoError(t, err)
	require.Len(t, repos, 1)
}

func TestUpdate_TruthyPatchSemantics(t *testing.T) {
	s := newTestService(t)
	created := createRepo(t, s, "alice", VisibilityPublic)

	// empty name is "not provided" and leaves the stored value unchanged
	updated, err := s.Update(context.Background(), UpdateRepoRequest{
		CallerID: "alice", RepoID: created.RepoID.String(),
		Name: "", Description: "still matching students",
	})
	require.NoError(t, err)
	require.Equal(t, "study-matcher", updated.Name)
	require.Equal(t, "still matching students", updated.Description)

	updated, err = s.Update(context.Background(), UpdateRepoRequest{
		CallerID: "alice", RepoID: created.RepoID.String(), Name: "renamed",
	})
	require.NoError(t, err)
	require.Equal(t, "renamed", updated.Name)
	require.Equal(t, "still matching students", updated.Description)
}

func TestUpdate_OwnerOnly(t *testing.T) {
	s := newTestService(t)
	created := createRepo(t, s, "alice", VisibilityPublic)

	_, err := s.Update(context.Background(), UpdateRepoRequest{RepoID: created.RepoID.String(), Name: "x"})
	require.True(t, IsUnauthorizedError(err))

	_, err = s.Update(context.Background(), UpdateRepoRequest{CallerID: "bob", RepoID: created.RepoID.String(), Name: "x"})
	require.True(t, IsAccessDeniedError(err))
}

func TestUpdate_RejectsBadVisibility(t *testing.T) {
	s := newTestService(t)
	created := createRepo(t, s, "alice", VisibilityPublic)
	_, err := s.Update(context.Background(), UpdateRepoRequest{
		CallerID: "alice", RepoID: created.RepoID.String(), Visibility: "hidden",
	})
	require.True(t, IsValidationError(err))
}

func TestToggleStar_IsItsOwnInverse(t *testing.T) {
	s := newTestService(t)
	created := createRepo(t, s, "alice", VisibilityPublic)
	ctx := context.Background()

	starred, count, err := s.ToggleStar(ctx, "bob", created.RepoID.String())
	require.NoError(t, err)
	require.True(t, starred)
	require.Equal(t, 1, count)

	starred, count, err = s.ToggleStar(ctx, "bob", created.RepoID.String())
	require.NoError(t, err)
	require.False(t, starred)
	require.Equal(t, 0, count)
}

func TestToggleStar_RequiresAuth(t *testing.T) {
	s := newTestService(t)
	created := createRepo(t, s, "alice", VisibilityPublic)
	_, _, err := s.ToggleStar(context.Background(), "", created.RepoID.String())
	require.True(t, IsUnauthorizedError(err))
}

func TestFork_Semantics(t *testing.T) {
	s := newTestService(t)
	created := createRepo(t, s, "alice", VisibilityPublic)
	ctx := context.Background()

	fork, err := s.Fork(ctx, "bob", created.RepoID.String())
	require.NoError(t, err)
	require.Equal(t, "bob", fork.OwnerID)
	require.Equal(t, VisibilityPublic, fork.Visibility)
	require.NotNil(t, fork.ForkedFrom)
	require.Equal(t, created.RepoID, *fork.ForkedFrom)
	require.JSONEq(t, string(created.Content), string(fork.Content))
	require.Equal(t, created.Tags, fork.Tags)
	require.NotNil(t, fork.ForkedFromRef)
	require.Equal(t, "alice", fork.ForkedFromRef.OwnerID)

	source, err := s.Get(ctx, "alice", created.RepoID.String())
	require.NoError(t, err)
	require.Equal(t, 1, source.ForkCount)
	require.Contains(t, source.Forks, fork.RepoID)
}

func TestFork_Rules(t *testing.T) {
	s := newTestService(t)
	public := createRepo(t, s, "alice", VisibilityPublic)
	private := createRepo(t, s, "alice", VisibilityPrivate)
	ctx := context.Background()

	_, err := s.Fork(ctx, "", public.RepoID.String())
	require.True(t, IsUnauthorizedError(err))

	_, err = s.Fork(ctx, "alice", public.RepoID.String())
	require.True(t, IsValidationError(err))
	require.EqualError(t, err, "cannot fork your own repository")

	_, err = s.Fork(ctx, "bob", private.RepoID.String())
	require.True(t, IsAccessDeniedError(err))
}

func TestDelete_OwnerOnlyAndForksSurvive(t *testing.T) {
	s := newTestService(t)
	created := createRepo(t, s, "alice", VisibilityPublic)
	ctx := context.Background()

	fork, err := s.Fork(ctx, "bob", created.RepoID.String())
	require.NoError(t, err)

	require.True(t, IsAccessDeniedError(s.Delete(ctx, "bob", created.RepoID.String())))
	require.NoError(t, s.Delete(ctx, "alice", created.RepoID.String()))

	_, err = s.Get(ctx, "alice", created.RepoID.String())
	require.True(t, IsNotFoundError(err))

	// the fork keeps its dangling parent pointer and stays readable
	kept, err := s.Get(ctx, "bob", fork.RepoID.String())
	require.NoError(t, err)
	require.NotNil(t, kept.ForkedFrom)
	require.Nil(t, kept.ForkedFromRef)
}
