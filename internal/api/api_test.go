package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ideaforge/ideaforge/server/internal/auth"
	"github.com/ideaforge/ideaforge/server/internal/storage"
	"github.com/ideaforge/ideaforge/server/internal/storage/sqlite"
)

// failingGen simulates an unreachable generation provider.
type failingGen struct{}

func (failingGen) Generate(ctx context.Context, prompt string) (string, error) {
	return "", errors.New("provider unreachable")
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := sqlite.NewSqliteStorage(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	for _, id := range []string{"alice", "bob"} {
		_, err := store.CreateUser(context.Background(), storage.CreateUserRequest{
			UserID: id, Name: id, Email: id + "@example.com",
		})
		require.NoError(t, err)
	}
	srv := httptest.NewServer(NewRouter(store, auth.NewDevAuthenticator(), failingGen{}))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, payload interface{}) (*http.Response, []byte) {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

const (
	aliceToken = "sk_local_ideaforge_alice"
	bobToken   = "sk_local_ideaforge_bob"
)

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/health/db", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "healthy")
}

func TestAnalyze_ShortIdeaRejected(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/analyze", "", map[string]string{
		"idea": "0123456789012345678", // 19 chars
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errBody struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &errBody))
	require.Equal(t, "Idea too short for analysis", errBody.Error)
}

func TestAnalyze_TwentyCharsDegradesTo200(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/analyze", "", map[string]string{
		"idea": "01234567890123456789", // 20 chars
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Clarity     int      `json:"clarity"`
		MarketFit   int      `json:"marketFit"`
		Competition []string `json:"competition"`
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Equal(t, 72, out.Clarity)
	require.Equal(t, 68, out.MarketFit)
	require.NotEmpty(t, out.Competition)
	require.NotEmpty(t, out.Suggestions)
}

func TestEvolve_ProviderFailureStill200(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/evolve", "", map[string]string{
		"idea": "study group matching", "goal": "growth",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Variants []struct {
			Title string `json:"title"`
		} `json:"variants"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.Variants, 3)
	require.Equal(t, "High-Impact Community Platform", out.Variants[0].Title)
	require.Equal(t, "Lean MVP Launch Strategy", out.Variants[1].Title)
	require.Equal(t, "Balanced Growth Platform", out.Variants[2].Title)
}

func TestEvolve_MissingGoalRejected(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/evolve", "", map[string]string{"idea": "x"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

type repoEnvelope struct {
	Repo storage.IdeaRepo `json:"repo"`
}

func TestDebate_MalformedBodyStill200(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/ai-debate", "application/json", bytes.NewReader([]byte("not json")))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Messages, 6)
}

func TestMix_MalformedBodyStill200(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/idea-mixer", "application/json", bytes.NewReader([]byte("{")))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		MixedIdea string `json:"mixedIdea"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.MixedIdea)
}

func TestRepoLifecycle(t *testing.T) {
	srv := newTestServer(t)

	// create requires auth
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/repos", "", map[string]interface{}{
		"name": "idea", "description": "desc",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/repos", aliceToken, map[string]interface{}{
		"name": "idea", "description": "desc", "tags": []string{"t1"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created repoEnvelope
	require.NoError(t, json.Unmarshal(body, &created))
	repoURL := srv.URL + "/api/repos/" + created.Repo.RepoID.String()

	// anonymous read bumps the view counter
	resp, body = doJSON(t, http.MethodGet, repoURL, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got repoEnvelope
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, 1, got.Repo.ViewCount)

	// only the owner may update
	resp, _ = doJSON(t, http.MethodPut, repoURL, bobToken, map[string]string{"name": "stolen"})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body = doJSON(t, http.MethodPut, repoURL, aliceToken, map[string]string{"name": "renamed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, "renamed", got.Repo.Name)

	// star toggle
	resp, body = doJSON(t, http.MethodPost, repoURL+"/star", bobToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var star struct {
		Starred   bool `json:"starred"`
		StarCount int  `json:"starCount"`
	}
	require.NoError(t, json.Unmarshal(body, &star))
	require.True(t, star.Starred)
	require.Equal(t, 1, star.StarCount)

	// self-fork is a 400, fork by someone else is a 201
	resp, _ = doJSON(t, http.MethodPost, repoURL+"/fork", aliceToken, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = doJSON(t, http.MethodPost, repoURL+"/fork", bobToken, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var fork repoEnvelope
	require.NoError(t, json.Unmarshal(body, &fork))
	require.Equal(t, "bob", fork.Repo.OwnerID)
	require.NotNil(t, fork.Repo.ForkedFrom)

	// delete, then reads 404
	resp, _ = doJSON(t, http.MethodDelete, repoURL, aliceToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, http.MethodGet, repoURL, "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPrivateRepoAccess(t *testing.T) {
	srv := newTestServer(t)

	_, body := doJSON(t, http.MethodPost, srv.URL+"/api/repos", aliceToken, map[string]interface{}{
		"name": "secret", "description": "private idea", "visibility": "private",
	})
	var created repoEnvelope
	require.NoError(t, json.Unmarshal(body, &created))
	repoURL := srv.URL + "/api/repos/" + created.Repo.RepoID.String()

	resp, _ := doJSON(t, http.MethodGet, repoURL, bobToken, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, repoURL, aliceToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// forking a private repo is forbidden
	resp, _ = doJSON(t, http.MethodPost, repoURL+"/fork", bobToken, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestListRepos_OwnerFilter(t *testing.T) {
	srv := newTestServer(t)

	for _, v := range []string{"public", "private"} {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/repos", aliceToken, map[string]interface{}{
			"name": "repo-" + v, "description": "d", "visibility": v,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var listing struct {
		Repos []storage.IdeaRepo `json:"repos"`
		Count int                `json:"count"`
	}

	// stranger sees only alice's public repos
	_, body := doJSON(t, http.MethodGet, srv.URL+"/api/repos?userId=alice", bobToken, nil)
	require.NoError(t, json.Unmarshal(body, &listing))
	require.Equal(t, 1, listing.Count)
	require.Equal(t, "public", listing.Repos[0].Visibility)

	// owner sees both
	_, body = doJSON(t, http.MethodGet, srv.URL+"/api/repos?userId=alice", aliceToken, nil)
	require.NoError(t, json.Unmarshal(body, &listing))
	require.Equal(t, 2, listing.Count)
}

func TestUsersEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/users", "", map[string]string{
		"userId": "carol", "name": "Carol", "email": "carol@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// second create with the same id conflicts
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/users", "", map[string]string{
		"userId": "carol", "name": "Carol", "email": "carol+2@example.com",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Contains(t, string(body), "user already exists")

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/users/carol", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var u storage.User
	require.NoError(t, json.Unmarshal(body, &u))
	require.Equal(t, "carol@example.com", u.Email)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/users/nobody", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
