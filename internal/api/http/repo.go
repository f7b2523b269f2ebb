package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/ideaforge/ideaforge/server/internal/api/respond"
	"github.com/ideaforge/ideaforge/server/internal/auth"
	repocore "github.com/ideaforge/ideaforge/server/internal/core/repo"
)

// RepoHandler provides HTTP transport for idea repository operations.
type RepoHandler struct {
	repoService *repocore.Service
	auth        auth.Authenticator
}

func NewRepoHandler(svc *repocore.Service, a auth.Authenticator) *RepoHandler {
	return &RepoHandler{repoService: svc, auth: a}
}

// writeDomainError maps domain errors to HTTP status codes. Unrecognized
// errors collapse to a generic 500 with a server-side log line.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case repocore.IsValidationError(err):
		respond.WriteBadRequest(w, err.Error())
	case repocore.IsUnauthorizedError(err):
		respond.WriteUnauthorized(w, err.Error())
	case repocore.IsAccessDeniedError(err):
		respond.WriteForbidden(w, err.Error())
	case repocore.IsNotFoundError(err):
		respond.WriteNotFound(w, err.Error())
	case repocore.IsConflictError(err):
		respond.WriteError(w, http.StatusConflict, err.Error())
	default:
		log.Error().Err(err).Msg("repository operation failed")
		respond.WriteInternalError(w, "Internal server error")
	}
}

// CreateRepo POST /api/repos
func (h *RepoHandler) CreateRepo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Visibility  string          `json:"visibility,omitempty"`
		Category    string          `json:"category,omitempty"`
		Tags        []string        `json:"tags,omitempty"`
		Content     json.RawMessage `json:"content,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	created, err := h.repoService.Create(r.Context(), repocore.CreateRepoRequest{
		CallerID:    auth.CallerID(r, h.auth),
		Name:        req.Name,
		Description: req.Description,
		Visibility:  req.Visibility,
		Category:    req.Category,
		Tags:        req.Tags,
		Content:     req.Content,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, map[string]interface{}{"repo": created})
}

// GetRepo GET /api/repos/{repoId}
func (h *RepoHandler) GetRepo(w http.ResponseWriter, r *http.Request) {
	repoID := mux.Vars(r)["repoId"]
	repo, err := h.repoService.Get(r.Context(), auth.CallerID(r, h.auth), repoID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"repo": repo})
}

// ListRepos GET /api/repos
func (h *RepoHandler) ListRepos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	repos, err := h.repoService.List(r.Context(), repocore.ListReposQuery{
		CallerID:   auth.CallerID(r, h.auth),
		OwnerID:    q.Get("userId"),
		Visibility: q.Get("visibility"),
		Sort:       q.Get("sort"),
		Order:      q.Get("order"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"repos": repos, "count": len(repos)})
}

// UpdateRepo PUT /api/repos/{repoId}
func (h *RepoHandler) UpdateRepo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string          `json:"name,omitempty"`
		Description string          `json:"description,omitempty"`
		Visibility  string          `json:"visibility,omitempty"`
		Category    string          `json:"category,omitempty"`
		Tags        []string        `json:"tags,omitempty"`
		Content     json.RawMessage `json:"content,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	updated, err := h.repoService.Update(r.Context(), repocore.UpdateRepoRequest{
		CallerID:    auth.CallerID(r, h.auth),
		RepoID:      mux.Vars(r)["repoId"],
		Name:        req.Name,
		Description: req.Description,
		Visibility:  req.Visibility,
		Category:    req.Category,
		Tags:        req.Tags,
		Content:     req.Content,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"repo": updated})
}

// DeleteRepo DELETE /api/repos/{repoId}
func (h *RepoHandler) DeleteRepo(w http.ResponseWriter, r *http.Request) {
	repoID := mux.Vars(r)["repoId"]
	if err := h.repoService.Delete(r.Context(), auth.CallerID(r, h.auth), repoID); err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"message": "Repository deleted successfully"})
}

// ToggleStar POST /api/repos/{repoId}/star
func (h *RepoHandler) ToggleStar(w http.ResponseWriter, r *http.Request) {
	repoID := mux.Vars(r)["repoId"]
	starred, count, err := h.repoService.ToggleStar(r.Context(), auth.CallerID(r, h.auth), repoID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"starred": starred, "starCount": count})
}

// ForkRepo POST /api/repos/{repoId}/fork
func (h *RepoHandler) ForkRepo(w http.ResponseWriter, r *http.Request) {
	repoID := mux.Vars(r)["repoId"]
	fork, err := h.repoService.Fork(r.Context(), auth.CallerID(r, h.auth), repoID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, map[string]interface{}{"repo": fork})
}
