package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/ideaforge/ideaforge/server/internal/storage"
)

// isUniqueViolation reports whether err is a uniqueness constraint failure.
func isUniqueViolation(err error) bool {
	var se *sqlitedrv.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	return false
}

// SqliteStorage implements storage.Storage for the local build target.
type SqliteStorage struct {
	db *sql.DB
}

// DB exposes the underlying *sql.DB connection (local-only use case).
func (s *SqliteStorage) DB() *sql.DB {
	return s.db
}

// NewSqliteStorage opens (or creates) a SQLite database file and applies the schema.
func NewSqliteStorage(path string) (storage.Storage, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewSqliteStorageWithDB(db)
}

// NewSqliteStorageWithDB allows wiring with an existing connection (used by factory and tests).
func NewSqliteStorageWithDB(db *sql.DB) (storage.Storage, error) {
	if db == nil {
		return nil, fmt.Errorf("nil db")
	}
	return &SqliteStorage{db: db}, nil
}

// --- Health ---

func (s *SqliteStorage) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// --- User operations ---

func (s *SqliteStorage) CreateUser(ctx context.Context, req storage.CreateUserRequest) (*storage.User, error) {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `INSERT INTO users (user_id, name, email, image, bio, location, website, created_at) VALUES (?,?,?,?,?,?,?,?)`,
		req.UserID, req.Name, req.Email, req.Image, req.Bio, req.Location, req.Website, now)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}
		return nil, err
	}
	return &storage.User{
		UserID:       req.UserID,
		Name:         req.Name,
		Email:        req.Email,
		Image:        req.Image,
		Bio:          req.Bio,
		Location:     req.Location,
		Website:      req.Website,
		CreationTime: now,
	}, nil
}

func (s *SqliteStorage) GetUser(ctx context.Context, userID string) (*storage.User, error) {
	var u storage.User
	row := s.db.QueryRowContext(ctx, `SELECT user_id, name, email, image, bio, location, website, created_at FROM users WHERE user_id = ?`, userID)
	if err := row.Scan(&u.UserID, &u.Name, &u.Email, &u.Image, &u.Bio, &u.Location, &u.Website, &u.CreationTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- Repo operations ---

const repoColumns = `r.repo_id, r.name, r.description, r.owner_id, r.visibility, r.category, r.tags, r.content,
    r.forked_from, r.star_count, r.fork_count, r.view_count, r.created_at, r.updated_at,
    u.name, u.email, u.image`

func (s *SqliteStorage) CreateRepo(ctx context.Context, req storage.CreateRepoRequest) (*storage.IdeaRepo, error) {
	now := time.Now().UTC()
	if err := insertRepo(ctx, s.db, req, now); err != nil {
		return nil, err
	}
	return s.GetRepo(ctx, req.RepoID)
}

func (s *SqliteStorage) GetRepo(ctx context.Context, repoID uuid.UUID) (*storage.IdeaRepo, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+repoColumns+` FROM repos r JOIN users u ON u.user_id = r.owner_id WHERE r.repo_id = ?`, repoID.String())
	r, err := scanRepo(row)
	if err != nil {
		return nil, err
	}

	// fork-parent expansion; tolerate a deleted parent
	if r.ForkedFrom != nil {
		var ref storage.RepoRef
		var id string
		err := s.db.QueryRowContext(ctx, `SELECT repo_id, name, owner_id FROM repos WHERE repo_id = ?`, r.ForkedFrom.String()).
			Scan(&id, &ref.Name, &ref.OwnerID)
		if err == nil {
			ref.RepoID, _ = uuid.Parse(id)
			r.ForkedFromRef = &ref
		} else if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
	}

	rows, err := s.db.QueryContext(ctx, `SELECT repo_id FROM repos WHERE forked_from = ?`, repoID.String())
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		if fid, err := uuid.Parse(id); err == nil {
			r.Forks = append(r.Forks, fid)
		}
	}
	return r, rows.Err()
}

func (s *SqliteStorage) ListRepos(ctx context.Context, req storage.ListReposRequest) ([]*storage.IdeaRepo, error) {
	query := `SELECT ` + repoColumns + ` FROM repos r JOIN users u ON u.user_id = r.owner_id`
	var conds []string
	var args []interface{}
	if req.OwnerID != "" {
		conds = append(conds, "r.owner_id = ?")
		args = append(args, req.OwnerID)
	}
	if req.Visibility != "" {
		conds = append(conds, "r.visibility = ?")
		args = append(args, req.Visibility)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY r." + sortColumn(req.SortColumn)
	if req.Descending {
		query += " DESC"
	} else {
		query += " ASC"
	}
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	query += fmt.Sprintf(" LIMIT %d", limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*storage.IdeaRepo
	for rows.Next() {
		r, err := scanRepo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SqliteStorage) UpdateRepo(ctx context.Context, req storage.UpdateRepoRequest) (*storage.IdeaRepo, error) {
	sets := []string{"updated_at = ?"}
	args := []interface{}{time.Now().UTC()}
	if req.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *req.Name)
	}
	if req.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *req.Description)
	}
	if req.Visibility != nil {
		sets = append(sets, "visibility = ?")
		args = append(args, *req.Visibility)
	}
	if req.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *req.Category)
	}
	if req.Tags != nil {
		tags, err := json.Marshal(req.Tags)
		if err != nil {
			return nil, err
		}
		sets = append(sets, "tags = ?")
		args = append(args, string(tags))
	}
	if len(req.Content) > 0 {
		sets = append(sets, "content = ?")
		args = append(args, string(req.Content))
	}
	args = append(args, req.RepoID.String())

	res, err := s.db.ExecContext(ctx, `UPDATE repos SET `+strings.Join(sets, ", ")+` WHERE repo_id = ?`, args...)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, storage.ErrNotFound
	}
	return s.GetRepo(ctx, req.RepoID)
}

func (s *SqliteStorage) DeleteRepo(ctx context.Context, repoID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM repos WHERE repo_id = ?`, repoID.String())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *SqliteStorage) IncrementViewCount(ctx context.Context, repoID uuid.UUID) (int, error) {
	var views int
	err := s.db.QueryRowContext(ctx, `UPDATE repos SET view_count = view_count + 1 WHERE repo_id = ? RETURNING view_count`, repoID.String()).Scan(&views)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, storage.ErrNotFound
	}
	return views, err
}

func (s *SqliteStorage) ToggleStar(ctx context.Context, repoID uuid.UUID, userID string) (bool, int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	if err := tx.QueryRowContext(ctx, `SELECT 1 FROM repos WHERE repo_id = ?`, repoID.String()).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, 0, storage.ErrNotFound
		}
		return false, 0, err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM repo_stars WHERE repo_id = ? AND user_id = ?`, repoID.String(), userID)
	if err != nil {
		return false, 0, err
	}
	removed, _ := res.RowsAffected()

	var starred bool
	var count int
	if removed > 0 {
		starred = false
		err = tx.QueryRowContext(ctx, `UPDATE repos SET star_count = MAX(star_count - 1, 0) WHERE repo_id = ? RETURNING star_count`, repoID.String()).Scan(&count)
	} else {
		if _, err = tx.ExecContext(ctx, `INSERT INTO repo_stars (repo_id, user_id) VALUES (?,?)`, repoID.String(), userID); err != nil {
			return false, 0, err
		}
		starred = true
		err = tx.QueryRowContext(ctx, `UPDATE repos SET star_count = star_count + 1 WHERE repo_id = ? RETURNING star_count`, repoID.String()).Scan(&count)
	}
	if err != nil {
		return false, 0, err
	}
	if err := tx.Commit(); err != nil {
		return false, 0, err
	}
	return starred, count, nil
}

func (s *SqliteStorage) ForkRepo(ctx context.Context, source *storage.IdeaRepo, req storage.CreateRepoRequest) (*storage.IdeaRepo, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	if err := insertRepo(ctx, tx, req, now); err != nil {
		return nil, err
	}
	res, err := tx.ExecContext(ctx, `UPDATE repos SET fork_count = fork_count + 1 WHERE repo_id = ?`, source.RepoID.String())
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, storage.ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return s.GetRepo(ctx, req.RepoID)
}

// --- helpers ---

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func insertRepo(ctx context.Context, db execer, req storage.CreateRepoRequest, now time.Time) error {
	tags, err := json.Marshal(req.Tags)
	if err != nil {
		return err
	}
	content := req.Content
	if len(content) == 0 {
		content = []byte("{}")
	}
	var forkedFrom interface{}
	if req.ForkedFrom != nil {
		forkedFrom = req.ForkedFrom.String()
	}
	_, err = db.ExecContext(ctx, `INSERT INTO repos
        (repo_id, name, description, owner_id, visibility, category, tags, content, forked_from, created_at, updated_at)
        VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		req.RepoID.String(), req.Name, req.Description, req.OwnerID, req.Visibility, req.Category,
		string(tags), string(content), forkedFrom, now, now)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRepo(row rowScanner) (*storage.IdeaRepo, error) {
	var r storage.IdeaRepo
	var id, tags, content string
	var forkedFrom sql.NullString
	owner := storage.UserSummary{}
	err := row.Scan(&id, &r.Name, &r.Description, &r.OwnerID, &r.Visibility, &r.Category, &tags, &content,
		&forkedFrom, &r.StarCount, &r.ForkCount, &r.ViewCount, &r.CreatedAt, &r.UpdatedAt,
		&owner.Name, &owner.Email, &owner.Image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	r.RepoID, err = uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(tags), &r.Tags); err != nil {
		return nil, err
	}
	r.Content = json.RawMessage(content)
	if forkedFrom.Valid {
		if fid, err := uuid.Parse(forkedFrom.String); err == nil {
			r.ForkedFrom = &fid
		}
	}
	owner.UserID = r.OwnerID
	r.Owner = &owner
	return &r, nil
}

// sortColumn re-checks the whitelist at the adapter boundary before the
// column name is interpolated into the query.
func sortColumn(col string) string {
	switch col {
	case "created_at", "updated_at", "star_count", "fork_count", "view_count", "name":
		return col
	default:
		return "created_at"
	}
}
