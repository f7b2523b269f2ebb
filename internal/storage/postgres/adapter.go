package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/google/uuid"

	"github.com/ideaforge/ideaforge/server/internal/storage"
)

// isUniqueViolation reports whether err is a uniqueness constraint failure
// (Postgres error class 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// PostgresStorage implements storage.Storage using PostgreSQL via database/sql (pgx driver).
type PostgresStorage struct {
	db *sql.DB
}

// Open returns a *sql.DB using the pgx stdlib driver.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewPostgresStorage opens a connection, applies the schema, and returns the adapter.
func NewPostgresStorage(dsn string) (storage.Storage, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewPostgresStorageWithDB(db)
}

// NewPostgresStorageWithDB constructs a storage adapter from an existing DB connection.
func NewPostgresStorageWithDB(db *sql.DB) (storage.Storage, error) {
	if db == nil {
		return nil, fmt.Errorf("nil db")
	}
	return &PostgresStorage{db: db}, nil
}

// --- Health ---

func (s *PostgresStorage) HealthCheck(ctx context.Context) error {
	row := s.db.QueryRowContext(ctx, "SELECT 1")
	var one int
	return row.Scan(&one)
}

// --- User operations ---

func (s *PostgresStorage) CreateUser(ctx context.Context, req storage.CreateUserRequest) (*storage.User, error) {
	var u storage.User
	u.UserID = req.UserID
	u.Name = req.Name
	u.Email = req.Email
	u.Image = req.Image
	u.Bio = req.Bio
	u.Location = req.Location
	u.Website = req.Website

	row := s.db.QueryRowContext(ctx, `
        INSERT INTO users (user_id, name, email, image, bio, location, website)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING created_at
    `, u.UserID, u.Name, u.Email, u.Image, u.Bio, u.Location, u.Website)
	if err := row.Scan(&u.CreationTime); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStorage) GetUser(ctx context.Context, userID string) (*storage.User, error) {
	var u storage.User
	row := s.db.QueryRowContext(ctx, `
        SELECT user_id, name, email, image, bio, location, website, created_at
        FROM users WHERE user_id=$1
    `, userID)
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

func (s *PostgresStorage) CreateRepo(ctx context.Context, req storage.CreateRepoRequest) (*storage.IdeaRepo, error) {
	if err := s.insertRepo(ctx, s.db, req); err != nil {
		return nil, err
	}
	return s.GetRepo(ctx, req.RepoID)
}

func (s *PostgresStorage) GetRepo(ctx context.Context, repoID uuid.UUID) (*storage.IdeaRepo, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+repoColumns+` FROM repos r JOIN users u ON u.user_id = r.owner_id WHERE r.repo_id=$1`, repoID)
	r, err := scanRepo(row)
	if err != nil {
		return nil, err
	}

	// fork-parent expansion; tolerate a deleted parent
	if r.ForkedFrom != nil {
		var ref storage.RepoRef
		err := s.db.QueryRowContext(ctx, `SELECT repo_id, name, owner_id FROM repos WHERE repo_id=$1`, *r.ForkedFrom).
			Scan(&ref.RepoID, &ref.Name, &ref.OwnerID)
		if err == nil {
			r.ForkedFromRef = &ref
		} else if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
	}

	rows, err := s.db.QueryContext(ctx, `SELECT repo_id FROM repos WHERE forked_from=$1`, repoID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var fid uuid.UUID
		if err := rows.Scan(&fid); err != nil {
			return nil, err
		}
		r.Forks = append(r.Forks, fid)
	}
	return r, rows.Err()
}

func (s *PostgresStorage) ListRepos(ctx context.Context, req storage.ListReposRequest) ([]*storage.IdeaRepo, error) {
	query := `SELECT ` + repoColumns + ` FROM repos r JOIN users u ON u.user_id = r.owner_id`
	var conds []string
	var args []interface{}
	if req.OwnerID != "" {
		args = append(args, req.OwnerID)
		conds = append(conds, fmt.Sprintf("r.owner_id = $%d", len(args)))
	}
	if req.Visibility != "" {
		args = append(args, req.Visibility)
		conds = append(conds, fmt.Sprintf("r.visibility = $%d", len(args)))
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

func (s *PostgresStorage) UpdateRepo(ctx context.Context, req storage.UpdateRepoRequest) (*storage.IdeaRepo, error) {
	sets := []string{"updated_at = now()"}
	var args []interface{}
	add := func(col string, val interface{}) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.Visibility != nil {
		add("visibility", *req.Visibility)
	}
	if req.Category != nil {
		add("category", *req.Category)
	}
	if req.Tags != nil {
		tags, err := json.Marshal(req.Tags)
		if err != nil {
			return nil, err
		}
		add("tags", string(tags))
	}
	if len(req.Content) > 0 {
		add("content", string(req.Content))
	}
	args = append(args, req.RepoID)

	res, err := s.db.ExecContext(ctx, fmt.Sprintf(`UPDATE repos SET %s WHERE repo_id = $%d`, strings.Join(sets, ", "), len(args)), args...)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, storage.ErrNotFound
	}
	return s.GetRepo(ctx, req.RepoID)
}

func (s *PostgresStorage) DeleteRepo(ctx context.Context, repoID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM repos WHERE repo_id=$1`, repoID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *PostgresStorage) IncrementViewCount(ctx context.Context, repoID uuid.UUID) (int, error) {
	var views int
	err := s.db.QueryRowContext(ctx, `UPDATE repos SET view_count = view_count + 1 WHERE repo_id=$1 RETURNING view_count`, repoID).Scan(&views)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, storage.ErrNotFound
	}
	return views, err
}

func (s *PostgresStorage) ToggleStar(ctx context.Context, repoID uuid.UUID, userID string) (bool, int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	if err := tx.QueryRowContext(ctx, `SELECT 1 FROM repos WHERE repo_id=$1 FOR UPDATE`, repoID).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, 0, storage.ErrNotFound
		}
		return false, 0, err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM repo_stars WHERE repo_id=$1 AND user_id=$2`, repoID, userID)
	if err != nil {
		return false, 0, err
	}
	removed, _ := res.RowsAffected()

	var starred bool
	var count int
	if removed > 0 {
		starred = false
		err = tx.QueryRowContext(ctx, `UPDATE repos SET star_count = GREATEST(star_count - 1, 0) WHERE repo_id=$1 RETURNING star_count`, repoID).Scan(&count)
	} else {
		if _, err = tx.ExecContext(ctx, `INSERT INTO repo_stars (repo_id, user_id) VALUES ($1,$2)`, repoID, userID); err != nil {
			return false, 0, err
		}
		starred = true
		err = tx.QueryRowContext(ctx, `UPDATE repos SET star_count = star_count + 1 WHERE repo_id=$1 RETURNING star_count`, repoID).Scan(&count)
	}
	if err != nil {
		return false, 0, err
	}
	if err := tx.Commit(); err != nil {
		return false, 0, err
	}
	return starred, count, nil
}

func (s *PostgresStorage) ForkRepo(ctx context.Context, source *storage.IdeaRepo, req storage.CreateRepoRequest) (*storage.IdeaRepo, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.insertRepo(ctx, tx, req); err != nil {
		return nil, err
	}
	res, err := tx.ExecContext(ctx, `UPDATE repos SET fork_count = fork_count + 1 WHERE repo_id=$1`, source.RepoID)
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

func (s *PostgresStorage) insertRepo(ctx context.Context, db execer, req storage.CreateRepoRequest) error {
	tags, err := json.Marshal(req.Tags)
	if err != nil {
		return err
	}
	content := req.Content
	if len(content) == 0 {
		content = []byte("{}")
	}
	_, err = db.ExecContext(ctx, `INSERT INTO repos
        (repo_id, name, description, owner_id, visibility, category, tags, content, forked_from)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		req.RepoID, req.Name, req.Description, req.OwnerID, req.Visibility, req.Category,
		string(tags), string(content), req.ForkedFrom)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRepo(row rowScanner) (*storage.IdeaRepo, error) {
	var r storage.IdeaRepo
	var tags, content []byte
	var forkedFrom uuid.NullUUID
	owner := storage.UserSummary{}
	err := row.Scan(&r.RepoID, &r.Name, &r.Description, &r.OwnerID, &r.Visibility, &r.Category, &tags, &content,
		&forkedFrom, &r.StarCount, &r.ForkCount, &r.ViewCount, &r.CreatedAt, &r.UpdatedAt,
		&owner.Name, &owner.Email, &owner.Image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(tags, &r.Tags); err != nil {
		return nil, err
	}
	r.Content = json.RawMessage(content)
	if forkedFrom.Valid {
		fid := forkedFrom.UUID
		r.ForkedFrom = &fid
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
