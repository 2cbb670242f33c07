package repository

import (
	"context"

	"github.com/clipstream/backend/internal/model"
)

type UserRepo struct {
	db DB
}

func NewUserRepo(db DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a new user. Duplicate username or email surfaces as
// ErrConflict via the unique indexes.
func (r *UserRepo) Create(ctx context.Context, u model.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return mapError("insert user", err)
	}
	return nil
}

// FindByID returns a single user by ID.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	query := `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1`

	var u model.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, mapError("select user by id", err)
	}
	return &u, nil
}

// FindByIdentifier returns the user whose email or username matches the
// identifier, case-insensitively.
func (r *UserRepo) FindByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	query := `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE LOWER(email) = LOWER($1) OR LOWER(username) = LOWER($1)`

	var u model.User
	err := r.db.QueryRow(ctx, query, identifier).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, mapError("select user by identifier", err)
	}
	return &u, nil
}

// GetStats returns aggregate statistics from all tables.
func (r *UserRepo) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM channels) AS total_channels,
			(SELECT COUNT(*) FROM videos) AS total_videos,
			(SELECT COUNT(*) FROM comments) AS total_comments,
			(SELECT COALESCE(SUM(view_count), 0) FROM videos) AS total_views`

	var stats model.StatsResponse
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalUsers, &stats.TotalChannels, &stats.TotalVideos,
		&stats.TotalComments, &stats.TotalViews,
	)
	if err != nil {
		return nil, mapError("select stats", err)
	}

	catQuery := `
		SELECT category, COUNT(*) AS total
		FROM videos
		GROUP BY category
		ORDER BY total DESC`

	rows, err := r.db.Query(ctx, catQuery)
	if err != nil {
		return nil, mapError("select category stats", err)
	}
	defer rows.Close()

	stats.TopCategories = make([]model.CategoryCount, 0)
	for rows.Next() {
		var cc model.CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			return nil, mapError("scan category stats", err)
		}
		stats.TopCategories = append(stats.TopCategories, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("iterate category stats", err)
	}

	return &stats, nil
}
