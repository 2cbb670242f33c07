package repository

import (
	"context"

	"github.com/clipstream/backend/internal/model"
)

type CommentRepo struct {
	db DB
}

func NewCommentRepo(db DB) *CommentRepo {
	return &CommentRepo{db: db}
}

// Create inserts a new comment. A missing video surfaces as ErrNotFound
// via the foreign key.
func (r *CommentRepo) Create(ctx context.Context, cm model.Comment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO comments (id, video_id, author_id, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		cm.ID, cm.VideoID, cm.AuthorID, cm.Body, cm.CreatedAt, cm.UpdatedAt)
	if err != nil {
		return mapError("insert comment", err)
	}
	return nil
}

// FindByID returns a single comment by its ID.
func (r *CommentRepo) FindByID(ctx context.Context, id string) (*model.Comment, error) {
	query := `
		SELECT id, video_id, author_id, body, created_at, updated_at
		FROM comments
		WHERE id = $1`

	var cm model.Comment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&cm.ID, &cm.VideoID, &cm.AuthorID, &cm.Body, &cm.CreatedAt, &cm.UpdatedAt,
	)
	if err != nil {
		return nil, mapError("select comment", err)
	}
	return &cm, nil
}

// ListByVideo returns a video's comments newest-first with the author's
// username joined in. Comments only ever reference live videos: deleting
// a video removes its comments in the same statement.
func (r *CommentRepo) ListByVideo(ctx context.Context, videoID string) ([]model.Comment, error) {
	query := `
		SELECT cm.id, cm.video_id, cm.author_id, cm.body, cm.created_at, cm.updated_at, u.username
		FROM comments cm
		JOIN users u ON u.id = cm.author_id
		WHERE cm.video_id = $1
		ORDER BY cm.created_at DESC`

	rows, err := r.db.Query(ctx, query, videoID)
	if err != nil {
		return nil, mapError("select comments by video", err)
	}
	defer rows.Close()

	comments := make([]model.Comment, 0)
	for rows.Next() {
		var cm model.Comment
		if err := rows.Scan(&cm.ID, &cm.VideoID, &cm.AuthorID, &cm.Body, &cm.CreatedAt, &cm.UpdatedAt, &cm.AuthorName); err != nil {
			return nil, mapError("scan comment", err)
		}
		comments = append(comments, cm)
	}
	return comments, rows.Err()
}

// Update replaces the comment body.
func (r *CommentRepo) Update(ctx context.Context, id, body string) (*model.Comment, error) {
	query := `
		UPDATE comments
		SET body = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, video_id, author_id, body, created_at, updated_at`

	var cm model.Comment
	err := r.db.QueryRow(ctx, query, id, body).Scan(
		&cm.ID, &cm.VideoID, &cm.AuthorID, &cm.Body, &cm.CreatedAt, &cm.UpdatedAt,
	)
	if err != nil {
		return nil, mapError("update comment", err)
	}
	return &cm, nil
}

// Delete removes a comment.
func (r *CommentRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return mapError("delete comment", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
