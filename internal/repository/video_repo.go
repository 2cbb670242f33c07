package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/clipstream/backend/internal/model"
)

type VideoRepo struct {
	db DB
}

func NewVideoRepo(db DB) *VideoRepo {
	return &VideoRepo{db: db}
}

// videoColumns is the select list shared by the read queries below.
const videoColumns = `v.id, v.channel_id, v.title, v.description, v.media_url,
	v.thumbnail_url, v.category, v.view_count, v.created_at`

// Create inserts a new video under its channel. A missing channel
// surfaces as ErrNotFound via the foreign key, so the insert and the
// containment check are a single atomic step.
func (r *VideoRepo) Create(ctx context.Context, v model.Video) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO videos (id, channel_id, title, description, media_url, thumbnail_url, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		v.ID, v.ChannelID, v.Title, v.Description, v.MediaURL, v.ThumbnailURL, v.Category, v.CreatedAt)
	if err != nil {
		return mapError("insert video", err)
	}
	return nil
}

// FindByID returns a single video without touching the view counter.
func (r *VideoRepo) FindByID(ctx context.Context, id string) (*model.Video, error) {
	query := `
		SELECT ` + videoColumns + `
		FROM videos v
		WHERE v.id = $1`

	var v model.Video
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.ChannelID, &v.Title, &v.Description, &v.MediaURL,
		&v.ThumbnailURL, &v.Category, &v.ViewCount, &v.CreatedAt,
	)
	if err != nil {
		return nil, mapError("select video", err)
	}
	return &v, nil
}

// GetAndIncrementView bumps the view counter by exactly one and returns
// the video with its post-increment count, reaction tallies and channel
// name. The CTE makes the read-and-bump a single atomic statement; every
// fetch counts, repeat viewers included.
func (r *VideoRepo) GetAndIncrementView(ctx context.Context, id string) (*model.VideoResponse, error) {
	query := `
		WITH bumped AS (
			UPDATE videos
			SET view_count = view_count + 1
			WHERE id = $1
			RETURNING id, channel_id, title, description, media_url,
			          thumbnail_url, category, view_count, created_at
		)
		SELECT b.id, b.channel_id, b.title, b.description, b.media_url,
		       b.thumbnail_url, b.category, b.view_count, b.created_at,
		       c.name,
		       (SELECT COUNT(*) FROM video_reactions r WHERE r.video_id = b.id AND r.kind = 'like'),
		       (SELECT COUNT(*) FROM video_reactions r WHERE r.video_id = b.id AND r.kind = 'dislike')
		FROM bumped b
		JOIN channels c ON c.id = b.channel_id`

	var resp model.VideoResponse
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resp.ID, &resp.ChannelID, &resp.Title, &resp.Description, &resp.MediaURL,
		&resp.ThumbnailURL, &resp.Category, &resp.ViewCount, &resp.CreatedAt,
		&resp.ChannelName, &resp.Likes, &resp.Dislikes,
	)
	if err != nil {
		return nil, mapError("select and bump video", err)
	}
	return &resp, nil
}

// List returns videos newest-first, filtered by an optional
// case-insensitive title substring and an optional exact category.
// The category filter is bypassed when empty or "All".
func (r *VideoRepo) List(ctx context.Context, search, category string) ([]model.VideoResponse, error) {
	query := `
		SELECT ` + videoColumns + `, c.name,
		       (SELECT COUNT(*) FROM video_reactions r WHERE r.video_id = v.id AND r.kind = 'like'),
		       (SELECT COUNT(*) FROM video_reactions r WHERE r.video_id = v.id AND r.kind = 'dislike')
		FROM videos v
		JOIN channels c ON c.id = v.channel_id
		WHERE ($1 = '' OR v.title ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR $2 = 'All' OR v.category = $2)
		ORDER BY v.created_at DESC`

	return r.queryResponses(ctx, query, search, category)
}

// Search matches the query as a case-insensitive substring against
// title, description and category, newest first. Callers short-circuit
// blank queries before reaching here.
func (r *VideoRepo) Search(ctx context.Context, text string) ([]model.VideoResponse, error) {
	query := `
		SELECT ` + videoColumns + `, c.name,
		       (SELECT COUNT(*) FROM video_reactions r WHERE r.video_id = v.id AND r.kind = 'like'),
		       (SELECT COUNT(*) FROM video_reactions r WHERE r.video_id = v.id AND r.kind = 'dislike')
		FROM videos v
		JOIN channels c ON c.id = v.channel_id
		WHERE v.title ILIKE '%' || $1 || '%'
		   OR v.description ILIKE '%' || $1 || '%'
		   OR v.category ILIKE '%' || $1 || '%'
		ORDER BY v.created_at DESC`

	return r.queryResponses(ctx, query, text)
}

// ListByChannel returns a channel's videos newest-first.
func (r *VideoRepo) ListByChannel(ctx context.Context, channelID string) ([]model.Video, error) {
	query := `
		SELECT ` + videoColumns + `
		FROM videos v
		WHERE v.channel_id = $1
		ORDER BY v.created_at DESC`

	rows, err := r.db.Query(ctx, query, channelID)
	if err != nil {
		return nil, mapError("select videos by channel", err)
	}
	defer rows.Close()

	var videos []model.Video
	for rows.Next() {
		var v model.Video
		if err := rows.Scan(&v.ID, &v.ChannelID, &v.Title, &v.Description, &v.MediaURL,
			&v.ThumbnailURL, &v.Category, &v.ViewCount, &v.CreatedAt); err != nil {
			return nil, mapError("scan video", err)
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// OwnerID resolves the owning user of a video through its channel.
func (r *VideoRepo) OwnerID(ctx context.Context, videoID string) (string, error) {
	var ownerID string
	err := r.db.QueryRow(ctx, `
		SELECT c.owner_id
		FROM videos v
		JOIN channels c ON c.id = v.channel_id
		WHERE v.id = $1`, videoID).Scan(&ownerID)
	if err != nil {
		return "", mapError("select video owner", err)
	}
	return ownerID, nil
}

// Update rewrites the mutable metadata fields; nil fields keep their
// current value.
func (r *VideoRepo) Update(ctx context.Context, id string, req model.UpdateVideoRequest) (*model.Video, error) {
	query := `
		UPDATE videos
		SET title         = COALESCE($2, title),
		    description   = COALESCE($3, description),
		    thumbnail_url = COALESCE($4, thumbnail_url),
		    category      = COALESCE($5, category)
		WHERE id = $1
		RETURNING id, channel_id, title, description, media_url, thumbnail_url, category, view_count, created_at`

	var v model.Video
	err := r.db.QueryRow(ctx, query, id, req.Title, req.Description, req.ThumbnailURL, req.Category).Scan(
		&v.ID, &v.ChannelID, &v.Title, &v.Description, &v.MediaURL,
		&v.ThumbnailURL, &v.Category, &v.ViewCount, &v.CreatedAt,
	)
	if err != nil {
		return nil, mapError("update video", err)
	}
	return &v, nil
}

// Delete removes the video row. Reactions and comments go with it via
// ON DELETE CASCADE, and the channel's containment is derived from
// videos.channel_id, so readers never observe a half-deleted video.
func (r *VideoRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return mapError("delete video", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleReaction applies one like/dislike toggle for (video, user) inside
// a transaction and returns the resulting tallies. A video and user hold
// at most one reaction row, so like and dislike are mutually exclusive by
// construction: toggling the held kind removes it, toggling the opposite
// kind switches the row in place.
func (r *VideoRepo) ToggleReaction(ctx context.Context, videoID, userID, kind string) (likes, dislikes int, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, 0, mapError("begin toggle reaction", err)
	}
	defer tx.Rollback(ctx)

	var id string
	err = tx.QueryRow(ctx, `SELECT id FROM videos WHERE id = $1 FOR UPDATE`, videoID).Scan(&id)
	if err != nil {
		return 0, 0, mapError("lock video", err)
	}

	var current string
	err = tx.QueryRow(ctx, `
		SELECT kind FROM video_reactions WHERE video_id = $1 AND user_id = $2`,
		videoID, userID).Scan(&current)

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		_, err = tx.Exec(ctx, `
			INSERT INTO video_reactions (video_id, user_id, kind) VALUES ($1, $2, $3)`,
			videoID, userID, kind)
		if err != nil {
			return 0, 0, mapError("insert reaction", err)
		}
	case err != nil:
		return 0, 0, mapError("select reaction", err)
	case current == kind:
		_, err = tx.Exec(ctx, `
			DELETE FROM video_reactions WHERE video_id = $1 AND user_id = $2`,
			videoID, userID)
		if err != nil {
			return 0, 0, mapError("delete reaction", err)
		}
	default:
		_, err = tx.Exec(ctx, `
			UPDATE video_reactions SET kind = $3, created_at = NOW()
			WHERE video_id = $1 AND user_id = $2`,
			videoID, userID, kind)
		if err != nil {
			return 0, 0, mapError("update reaction", err)
		}
	}

	err = tx.QueryRow(ctx, `
		SELECT COUNT(*) FILTER (WHERE kind = 'like'),
		       COUNT(*) FILTER (WHERE kind = 'dislike')
		FROM video_reactions
		WHERE video_id = $1`, videoID).Scan(&likes, &dislikes)
	if err != nil {
		return 0, 0, mapError("count reactions", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, 0, mapError("commit toggle reaction", err)
	}
	return likes, dislikes, nil
}

func (r *VideoRepo) queryResponses(ctx context.Context, query string, args ...any) ([]model.VideoResponse, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("select videos", err)
	}
	defer rows.Close()

	responses := make([]model.VideoResponse, 0)
	for rows.Next() {
		var resp model.VideoResponse
		if err := rows.Scan(&resp.ID, &resp.ChannelID, &resp.Title, &resp.Description, &resp.MediaURL,
			&resp.ThumbnailURL, &resp.Category, &resp.ViewCount, &resp.CreatedAt,
			&resp.ChannelName, &resp.Likes, &resp.Dislikes); err != nil {
			return nil, mapError("scan video", err)
		}
		responses = append(responses, resp)
	}
	return responses, rows.Err()
}
