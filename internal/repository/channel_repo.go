package repository

import (
	"context"

	"github.com/clipstream/backend/internal/model"
)

type ChannelRepo struct {
	db DB
}

func NewChannelRepo(db DB) *ChannelRepo {
	return &ChannelRepo{db: db}
}

// Create inserts a new channel. A missing owner surfaces as ErrNotFound
// via the foreign key.
func (r *ChannelRepo) Create(ctx context.Context, ch model.Channel) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO channels (id, owner_id, name, description, subscriber_count, created_at)
		VALUES ($1, $2, $3, $4, 0, $5)`,
		ch.ID, ch.OwnerID, ch.Name, ch.Description, ch.CreatedAt)
	if err != nil {
		return mapError("insert channel", err)
	}
	return nil
}

// FindByID returns a single channel by its ID.
func (r *ChannelRepo) FindByID(ctx context.Context, id string) (*model.Channel, error) {
	query := `
		SELECT id, owner_id, name, description, subscriber_count, created_at
		FROM channels
		WHERE id = $1`

	var ch model.Channel
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ch.ID, &ch.OwnerID, &ch.Name, &ch.Description, &ch.SubscriberCount, &ch.CreatedAt,
	)
	if err != nil {
		return nil, mapError("select channel", err)
	}
	return &ch, nil
}

// ListByOwner returns all channels owned by a user, newest first.
func (r *ChannelRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Channel, error) {
	query := `
		SELECT id, owner_id, name, description, subscriber_count, created_at
		FROM channels
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, mapError("select channels by owner", err)
	}
	defer rows.Close()

	var channels []model.Channel
	for rows.Next() {
		var ch model.Channel
		if err := rows.Scan(&ch.ID, &ch.OwnerID, &ch.Name, &ch.Description, &ch.SubscriberCount, &ch.CreatedAt); err != nil {
			return nil, mapError("scan channel", err)
		}
		channels = append(channels, ch)
	}
	return channels, rows.Err()
}

// ToggleSubscription flips the (user, channel) subscription membership and
// adjusts the denormalized subscriber counter in the same transaction.
// The channel row is locked for the duration, so two concurrent toggles
// for the same channel serialize and the counter never diverges from the
// membership set.
func (r *ChannelRepo) ToggleSubscription(ctx context.Context, userID, channelID string) (subscribed bool, count int, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, 0, mapError("begin toggle subscription", err)
	}
	defer tx.Rollback(ctx)

	var id string
	err = tx.QueryRow(ctx, `SELECT id FROM channels WHERE id = $1 FOR UPDATE`, channelID).Scan(&id)
	if err != nil {
		return false, 0, mapError("lock channel", err)
	}

	tag, err := tx.Exec(ctx, `
		DELETE FROM subscriptions WHERE user_id = $1 AND channel_id = $2`,
		userID, channelID)
	if err != nil {
		return false, 0, mapError("delete subscription", err)
	}

	if tag.RowsAffected() > 0 {
		// Was subscribed: membership removed, decrement with a floor of 0.
		err = tx.QueryRow(ctx, `
			UPDATE channels
			SET subscriber_count = GREATEST(subscriber_count - 1, 0)
			WHERE id = $1
			RETURNING subscriber_count`, channelID).Scan(&count)
		if err != nil {
			return false, 0, mapError("decrement subscriber count", err)
		}
		subscribed = false
	} else {
		_, err = tx.Exec(ctx, `
			INSERT INTO subscriptions (user_id, channel_id) VALUES ($1, $2)`,
			userID, channelID)
		if err != nil {
			return false, 0, mapError("insert subscription", err)
		}
		err = tx.QueryRow(ctx, `
			UPDATE channels
			SET subscriber_count = subscriber_count + 1
			WHERE id = $1
			RETURNING subscriber_count`, channelID).Scan(&count)
		if err != nil {
			return false, 0, mapError("increment subscriber count", err)
		}
		subscribed = true
	}

	if err := tx.Commit(ctx); err != nil {
		return false, 0, mapError("commit toggle subscription", err)
	}
	return subscribed, count, nil
}

// IsSubscribed reports whether the user currently subscribes to the channel.
func (r *ChannelRepo) IsSubscribed(ctx context.Context, userID, channelID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM subscriptions WHERE user_id = $1 AND channel_id = $2)`,
		userID, channelID).Scan(&exists)
	if err != nil {
		return false, mapError("select subscription", err)
	}
	return exists, nil
}

// RecomputeSubscriberCounts rewrites every channel's subscriber_count from
// the subscriptions table and returns how many rows were corrected. Run
// periodically to repair any drift.
func (r *ChannelRepo) RecomputeSubscriberCounts(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE channels c
		SET subscriber_count = s.cnt
		FROM (
			SELECT c2.id, COUNT(sub.user_id) AS cnt
			FROM channels c2
			LEFT JOIN subscriptions sub ON sub.channel_id = c2.id
			GROUP BY c2.id
		) s
		WHERE s.id = c.id AND c.subscriber_count <> s.cnt`)
	if err != nil {
		return 0, mapError("recompute subscriber counts", err)
	}
	return tag.RowsAffected(), nil
}
