package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/clipstream/backend/internal/model"
)

func newVideoMock(t *testing.T) (pgxmock.PgxPoolIface, *VideoRepo) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewVideoRepo(mock)
}

func TestVideoRepo_Create_MissingChannel(t *testing.T) {
	mock, repo := newVideoMock(t)

	mock.ExpectExec("INSERT INTO videos").
		WithArgs("v1", "ghost", "First upload", "", "https://cdn.example/v1.mp4", "", "All", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := repo.Create(context.Background(), model.Video{
		ID:        "v1",
		ChannelID: "ghost",
		Title:     "First upload",
		MediaURL:  "https://cdn.example/v1.mp4",
		Category:  model.CategoryAll,
		CreatedAt: time.Now(),
	})
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepo_GetAndIncrementView(t *testing.T) {
	mock, repo := newVideoMock(t)

	created := time.Now()
	rows := pgxmock.NewRows([]string{
		"id", "channel_id", "title", "description", "media_url",
		"thumbnail_url", "category", "view_count", "created_at",
		"name", "likes", "dislikes",
	}).AddRow("v1", "ch1", "First upload", "", "https://cdn.example/v1.mp4",
		"", "Music", 6, created, "My Channel", 2, 1)

	mock.ExpectQuery("WITH bumped AS").
		WithArgs("v1").
		WillReturnRows(rows)

	resp, err := repo.GetAndIncrementView(context.Background(), "v1")
	require.NoError(t, err)
	require.Equal(t, 6, resp.ViewCount)
	require.Equal(t, 2, resp.Likes)
	require.Equal(t, 1, resp.Dislikes)
	require.Equal(t, "My Channel", resp.ChannelName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepo_GetAndIncrementView_NotFound(t *testing.T) {
	mock, repo := newVideoMock(t)

	mock.ExpectQuery("WITH bumped AS").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	resp, err := repo.GetAndIncrementView(context.Background(), "missing")
	require.Nil(t, resp)
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepo_Delete(t *testing.T) {
	mock, repo := newVideoMock(t)

	mock.ExpectExec("DELETE FROM videos").
		WithArgs("v1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(context.Background(), "v1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepo_Delete_NotFound(t *testing.T) {
	mock, repo := newVideoMock(t)

	mock.ExpectExec("DELETE FROM videos").
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepo_ToggleReaction_Insert(t *testing.T) {
	mock, repo := newVideoMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM videos").
		WithArgs("v1").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("v1"))
	mock.ExpectQuery("SELECT kind FROM video_reactions").
		WithArgs("v1", "u1").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectExec("INSERT INTO video_reactions").
		WithArgs("v1", "u1", "like").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("v1").
		WillReturnRows(pgxmock.NewRows([]string{"likes", "dislikes"}).AddRow(1, 0))
	mock.ExpectCommit()

	likes, dislikes, err := repo.ToggleReaction(context.Background(), "v1", "u1", "like")
	require.NoError(t, err)
	require.Equal(t, 1, likes)
	require.Equal(t, 0, dislikes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepo_ToggleReaction_Remove(t *testing.T) {
	mock, repo := newVideoMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM videos").
		WithArgs("v1").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("v1"))
	mock.ExpectQuery("SELECT kind FROM video_reactions").
		WithArgs("v1", "u1").
		WillReturnRows(pgxmock.NewRows([]string{"kind"}).AddRow("like"))
	mock.ExpectExec("DELETE FROM video_reactions").
		WithArgs("v1", "u1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("v1").
		WillReturnRows(pgxmock.NewRows([]string{"likes", "dislikes"}).AddRow(0, 0))
	mock.ExpectCommit()

	likes, dislikes, err := repo.ToggleReaction(context.Background(), "v1", "u1", "like")
	require.NoError(t, err)
	require.Equal(t, 0, likes)
	require.Equal(t, 0, dislikes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepo_ToggleReaction_Switch(t *testing.T) {
	mock, repo := newVideoMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM videos").
		WithArgs("v1").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("v1"))
	mock.ExpectQuery("SELECT kind FROM video_reactions").
		WithArgs("v1", "u1").
		WillReturnRows(pgxmock.NewRows([]string{"kind"}).AddRow("like"))
	mock.ExpectExec("UPDATE video_reactions").
		WithArgs("v1", "u1", "dislike").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("v1").
		WillReturnRows(pgxmock.NewRows([]string{"likes", "dislikes"}).AddRow(0, 1))
	mock.ExpectCommit()

	likes, dislikes, err := repo.ToggleReaction(context.Background(), "v1", "u1", "dislike")
	require.NoError(t, err)
	require.Equal(t, 0, likes)
	require.Equal(t, 1, dislikes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepo_ToggleReaction_VideoMissing(t *testing.T) {
	mock, repo := newVideoMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM videos").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, _, err := repo.ToggleReaction(context.Background(), "missing", "u1", "like")
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepo_OwnerID(t *testing.T) {
	mock, repo := newVideoMock(t)

	mock.ExpectQuery("SELECT c.owner_id").
		WithArgs("v1").
		WillReturnRows(pgxmock.NewRows([]string{"owner_id"}).AddRow("u1"))

	ownerID, err := repo.OwnerID(context.Background(), "v1")
	require.NoError(t, err)
	require.Equal(t, "u1", ownerID)
	require.NoError(t, mock.ExpectationsWereMet())
}
