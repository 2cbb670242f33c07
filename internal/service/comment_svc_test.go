package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/clipstream/backend/internal/repository"
)

func newCommentService(t *testing.T) (pgxmock.PgxPoolIface, *CommentService) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	videos := repository.NewVideoRepo(mock)
	comments := repository.NewCommentRepo(mock)
	guard := NewGuard(videos, comments)
	return mock, NewCommentService(comments, videos, guard)
}

func TestCommentService_ListByVideo_MissingVideo(t *testing.T) {
	mock, svc := newCommentService(t)

	mock.ExpectQuery("SELECT v.id, v.channel_id").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	comments, err := svc.ListByVideo(context.Background(), "missing")
	require.Nil(t, comments)
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentService_Update_NotAuthor(t *testing.T) {
	mock, svc := newCommentService(t)

	now := time.Now()
	mock.ExpectQuery("SELECT id, video_id, author_id").
		WithArgs("cm1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "video_id", "author_id", "body", "created_at", "updated_at"}).
			AddRow("cm1", "v1", "author", "nice video", now, now))

	cm, err := svc.Update(context.Background(), "cm1", "intruder", "edited")
	require.Nil(t, cm)
	require.ErrorIs(t, err, ErrForbidden)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentService_Delete_NotAuthor(t *testing.T) {
	mock, svc := newCommentService(t)

	now := time.Now()
	mock.ExpectQuery("SELECT id, video_id, author_id").
		WithArgs("cm1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "video_id", "author_id", "body", "created_at", "updated_at"}).
			AddRow("cm1", "v1", "author", "nice video", now, now))

	err := svc.Delete(context.Background(), "cm1", "intruder")
	require.ErrorIs(t, err, ErrForbidden)
	require.NoError(t, mock.ExpectationsWereMet())
}
