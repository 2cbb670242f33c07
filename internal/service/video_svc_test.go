package service

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/clipstream/backend/internal/model"
	"github.com/clipstream/backend/internal/repository"
)

func newVideoService(t *testing.T) (pgxmock.PgxPoolIface, *VideoService) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	videos := repository.NewVideoRepo(mock)
	comments := repository.NewCommentRepo(mock)
	guard := NewGuard(videos, comments)
	return mock, NewVideoService(videos, guard, nil)
}

func TestVideoService_Search_BlankQuery(t *testing.T) {
	// No expectations on the mock: a blank query must not reach the store.
	_, svc := newVideoService(t)

	for _, q := range []string{"", "   ", "\t"} {
		results, err := svc.Search(context.Background(), q)
		require.NoError(t, err)
		require.NotNil(t, results)
		require.Empty(t, results)
	}
}

func TestVideoService_Update_NotOwner(t *testing.T) {
	mock, svc := newVideoService(t)

	mock.ExpectQuery("SELECT c.owner_id").
		WithArgs("v1").
		WillReturnRows(pgxmock.NewRows([]string{"owner_id"}).AddRow("owner"))

	title := "New title"
	v, err := svc.Update(context.Background(), "v1", "intruder", model.UpdateVideoRequest{Title: &title})
	require.Nil(t, v)
	require.ErrorIs(t, err, ErrForbidden)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoService_Delete_NotOwner(t *testing.T) {
	mock, svc := newVideoService(t)

	mock.ExpectQuery("SELECT c.owner_id").
		WithArgs("v1").
		WillReturnRows(pgxmock.NewRows([]string{"owner_id"}).AddRow("owner"))

	err := svc.Delete(context.Background(), "v1", "intruder")
	require.ErrorIs(t, err, ErrForbidden)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoService_Create_DefaultsCategory(t *testing.T) {
	mock, svc := newVideoService(t)

	mock.ExpectExec("INSERT INTO videos").
		WithArgs(pgxmock.AnyArg(), "ch1", "First upload", "", "https://cdn.example/v1.mp4", "", model.CategoryAll, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	v, err := svc.Create(context.Background(), model.CreateVideoRequest{
		Title:     "First upload",
		MediaURL:  "https://cdn.example/v1.mp4",
		ChannelID: "ch1",
	})
	require.NoError(t, err)
	require.Equal(t, model.CategoryAll, v.Category)
	require.NoError(t, mock.ExpectationsWereMet())
}
