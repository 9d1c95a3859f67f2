package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fanloop/fanloop/internal/pkg/models"
)

func setupEngagementRepoTest(t *testing.T) (*PostgresEngagementRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &PostgresEngagementRepo{
		db: sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestClaimDueActions(t *testing.T) {
	repo, mock, cleanup := setupEngagementRepoTest(t)
	defer cleanup()

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	actionID := uuid.New()
	postID := uuid.New()
	targetID := uuid.New()

	rows := sqlmock.NewRows([]string{
		"id", "target_user_id", "post_id", "comment_id", "action_kind",
		"payload", "scheduled_for", "status", "executed_at", "created_at",
	}).AddRow(
		actionID, targetID, postID, nil, models.ActionKindLike,
		"", now.Add(-time.Minute), models.ActionStatusProcessing, nil, now.Add(-time.Hour),
	)

	mock.ExpectQuery("UPDATE scheduled_actions").
		WithArgs(models.ActionStatusProcessing, models.ActionStatusPending, now, 10).
		WillReturnRows(rows)

	actions, err := repo.ClaimDueActions(context.Background(), now, 10)

	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, actionID, actions[0].ID)
	assert.Equal(t, models.ActionStatusProcessing, actions[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimDueActions_NothingDue(t *testing.T) {
	repo, mock, cleanup := setupEngagementRepoTest(t)
	defer cleanup()

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("UPDATE scheduled_actions").
		WithArgs(models.ActionStatusProcessing, models.ActionStatusPending, now, 10).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "target_user_id", "post_id", "comment_id", "action_kind",
			"payload", "scheduled_for", "status", "executed_at", "created_at",
		}))

	actions, err := repo.ClaimDueActions(context.Background(), now, 10)

	require.NoError(t, err)
	assert.Empty(t, actions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkActionSent(t *testing.T) {
	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock, actionID uuid.UUID, executedAt time.Time)
		wantErr   string
	}{
		{
			name: "processing row is finalised",
			mockSetup: func(mock sqlmock.Sqlmock, actionID uuid.UUID, executedAt time.Time) {
				mock.ExpectExec("UPDATE scheduled_actions").
					WithArgs(models.ActionStatusSent, executedAt, actionID, models.ActionStatusProcessing).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "row not in processing state",
			mockSetup: func(mock sqlmock.Sqlmock, actionID uuid.UUID, executedAt time.Time) {
				mock.ExpectExec("UPDATE scheduled_actions").
					WithArgs(models.ActionStatusSent, executedAt, actionID, models.ActionStatusProcessing).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: "not in processing state",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupEngagementRepoTest(t)
			defer cleanup()

			actionID := uuid.New()
			executedAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
			tc.mockSetup(mock, actionID, executedAt)

			err := repo.MarkActionSent(context.Background(), actionID, executedAt)

			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCancelPendingAction(t *testing.T) {
	testCases := []struct {
		name          string
		rowsAffected  int64
		wantCancelled bool
	}{
		{
			name:          "pending row is cancelled",
			rowsAffected:  1,
			wantCancelled: true,
		},
		{
			name:          "claimed row matches nothing",
			rowsAffected:  0,
			wantCancelled: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupEngagementRepoTest(t)
			defer cleanup()

			actionID := uuid.New()
			mock.ExpectExec("UPDATE scheduled_actions").
				WithArgs(models.ActionStatusCancelled, actionID, models.ActionStatusPending).
				WillReturnResult(sqlmock.NewResult(0, tc.rowsAffected))

			cancelled, err := repo.CancelPendingAction(context.Background(), actionID)

			require.NoError(t, err)
			assert.Equal(t, tc.wantCancelled, cancelled)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestExecuteLike(t *testing.T) {
	t.Run("new like bumps the counter", func(t *testing.T) {
		repo, mock, cleanup := setupEngagementRepoTest(t)
		defer cleanup()

		botID := uuid.New()
		action := &models.ScheduledAction{ID: uuid.New(), PostID: uuid.New()}

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO post_likes").
			WithArgs(action.PostID, botID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE posts SET like_count").
			WithArgs(action.PostID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.ExecuteLike(context.Background(), action, botID)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing like leaves the counter alone", func(t *testing.T) {
		repo, mock, cleanup := setupEngagementRepoTest(t)
		defer cleanup()

		botID := uuid.New()
		action := &models.ScheduledAction{ID: uuid.New(), PostID: uuid.New()}

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO post_likes").
			WithArgs(action.PostID, botID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.ExecuteLike(context.Background(), action, botID)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		repo, mock, cleanup := setupEngagementRepoTest(t)
		defer cleanup()

		botID := uuid.New()
		action := &models.ScheduledAction{ID: uuid.New(), PostID: uuid.New()}

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO post_likes").
			WithArgs(action.PostID, botID).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.ExecuteLike(context.Background(), action, botID)

		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestHasScheduledResponse(t *testing.T) {
	repo, mock, cleanup := setupEngagementRepoTest(t)
	defer cleanup()

	commentID := uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(commentID, models.ActionStatusCancelled).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.HasScheduledResponse(context.Background(), commentID)

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
