package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/fanloop/fanloop/internal/pkg/models"
	"github.com/fanloop/fanloop/services/engagement"
	"github.com/fanloop/fanloop/services/engagement/mocks"
)

var (
	testBotID = uuid.MustParse("9f1c7f2e-4b1a-4a6e-9d11-3f65b2c1a0de")
	testNow   = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
)

func engagementConfig(probability float64) *models.Config {
	return &models.Config{
		Engagement: models.EngagementConfig{
			BotUserID:  testBotID.String(),
			BatchLimit: 20,
			Policies: map[string]models.ActionPolicy{
				models.ActionKindLike: {
					Probability: probability,
					MinDelay:    5 * time.Minute,
					MaxDelay:    time.Hour,
				},
				models.ActionKindReply: {
					Probability: probability,
					MinDelay:    3 * time.Minute,
					MaxDelay:    2 * time.Hour,
				},
				models.ActionKindComment: {
					Probability: probability,
					MinDelay:    5 * time.Minute,
					MaxDelay:    90 * time.Minute,
				},
			},
		},
	}
}

func newTestEngagement(repo engagement.EngagementRepo, gw engagement.EngagementGW, cfg *models.Config) *EngagementService {
	return &EngagementService{
		cfg:   cfg,
		repo:  repo,
		gw:    gw,
		botID: testBotID,
		now:   func() time.Time { return testNow },
		rng:   rand.New(rand.NewSource(1)),
	}
}

func TestSchedule_BotContentIsNeverTargeted(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEngagementRepo(ctrl)
	mockGW := mocks.NewMockEngagementGW(ctrl)
	uc := newTestEngagement(mockRepo, mockGW, engagementConfig(1.0))

	target := models.ActionTarget{AuthorID: testBotID, PostID: uuid.New(), Text: "own post"}

	// Act
	result, err := uc.Schedule(context.Background(), target, models.ActionKindLike)

	// Assert
	assert.NoError(t, err)
	assert.False(t, result.Scheduled)
}

func TestSchedule_ZeroProbabilityNeverFires(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEngagementRepo(ctrl)
	mockGW := mocks.NewMockEngagementGW(ctrl)
	uc := newTestEngagement(mockRepo, mockGW, engagementConfig(0.0))

	target := models.ActionTarget{AuthorID: uuid.New(), PostID: uuid.New(), Text: "hello"}

	// Act
	for i := 0; i < 50; i++ {
		result, err := uc.Schedule(context.Background(), target, models.ActionKindLike)
		assert.NoError(t, err)
		assert.False(t, result.Scheduled)
	}
}

func TestSchedule_DelayFallsInsideWindow(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEngagementRepo(ctrl)
	mockGW := mocks.NewMockEngagementGW(ctrl)
	uc := newTestEngagement(mockRepo, mockGW, engagementConfig(1.0))

	target := models.ActionTarget{AuthorID: uuid.New(), PostID: uuid.New(), Text: "hello"}

	earliest := testNow.Add(5 * time.Minute)
	latest := testNow.Add(time.Hour)

	mockRepo.EXPECT().
		InsertAction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, action *models.ScheduledAction) error {
			assert.Equal(t, models.ActionStatusPending, action.Status)
			assert.False(t, action.ScheduledFor.Before(earliest))
			assert.False(t, action.ScheduledFor.After(latest))
			return nil
		}).
		Times(20)

	// Act
	for i := 0; i < 20; i++ {
		result, err := uc.Schedule(context.Background(), target, models.ActionKindLike)
		assert.NoError(t, err)
		assert.True(t, result.Scheduled)
	}
}

func TestSchedule_ReplyPayloadIsFixedAtScheduleTime(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEngagementRepo(ctrl)
	mockGW := mocks.NewMockEngagementGW(ctrl)
	uc := newTestEngagement(mockRepo, mockGW, engagementConfig(1.0))

	commentID := uuid.New()
	target := models.ActionTarget{
		AuthorID:  uuid.New(),
		PostID:    uuid.New(),
		CommentID: &commentID,
		Text:      "just saw the show, amazing!",
	}

	mockGW.EXPECT().
		GenerateReply(gomock.Any(), "just saw the show, amazing!").
		Return("So glad you enjoyed it!")

	mockRepo.EXPECT().
		InsertAction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, action *models.ScheduledAction) error {
			assert.Equal(t, "So glad you enjoyed it!", action.Payload)
			assert.Equal(t, &commentID, action.CommentID)
			return nil
		})

	// Act
	result, err := uc.Schedule(context.Background(), target, models.ActionKindReply)

	// Assert
	assert.NoError(t, err)
	assert.True(t, result.Scheduled)
}

func TestSchedule_StoreDownFallsBackInProcess(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEngagementRepo(ctrl)
	mockGW := mocks.NewMockEngagementGW(ctrl)
	uc := newTestEngagement(mockRepo, mockGW, engagementConfig(1.0))

	target := models.ActionTarget{AuthorID: uuid.New(), PostID: uuid.New(), Text: "hello"}

	mockRepo.EXPECT().
		InsertAction(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: connection refused", engagement.ErrPersistenceUnavailable))

	// Act
	result, err := uc.Schedule(context.Background(), target, models.ActionKindLike)

	// Assert
	assert.NoError(t, err)
	assert.True(t, result.Scheduled)
	assert.Equal(t, testNow.Add(5*time.Minute), result.ScheduledFor.UTC())
}

func TestSchedule_OtherInsertErrorsSurface(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEngagementRepo(ctrl)
	mockGW := mocks.NewMockEngagementGW(ctrl)
	uc := newTestEngagement(mockRepo, mockGW, engagementConfig(1.0))

	target := models.ActionTarget{AuthorID: uuid.New(), PostID: uuid.New(), Text: "hello"}

	mockRepo.EXPECT().InsertAction(gomock.Any(), gomock.Any()).Return(errors.New("constraint violation"))

	_, err := uc.Schedule(context.Background(), target, models.ActionKindLike)
	assert.Error(t, err)
}

func TestProcessDue_EachClaimedActionReachesTerminalStatus(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEngagementRepo(ctrl)
	mockGW := mocks.NewMockEngagementGW(ctrl)
	uc := newTestEngagement(mockRepo, mockGW, engagementConfig(1.0))

	like := models.ScheduledAction{ID: uuid.New(), ActionKind: models.ActionKindLike, PostID: uuid.New()}
	reply := models.ScheduledAction{ID: uuid.New(), ActionKind: models.ActionKindReply, PostID: uuid.New()}

	mockRepo.EXPECT().
		ClaimDueActions(gomock.Any(), testNow, 20).
		Return([]models.ScheduledAction{like, reply}, nil)
	mockRepo.EXPECT().ExecuteLike(gomock.Any(), gomock.Any(), testBotID).Return(nil)
	mockRepo.EXPECT().ExecuteComment(gomock.Any(), gomock.Any(), testBotID).Return(nil)
	mockRepo.EXPECT().MarkActionSent(gomock.Any(), like.ID, testNow).Return(nil)
	mockRepo.EXPECT().MarkActionSent(gomock.Any(), reply.ID, testNow).Return(nil)

	// Act
	report, err := uc.ProcessDue(context.Background(), 0)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.ProcessReport{Claimed: 2, Executed: 2, Failed: 0}, report)
}

func TestProcessDue_FailureIsTerminalWithoutRetry(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEngagementRepo(ctrl)
	mockGW := mocks.NewMockEngagementGW(ctrl)
	uc := newTestEngagement(mockRepo, mockGW, engagementConfig(1.0))

	action := models.ScheduledAction{ID: uuid.New(), ActionKind: models.ActionKindLike, PostID: uuid.New()}

	mockRepo.EXPECT().
		ClaimDueActions(gomock.Any(), testNow, 5).
		Return([]models.ScheduledAction{action}, nil)
	mockRepo.EXPECT().ExecuteLike(gomock.Any(), gomock.Any(), testBotID).Return(errors.New("post deleted"))
	mockRepo.EXPECT().MarkActionFailed(gomock.Any(), action.ID, testNow).Return(nil)

	// Act
	report, err := uc.ProcessDue(context.Background(), 5)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.ProcessReport{Claimed: 1, Executed: 0, Failed: 1}, report)
}

func TestProcessDue_NothingDueIsANoOp(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEngagementRepo(ctrl)
	mockGW := mocks.NewMockEngagementGW(ctrl)
	uc := newTestEngagement(mockRepo, mockGW, engagementConfig(1.0))

	mockRepo.EXPECT().
		ClaimDueActions(gomock.Any(), testNow, 20).
		Return([]models.ScheduledAction{}, nil)

	// Act
	report, err := uc.ProcessDue(context.Background(), 0)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.ProcessReport{}, report)
}

func TestBackfill_AlreadyRespondedCommentsAreSkipped(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEngagementRepo(ctrl)
	mockGW := mocks.NewMockEngagementGW(ctrl)
	uc := newTestEngagement(mockRepo, mockGW, engagementConfig(1.0))

	olderThan := testNow.Add(-24 * time.Hour)
	answered := models.Comment{ID: uuid.New(), PostID: uuid.New(), AuthorID: uuid.New(), Body: "first"}
	unanswered := models.Comment{ID: uuid.New(), PostID: uuid.New(), AuthorID: uuid.New(), Body: "second"}

	mockRepo.EXPECT().
		ListUnrespondedComments(gomock.Any(), testBotID, olderThan, 50).
		Return([]models.Comment{answered, unanswered}, nil)
	mockRepo.EXPECT().HasScheduledResponse(gomock.Any(), answered.ID).Return(true, nil)
	mockRepo.EXPECT().HasScheduledResponse(gomock.Any(), unanswered.ID).Return(false, nil)
	mockGW.EXPECT().GenerateReply(gomock.Any(), "second").Return("Thanks for the love!")
	mockRepo.EXPECT().InsertAction(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	report, err := uc.Backfill(context.Background(), olderThan, 50)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.BackfillReport{Scanned: 2, Scheduled: 1, Skipped: 1}, report)
}

func TestCancel_PendingOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEngagementRepo(ctrl)
	mockGW := mocks.NewMockEngagementGW(ctrl)
	uc := newTestEngagement(mockRepo, mockGW, engagementConfig(1.0))

	actionID := uuid.New()
	mockRepo.EXPECT().CancelPendingAction(gomock.Any(), actionID).Return(false, nil)

	cancelled, err := uc.Cancel(context.Background(), actionID)
	assert.NoError(t, err)
	assert.False(t, cancelled)
}
