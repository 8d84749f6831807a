package service

import (
	"context"
	"errors"
	"testing"

	"ai-medtutor-be/internal/dto"
	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/pkg/serverutils"
	"ai-medtutor-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chestTraumaCase() *entity.CaseStudy {
	return &entity.CaseStudy{
		Id:       "case_1",
		Title:    "Blunt Chest Trauma",
		Scenario: "A 34 year old cyclist arrives after a collision.",
		Questions: []entity.CaseQuestion{
			{Id: "q1", Prompt: "First investigation?", Options: []string{"CT", "CXR", "MRI"}, CorrectOption: 1},
			{Id: "q2", Prompt: "Next step?", Options: []string{"Drain", "Observe"}, CorrectOption: 0},
			{Id: "q3", Prompt: "Disposition?", Options: []string{"Ward", "ICU", "Home"}, CorrectOption: 1},
		},
	}
}

func newCaseHarness() (ICaseService, *fakeUow, *fakePublisher) {
	uow := newFakeUow()
	uow.cases.cases = []*entity.CaseStudy{chestTraumaCase()}
	pub := &fakePublisher{}
	svc := NewCaseService(&fakeUowFactory{uow: uow}, memory.NewCaseSessionRepository(), pub, nopLogger{})
	return svc, uow, pub
}

func sel(i int) *int { return &i }

func TestCaseLifecycle(t *testing.T) {
	svc, _, pub := newCaseHarness()
	ctx := context.Background()
	userId := uuid.New()

	started, err := svc.Start(ctx, userId, "case_1")
	require.NoError(t, err)
	assert.Equal(t, "case_1", started.CaseId)
	assert.Equal(t, 0, started.Question.Index)
	assert.Equal(t, 3, started.Question.Total)

	sid := started.SessionId

	current, err := svc.Session(ctx, userId, sid)
	require.NoError(t, err)
	assert.Equal(t, "in_progress", current.State)
	require.NotNil(t, current.Question)

	// Answer correct, wrong, correct: 2/3 -> 67.
	_, err = svc.Answer(ctx, userId, &dto.AnswerCaseRequest{SessionId: sid, Selected: sel(1)})
	require.NoError(t, err)
	step, err := svc.Advance(ctx, userId, &dto.AdvanceCaseRequest{SessionId: sid})
	require.NoError(t, err)
	require.NotNil(t, step.Question)
	assert.Equal(t, 1, step.Question.Index)

	_, err = svc.Answer(ctx, userId, &dto.AnswerCaseRequest{SessionId: sid, Selected: sel(1)})
	require.NoError(t, err)
	_, err = svc.Advance(ctx, userId, &dto.AdvanceCaseRequest{SessionId: sid})
	require.NoError(t, err)

	_, err = svc.Answer(ctx, userId, &dto.AnswerCaseRequest{SessionId: sid, Selected: sel(1)})
	require.NoError(t, err)
	final, err := svc.Advance(ctx, userId, &dto.AdvanceCaseRequest{SessionId: sid})
	require.NoError(t, err)

	assert.Equal(t, "completed", final.State)
	require.NotNil(t, final.Completion)
	assert.Equal(t, 67, final.Completion.Score)
	assert.Equal(t, 2, final.Completion.CorrectCount)
	assert.Equal(t, 3, final.Completion.TotalQuestions)

	// Exactly one completion record is published.
	require.Len(t, pub.published, 1)
	record := pub.published[0].(dto.PublishTutorRecordMessage)
	assert.Equal(t, dto.RecordKindCaseCompletion, record.Kind)
	require.NotNil(t, record.CaseCompletion)
	assert.Equal(t, 67, record.CaseCompletion.Score)

	// Review is available after completion.
	review, err := svc.Review(ctx, userId, sid)
	require.NoError(t, err)
	assert.Len(t, review.Items, 3)
	assert.True(t, review.Items[0].WasCorrect)
	assert.False(t, review.Items[1].WasCorrect)
	assert.Equal(t, 67, review.Completion.Score)
}

func TestCaseAdvanceUnansweredRejected(t *testing.T) {
	svc, _, _ := newCaseHarness()
	ctx := context.Background()
	userId := uuid.New()

	started, err := svc.Start(ctx, userId, "case_1")
	require.NoError(t, err)

	_, err = svc.Advance(ctx, userId, &dto.AdvanceCaseRequest{SessionId: started.SessionId})
	require.Error(t, err)
	apiErr := &serverutils.ApiError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, fiber.StatusConflict, apiErr.StatusCode)
}

func TestCaseRetreatKeepsAnswer(t *testing.T) {
	svc, _, _ := newCaseHarness()
	ctx := context.Background()
	userId := uuid.New()

	started, err := svc.Start(ctx, userId, "case_1")
	require.NoError(t, err)
	sid := started.SessionId

	_, err = svc.Answer(ctx, userId, &dto.AnswerCaseRequest{SessionId: sid, Selected: sel(2)})
	require.NoError(t, err)
	_, err = svc.Advance(ctx, userId, &dto.AdvanceCaseRequest{SessionId: sid})
	require.NoError(t, err)

	step, err := svc.Retreat(ctx, userId, &dto.AdvanceCaseRequest{SessionId: sid})
	require.NoError(t, err)
	require.NotNil(t, step.Question)
	assert.Equal(t, 0, step.Question.Index)
	require.NotNil(t, step.Question.Selected)
	assert.Equal(t, 2, *step.Question.Selected)
}

func TestCaseRetryAfterCompletion(t *testing.T) {
	svc, _, pub := newCaseHarness()
	ctx := context.Background()
	userId := uuid.New()

	started, err := svc.Start(ctx, userId, "case_1")
	require.NoError(t, err)
	sid := started.SessionId

	for i := 0; i < 3; i++ {
		_, err = svc.Answer(ctx, userId, &dto.AnswerCaseRequest{SessionId: sid, Selected: sel(0)})
		require.NoError(t, err)
		_, err = svc.Advance(ctx, userId, &dto.AdvanceCaseRequest{SessionId: sid})
		require.NoError(t, err)
	}

	step, err := svc.Retry(ctx, userId, &dto.AdvanceCaseRequest{SessionId: sid})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", step.State)
	require.NotNil(t, step.Question)
	assert.Equal(t, 0, step.Question.Index)
	assert.Nil(t, step.Question.Selected)

	// The first run's completion stays recorded.
	assert.Len(t, pub.published, 1)
}

func TestCaseCompletionPublishFailureStillCompletes(t *testing.T) {
	uow := newFakeUow()
	uow.cases.cases = []*entity.CaseStudy{chestTraumaCase()}
	pub := &fakePublisher{err: errors.New("bus down")}
	svc := NewCaseService(&fakeUowFactory{uow: uow}, memory.NewCaseSessionRepository(), pub, nopLogger{})
	ctx := context.Background()
	userId := uuid.New()

	started, err := svc.Start(ctx, userId, "case_1")
	require.NoError(t, err)
	sid := started.SessionId

	// Correct, wrong, correct: 2/3 -> 67.
	var final *dto.CaseStepResponse
	for _, answer := range []int{1, 1, 1} {
		_, err = svc.Answer(ctx, userId, &dto.AnswerCaseRequest{SessionId: sid, Selected: sel(answer)})
		require.NoError(t, err)
		final, err = svc.Advance(ctx, userId, &dto.AdvanceCaseRequest{SessionId: sid})
		require.NoError(t, err)
	}

	// Recording is best effort: the completed state and score still
	// reach the learner.
	assert.Equal(t, "completed", final.State)
	require.NotNil(t, final.Completion)
	assert.Equal(t, 67, final.Completion.Score)
}

func TestCaseSessionOwnership(t *testing.T) {
	svc, _, _ := newCaseHarness()
	ctx := context.Background()

	started, err := svc.Start(ctx, uuid.New(), "case_1")
	require.NoError(t, err)

	_, err = svc.Answer(ctx, uuid.New(), &dto.AnswerCaseRequest{SessionId: started.SessionId, Selected: sel(0)})
	require.Error(t, err)
	apiErr := &serverutils.ApiError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, fiber.StatusForbidden, apiErr.StatusCode)
}

func TestCaseStartUnknownCase(t *testing.T) {
	uow := newFakeUow()
	svc := NewCaseService(&fakeUowFactory{uow: uow}, memory.NewCaseSessionRepository(), &fakePublisher{}, nopLogger{})

	_, err := svc.Start(context.Background(), uuid.New(), "missing")
	require.Error(t, err)
	apiErr := &serverutils.ApiError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, fiber.StatusNotFound, apiErr.StatusCode)
}
