package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-medtutor-be/internal/dto"
	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/pkg/serverutils"
	"ai-medtutor-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vatsCard() *entity.FlashCard {
	return &entity.FlashCard{
		Id:       "card_1",
		Question: "Port placement for a VATS lobectomy?",
		Answer:   "Triangulated over the fissure.",
		Category: "Thoracic Surgery",
		Tags:     []string{"vats"},
	}
}

func newFlashcardHarness() (IFlashcardService, *fakeUow, *fakePublisher) {
	uow := newFakeUow()
	uow.cards.cards = []*entity.FlashCard{vatsCard()}
	pub := &fakePublisher{}
	svc := NewFlashcardService(&fakeUowFactory{uow: uow}, memory.NewReviewGateRepository(), pub, nopLogger{})
	return svc, uow, pub
}

func TestFlashcardReview_SchedulesByRating(t *testing.T) {
	tests := []struct {
		rating   string
		wantDays int
	}{
		{"hard", 1},
		{"medium", 3},
		{"easy", 7},
	}

	for _, tt := range tests {
		t.Run(tt.rating, func(t *testing.T) {
			svc, _, pub := newFlashcardHarness()

			res, err := svc.Review(context.Background(), uuid.New(), &dto.ReviewFlashcardRequest{
				Id:     "card_1",
				Rating: tt.rating,
			})
			require.NoError(t, err)

			gap := res.NextReviewAt.Sub(res.ReviewedAt)
			assert.InDelta(t, float64(tt.wantDays*24), gap.Hours(), 1.0)
			assert.Equal(t, tt.rating, res.Rating)

			require.Len(t, pub.published, 1)
			record := pub.published[0].(dto.PublishTutorRecordMessage)
			assert.Equal(t, dto.RecordKindFlashcardReview, record.Kind)
			require.NotNil(t, record.FlashcardReview)
			assert.Equal(t, "card_1", record.FlashcardReview.FlashcardId)
		})
	}
}

func TestFlashcardReview_InvalidRating(t *testing.T) {
	svc, _, _ := newFlashcardHarness()

	_, err := svc.Review(context.Background(), uuid.New(), &dto.ReviewFlashcardRequest{
		Id:     "card_1",
		Rating: "impossible",
	})
	require.Error(t, err)
	apiErr := &serverutils.ApiError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, fiber.StatusUnprocessableEntity, apiErr.StatusCode)
}

func TestFlashcardReview_RepeatRejected(t *testing.T) {
	svc, _, pub := newFlashcardHarness()
	userId := uuid.New()

	_, err := svc.Review(context.Background(), userId, &dto.ReviewFlashcardRequest{Id: "card_1", Rating: "easy"})
	require.NoError(t, err)

	_, err = svc.Review(context.Background(), userId, &dto.ReviewFlashcardRequest{Id: "card_1", Rating: "hard"})
	require.Error(t, err)
	apiErr := &serverutils.ApiError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, fiber.StatusConflict, apiErr.StatusCode)

	// Only the first review made it to the pipeline.
	assert.Len(t, pub.published, 1)
}

func TestFlashcardReview_PublishFailureStillSchedules(t *testing.T) {
	uow := newFakeUow()
	uow.cards.cards = []*entity.FlashCard{vatsCard()}
	pub := &fakePublisher{err: errors.New("bus down")}
	svc := NewFlashcardService(&fakeUowFactory{uow: uow}, memory.NewReviewGateRepository(), pub, nopLogger{})

	// Recording is best effort: the learner still gets the schedule.
	res, err := svc.Review(context.Background(), uuid.New(), &dto.ReviewFlashcardRequest{Id: "card_1", Rating: "easy"})
	require.NoError(t, err)
	gap := res.NextReviewAt.Sub(res.ReviewedAt)
	assert.InDelta(t, float64(7*24), gap.Hours(), 1.0)
}

func TestFlashcardReview_OtherUserNotGated(t *testing.T) {
	svc, _, _ := newFlashcardHarness()

	_, err := svc.Review(context.Background(), uuid.New(), &dto.ReviewFlashcardRequest{Id: "card_1", Rating: "easy"})
	require.NoError(t, err)

	_, err = svc.Review(context.Background(), uuid.New(), &dto.ReviewFlashcardRequest{Id: "card_1", Rating: "easy"})
	require.NoError(t, err)
}

func TestFlashcardDueReviews(t *testing.T) {
	svc, uow, _ := newFlashcardHarness()
	userId := uuid.New()
	now := time.Now()

	// Two reviews for the same card: only the latest counts, and it is due.
	uow.reviews.reviews = []*entity.FlashcardReview{
		{Id: uuid.New(), UserId: userId, FlashcardId: "card_1", DifficultyRating: "hard",
			ReviewedAt: now.AddDate(0, 0, -2), NextReviewAt: now.AddDate(0, 0, -1)},
		{Id: uuid.New(), UserId: userId, FlashcardId: "card_1", DifficultyRating: "easy",
			ReviewedAt: now.AddDate(0, 0, -10), NextReviewAt: now.AddDate(0, 0, -3)},
	}

	due, err := svc.DueReviews(context.Background(), userId, now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "card_1", due[0].Flashcard.Id)

	// Latest review not yet due hides the card.
	uow.reviews.reviews[0].NextReviewAt = now.AddDate(0, 0, 5)
	due, err = svc.DueReviews(context.Background(), userId, now)
	require.NoError(t, err)
	assert.Empty(t, due)
}
