package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ai-medtutor-be/internal/constant"
	"ai-medtutor-be/internal/dto"
	"ai-medtutor-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pneumothoraxItem() *entity.ContentItem {
	return &entity.ContentItem{
		Id:          "content_1",
		Title:       "Tension Pneumothorax Management",
		Description: "Emergency decompression techniques",
		Category:    "Emergency",
		Tags:        []string{"pneumothorax", "chest"},
		ContentType: entity.ContentTypeText,
		Body:        "Needle decompression at the second intercostal space.",
		IsActive:    true,
	}
}

func TestVoiceAsk_Success(t *testing.T) {
	uow := newFakeUow()
	uow.contents.items = []*entity.ContentItem{pneumothoraxItem()}

	llmFake := &fakeLLM{answer: "Decompress immediately."}
	pub := &fakePublisher{}
	svc := NewVoiceService(&fakeUowFactory{uow: uow}, llmFake, pub, nopLogger{}, "")

	res, err := svc.Ask(context.Background(), uuid.New(), &dto.AskTutorRequest{
		Transcript: "how do I manage a pneumothorax",
	})
	require.NoError(t, err)

	assert.Equal(t, "Decompress immediately.", res.Answer)
	assert.True(t, res.Generated)
	require.Len(t, res.MatchedContent, 1)
	assert.Equal(t, "content_1", res.MatchedContent[0].Id)

	// The composed prompt carries the matched material and the query.
	require.Len(t, llmFake.prompts, 1)
	assert.Contains(t, llmFake.prompts[0], "Tension Pneumothorax Management")
	assert.Contains(t, llmFake.prompts[0], "how do I manage a pneumothorax")

	// A successful turn is handed to the record pipeline.
	require.Len(t, pub.published, 1)
	record, ok := pub.published[0].(dto.PublishTutorRecordMessage)
	require.True(t, ok)
	assert.Equal(t, dto.RecordKindVoiceSession, record.Kind)
	require.NotNil(t, record.VoiceSession)
	assert.Equal(t, "content_1", record.VoiceSession.Topic)
}

func TestVoiceAsk_GenerationFailureFallsBack(t *testing.T) {
	uow := newFakeUow()
	uow.contents.items = []*entity.ContentItem{pneumothoraxItem()}

	llmFake := &fakeLLM{err: errors.New("model unavailable")}
	pub := &fakePublisher{}
	svc := NewVoiceService(&fakeUowFactory{uow: uow}, llmFake, pub, nopLogger{}, "")

	res, err := svc.Ask(context.Background(), uuid.New(), &dto.AskTutorRequest{
		Transcript: "pneumothorax",
	})
	require.NoError(t, err)

	assert.Equal(t, constant.GenerationFallbackMessage, res.Answer)
	assert.False(t, res.Generated)
	// Matches are still reported even when generation fails.
	assert.Len(t, res.MatchedContent, 1)
	// Nothing is recorded for a failed turn.
	assert.Empty(t, pub.published)
}

func TestVoiceAsk_NoMatches(t *testing.T) {
	uow := newFakeUow()
	uow.contents.items = []*entity.ContentItem{pneumothoraxItem()}

	llmFake := &fakeLLM{answer: "General guidance."}
	svc := NewVoiceService(&fakeUowFactory{uow: uow}, llmFake, &fakePublisher{}, nopLogger{}, "")

	res, err := svc.Ask(context.Background(), uuid.New(), &dto.AskTutorRequest{
		Transcript: "completely unrelated botany question",
	})
	require.NoError(t, err)

	assert.Empty(t, res.MatchedContent)
	require.Len(t, llmFake.prompts, 1)
	assert.NotContains(t, llmFake.prompts[0], "Relevant educational content")
}

func TestVoiceAsk_PersonaResolution(t *testing.T) {
	t.Run("override wins", func(t *testing.T) {
		uow := newFakeUow()
		llmFake := &fakeLLM{answer: "ok"}
		svc := NewVoiceService(&fakeUowFactory{uow: uow}, llmFake, &fakePublisher{}, nopLogger{}, "You are a cardiology fellow.")

		_, err := svc.Ask(context.Background(), uuid.New(), &dto.AskTutorRequest{Transcript: "hearts"})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(llmFake.prompts[0], "You are a cardiology fellow."))
	})

	t.Run("active prompt from database", func(t *testing.T) {
		uow := newFakeUow()
		uow.prompts.prompts = []*entity.TutorPrompt{{
			Id:         uuid.New(),
			PromptType: entity.PromptTypeFeedback,
			Content:    "You are a trauma surgeon.",
			IsActive:   true,
		}}
		llmFake := &fakeLLM{answer: "ok"}
		svc := NewVoiceService(&fakeUowFactory{uow: uow}, llmFake, &fakePublisher{}, nopLogger{}, "")

		_, err := svc.Ask(context.Background(), uuid.New(), &dto.AskTutorRequest{Transcript: "trauma"})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(llmFake.prompts[0], "You are a trauma surgeon."))
	})

	t.Run("default persona when nothing configured", func(t *testing.T) {
		uow := newFakeUow()
		llmFake := &fakeLLM{answer: "ok"}
		svc := NewVoiceService(&fakeUowFactory{uow: uow}, llmFake, &fakePublisher{}, nopLogger{}, "")

		_, err := svc.Ask(context.Background(), uuid.New(), &dto.AskTutorRequest{Transcript: "lungs"})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(llmFake.prompts[0], constant.DefaultTutorPersona))
	})
}
