package service

import (
	"context"
	"errors"

	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/repository/contract"
	"ai-medtutor-be/internal/repository/specification"
	"ai-medtutor-be/internal/repository/unitofwork"
	"ai-medtutor-be/pkg/llm"

	"github.com/google/uuid"
)

// In-memory doubles for the persistence layer. Specifications are ignored;
// tests preload exactly the rows a scenario needs.

type fakeUow struct {
	contents    *fakeContentRepo
	cards       *fakeFlashcardRepo
	reviews     *fakeReviewRepo
	cases       *fakeCaseRepo
	completions *fakeCompletionRepo
	sessions    *fakeVoiceSessionRepo
	prompts     *fakePromptRepo
	progress    *fakeProgressRepo
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		contents:    &fakeContentRepo{},
		cards:       &fakeFlashcardRepo{},
		reviews:     &fakeReviewRepo{},
		cases:       &fakeCaseRepo{},
		completions: &fakeCompletionRepo{},
		sessions:    &fakeVoiceSessionRepo{},
		prompts:     &fakePromptRepo{},
		progress:    &fakeProgressRepo{},
	}
}

func (u *fakeUow) Begin(_ context.Context) error { return nil }
func (u *fakeUow) Commit() error                 { return nil }
func (u *fakeUow) Rollback() error               { return nil }

func (u *fakeUow) ContentItemRepository() contract.ContentItemRepository { return u.contents }
func (u *fakeUow) FlashCardRepository() contract.FlashCardRepository     { return u.cards }
func (u *fakeUow) FlashcardReviewRepository() contract.FlashcardReviewRepository {
	return u.reviews
}
func (u *fakeUow) CaseStudyRepository() contract.CaseStudyRepository { return u.cases }
func (u *fakeUow) CaseCompletionRepository() contract.CaseCompletionRepository {
	return u.completions
}
func (u *fakeUow) VoiceSessionRepository() contract.VoiceSessionRepository { return u.sessions }
func (u *fakeUow) TutorPromptRepository() contract.TutorPromptRepository   { return u.prompts }
func (u *fakeUow) KnowledgeProgressRepository() contract.KnowledgeProgressRepository {
	return u.progress
}

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork { return f.uow }

type fakeContentRepo struct {
	items []*entity.ContentItem
}

func (r *fakeContentRepo) Create(_ context.Context, item *entity.ContentItem) error {
	r.items = append(r.items, item)
	return nil
}

func (r *fakeContentRepo) Update(_ context.Context, item *entity.ContentItem) error {
	for i, existing := range r.items {
		if existing.Id == item.Id {
			r.items[i] = item
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeContentRepo) Delete(_ context.Context, id string) error {
	for i, existing := range r.items {
		if existing.Id == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeContentRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.ContentItem, error) {
	if len(r.items) == 0 {
		return nil, nil
	}
	return r.items[0], nil
}

func (r *fakeContentRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.ContentItem, error) {
	return r.items, nil
}

func (r *fakeContentRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.items)), nil
}

type fakeFlashcardRepo struct {
	cards []*entity.FlashCard
}

func (r *fakeFlashcardRepo) Create(_ context.Context, card *entity.FlashCard) error {
	r.cards = append(r.cards, card)
	return nil
}

func (r *fakeFlashcardRepo) FindOne(_ context.Context, _ ...specification.Specification) (*entity.FlashCard, error) {
	if len(r.cards) == 0 {
		return nil, nil
	}
	return r.cards[0], nil
}

func (r *fakeFlashcardRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.FlashCard, error) {
	return r.cards, nil
}

type fakeReviewRepo struct {
	reviews []*entity.FlashcardReview
}

func (r *fakeReviewRepo) Create(_ context.Context, review *entity.FlashcardReview) error {
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *fakeReviewRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.FlashcardReview, error) {
	return r.reviews, nil
}

func (r *fakeReviewRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.reviews)), nil
}

type fakeCaseRepo struct {
	cases []*entity.CaseStudy
}

func (r *fakeCaseRepo) Create(_ context.Context, cs *entity.CaseStudy) error {
	r.cases = append(r.cases, cs)
	return nil
}

func (r *fakeCaseRepo) FindOne(_ context.Context, _ ...specification.Specification) (*entity.CaseStudy, error) {
	if len(r.cases) == 0 {
		return nil, nil
	}
	return r.cases[0], nil
}

func (r *fakeCaseRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.CaseStudy, error) {
	return r.cases, nil
}

type fakeCompletionRepo struct {
	completions []*entity.CaseCompletion
}

func (r *fakeCompletionRepo) Create(_ context.Context, completion *entity.CaseCompletion) error {
	r.completions = append(r.completions, completion)
	return nil
}

func (r *fakeCompletionRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.CaseCompletion, error) {
	return r.completions, nil
}

func (r *fakeCompletionRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.completions)), nil
}

type fakeVoiceSessionRepo struct {
	sessions []*entity.VoiceSession
}

func (r *fakeVoiceSessionRepo) Create(_ context.Context, session *entity.VoiceSession) error {
	r.sessions = append(r.sessions, session)
	return nil
}

func (r *fakeVoiceSessionRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.VoiceSession, error) {
	return r.sessions, nil
}

func (r *fakeVoiceSessionRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.sessions)), nil
}

type fakePromptRepo struct {
	prompts []*entity.TutorPrompt
}

func (r *fakePromptRepo) Create(_ context.Context, prompt *entity.TutorPrompt) error {
	r.prompts = append(r.prompts, prompt)
	return nil
}

func (r *fakePromptRepo) Update(_ context.Context, prompt *entity.TutorPrompt) error {
	for i, existing := range r.prompts {
		if existing.Id == prompt.Id {
			r.prompts[i] = prompt
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakePromptRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, existing := range r.prompts {
		if existing.Id == id {
			r.prompts = append(r.prompts[:i], r.prompts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakePromptRepo) FindOne(_ context.Context, _ ...specification.Specification) (*entity.TutorPrompt, error) {
	if len(r.prompts) == 0 {
		return nil, nil
	}
	return r.prompts[0], nil
}

func (r *fakePromptRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.TutorPrompt, error) {
	return r.prompts, nil
}

type fakeProgressRepo struct {
	rows []*entity.KnowledgeProgress
}

func (r *fakeProgressRepo) Upsert(_ context.Context, progress *entity.KnowledgeProgress) error {
	for i, existing := range r.rows {
		if existing.UserId == progress.UserId && existing.Area == progress.Area {
			r.rows[i] = progress
			return nil
		}
	}
	r.rows = append(r.rows, progress)
	return nil
}

func (r *fakeProgressRepo) Touch(_ context.Context, progress *entity.KnowledgeProgress) error {
	for _, existing := range r.rows {
		if existing.UserId == progress.UserId && existing.Area == progress.Area {
			existing.LastStudied = progress.LastStudied
			return nil
		}
	}
	r.rows = append(r.rows, progress)
	return nil
}

func (r *fakeProgressRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.KnowledgeProgress, error) {
	return r.rows, nil
}

// fakeLLM returns a canned answer, or fails when told to.
type fakeLLM struct {
	answer  string
	err     error
	prompts []string
}

func (f *fakeLLM) Chat(_ context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	if len(history) > 0 {
		f.prompts = append(f.prompts, history[len(history)-1].Content)
	}
	return f.answer, f.err
}

func (f *fakeLLM) Generate(_ context.Context, prompt string, _ ...llm.Option) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.answer, f.err
}

// fakePublisher captures published record payloads.
type fakePublisher struct {
	published []interface{}
	err       error
}

func (f *fakePublisher) Publish(payload interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, payload)
	return nil
}

// nopLogger keeps test output quiet.
type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
