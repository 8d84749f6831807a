package unitofwork

import (
	"context"

	"ai-medtutor-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ContentItemRepository() contract.ContentItemRepository
	FlashCardRepository() contract.FlashCardRepository
	FlashcardReviewRepository() contract.FlashcardReviewRepository
	CaseStudyRepository() contract.CaseStudyRepository
	CaseCompletionRepository() contract.CaseCompletionRepository
	VoiceSessionRepository() contract.VoiceSessionRepository
	TutorPromptRepository() contract.TutorPromptRepository
	KnowledgeProgressRepository() contract.KnowledgeProgressRepository
}
