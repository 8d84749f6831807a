package unitofwork

import (
	"context"
	"fmt"

	"ai-medtutor-be/internal/repository/contract"
	"ai-medtutor-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) ContentItemRepository() contract.ContentItemRepository {
	return implementation.NewContentItemRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FlashCardRepository() contract.FlashCardRepository {
	return implementation.NewFlashCardRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FlashcardReviewRepository() contract.FlashcardReviewRepository {
	return implementation.NewFlashcardReviewRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CaseStudyRepository() contract.CaseStudyRepository {
	return implementation.NewCaseStudyRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CaseCompletionRepository() contract.CaseCompletionRepository {
	return implementation.NewCaseCompletionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) VoiceSessionRepository() contract.VoiceSessionRepository {
	return implementation.NewVoiceSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TutorPromptRepository() contract.TutorPromptRepository {
	return implementation.NewTutorPromptRepository(u.getDB())
}

func (u *UnitOfWorkImpl) KnowledgeProgressRepository() contract.KnowledgeProgressRepository {
	return implementation.NewKnowledgeProgressRepository(u.getDB())
}
