package implementation

import (
	"context"
	"errors"

	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/mapper"
	"ai-medtutor-be/internal/model"
	"ai-medtutor-be/internal/repository/contract"
	"ai-medtutor-be/internal/repository/specification"

	"gorm.io/gorm"
)

type FlashCardRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FlashcardMapper
}

func NewFlashCardRepository(db *gorm.DB) contract.FlashCardRepository {
	return &FlashCardRepositoryImpl{
		db:     db,
		mapper: mapper.NewFlashcardMapper(),
	}
}

func (r *FlashCardRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FlashCardRepositoryImpl) Create(ctx context.Context, card *entity.FlashCard) error {
	m := r.mapper.ToModel(card)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*card = *r.mapper.ToEntity(m)
	return nil
}

func (r *FlashCardRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FlashCard, error) {
	var m model.FlashCard
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FlashCardRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FlashCard, error) {
	var models []*model.FlashCard
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

type FlashcardReviewRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FlashcardMapper
}

func NewFlashcardReviewRepository(db *gorm.DB) contract.FlashcardReviewRepository {
	return &FlashcardReviewRepositoryImpl{
		db:     db,
		mapper: mapper.NewFlashcardMapper(),
	}
}

func (r *FlashcardReviewRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FlashcardReviewRepositoryImpl) Create(ctx context.Context, review *entity.FlashcardReview) error {
	m := r.mapper.ReviewToModel(review)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*review = *r.mapper.ReviewToEntity(m)
	return nil
}

func (r *FlashcardReviewRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FlashcardReview, error) {
	var models []*model.FlashcardReview
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ReviewsToEntities(models), nil
}

func (r *FlashcardReviewRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.FlashcardReview{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
