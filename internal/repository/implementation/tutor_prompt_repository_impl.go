package implementation

import (
	"context"
	"errors"

	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/mapper"
	"ai-medtutor-be/internal/model"
	"ai-medtutor-be/internal/repository/contract"
	"ai-medtutor-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TutorPromptRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TutorPromptMapper
}

func NewTutorPromptRepository(db *gorm.DB) contract.TutorPromptRepository {
	return &TutorPromptRepositoryImpl{
		db:     db,
		mapper: mapper.NewTutorPromptMapper(),
	}
}

func (r *TutorPromptRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TutorPromptRepositoryImpl) Create(ctx context.Context, prompt *entity.TutorPrompt) error {
	m := r.mapper.ToModel(prompt)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*prompt = *r.mapper.ToEntity(m)
	return nil
}

func (r *TutorPromptRepositoryImpl) Update(ctx context.Context, prompt *entity.TutorPrompt) error {
	m := r.mapper.ToModel(prompt)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*prompt = *r.mapper.ToEntity(m)
	return nil
}

func (r *TutorPromptRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TutorPrompt{}, id).Error
}

func (r *TutorPromptRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TutorPrompt, error) {
	var m model.TutorPrompt
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TutorPromptRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TutorPrompt, error) {
	var models []*model.TutorPrompt
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
