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

type CaseStudyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CaseMapper
}

func NewCaseStudyRepository(db *gorm.DB) contract.CaseStudyRepository {
	return &CaseStudyRepositoryImpl{
		db:     db,
		mapper: mapper.NewCaseMapper(),
	}
}

func (r *CaseStudyRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CaseStudyRepositoryImpl) Create(ctx context.Context, cs *entity.CaseStudy) error {
	m := r.mapper.ToModel(cs)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*cs = *r.mapper.ToEntity(m)
	return nil
}

func (r *CaseStudyRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CaseStudy, error) {
	var m model.CaseStudy
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Questions"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CaseStudyRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CaseStudy, error) {
	var models []*model.CaseStudy
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Questions"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

type CaseCompletionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CaseMapper
}

func NewCaseCompletionRepository(db *gorm.DB) contract.CaseCompletionRepository {
	return &CaseCompletionRepositoryImpl{
		db:     db,
		mapper: mapper.NewCaseMapper(),
	}
}

func (r *CaseCompletionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CaseCompletionRepositoryImpl) Create(ctx context.Context, completion *entity.CaseCompletion) error {
	m := r.mapper.CompletionToModel(completion)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*completion = *r.mapper.CompletionToEntity(m)
	return nil
}

func (r *CaseCompletionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CaseCompletion, error) {
	var models []*model.CaseCompletion
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.CompletionsToEntities(models), nil
}

func (r *CaseCompletionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CaseCompletion{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
