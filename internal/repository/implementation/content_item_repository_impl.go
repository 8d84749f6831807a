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

type ContentItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentItemMapper
}

func NewContentItemRepository(db *gorm.DB) contract.ContentItemRepository {
	return &ContentItemRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentItemMapper(),
	}
}

func (r *ContentItemRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ContentItemRepositoryImpl) Create(ctx context.Context, item *entity.ContentItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *ContentItemRepositoryImpl) Update(ctx context.Context, item *entity.ContentItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *ContentItemRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.ContentItem{}, "id = ?", id).Error
}

func (r *ContentItemRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ContentItem, error) {
	var m model.ContentItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ContentItemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContentItem, error) {
	var models []*model.ContentItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ContentItemRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ContentItem{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
