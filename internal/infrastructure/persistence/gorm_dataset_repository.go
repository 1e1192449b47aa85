package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgSquared/livesketch/internal/domain/datasets"
	"github.com/georgSquared/livesketch/internal/infrastructure/persistence/models"
	"github.com/georgSquared/livesketch/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormDatasetRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormDatasetRepository creates a new GORM-based DatasetRepository implementation
func NewGormDatasetRepository(db *gorm.DB, logger logger.Logger) (datasets.DatasetRepository, error) {
	return &gormDatasetRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormDatasetRepository) Create(ctx context.Context, dataset *datasets.DatasetMeta) error {
	if err := dataset.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.DatasetModel{}
	model.FromDomain(dataset)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create dataset metadata: %w", err)
	}

	r.logger.Info("Created dataset metadata with id ", dataset.ID)
	return nil
}

func (r *gormDatasetRepository) List(ctx context.Context, query *datasets.DatasetQuery) ([]*datasets.DatasetMeta, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.DatasetModel
	dbQuery := r.db.WithContext(ctx).Model(&models.DatasetModel{})

	if query.Name != "" {
		dbQuery = dbQuery.Where("name = ?", query.Name)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch dataset metadata: %w", err)
	}

	domainList := make([]*datasets.DatasetMeta, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormDatasetRepository) GetByID(ctx context.Context, datasetID string) (*datasets.DatasetMeta, error) {
	var model models.DatasetModel
	if err := r.db.WithContext(ctx).Where("id = ?", datasetID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("dataset with ID %s not found", datasetID)
		}
		return nil, fmt.Errorf("failed to fetch dataset: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormDatasetRepository) UpdateByID(ctx context.Context, dataset *datasets.DatasetMeta) error {
	if err := dataset.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.DatasetModel{}
	model.FromDomain(dataset)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update dataset metadata: %w", err)
	}

	r.logger.Info("Updated dataset metadata with id ", dataset.ID)
	return nil
}

func (r *gormDatasetRepository) DeleteByID(ctx context.Context, datasetID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", datasetID).Delete(&models.DatasetModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete dataset metadata: %w", err)
	}

	r.logger.Info("Deleted dataset metadata with id ", datasetID)
	return nil
}
