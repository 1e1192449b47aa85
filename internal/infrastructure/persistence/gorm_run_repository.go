package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgSquared/livesketch/internal/domain/embeddings"
	"github.com/georgSquared/livesketch/internal/infrastructure/persistence/models"
	"github.com/georgSquared/livesketch/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormRunRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormRunRepository creates a new GORM-based EmbeddingRunRepository implementation
func NewGormRunRepository(db *gorm.DB, logger logger.Logger) (embeddings.EmbeddingRunRepository, error) {
	return &gormRunRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormRunRepository) Create(ctx context.Context, run *embeddings.RunMeta) error {
	if err := run.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.EmbeddingRunModel{}
	model.FromDomain(run)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create embedding run: %w", err)
	}

	r.logger.Info("Created embedding run with id ", run.ID)
	return nil
}

func (r *gormRunRepository) List(ctx context.Context, query *embeddings.RunQuery) ([]*embeddings.RunMeta, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.EmbeddingRunModel
	dbQuery := r.db.WithContext(ctx).Model(&models.EmbeddingRunModel{})

	if query.DatasetID != "" {
		dbQuery = dbQuery.Where("dataset_id = ?", query.DatasetID)
	}
	if query.Model != "" {
		dbQuery = dbQuery.Where("model = ?", query.Model)
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
		return nil, fmt.Errorf("failed to fetch embedding runs: %w", err)
	}

	domainList := make([]*embeddings.RunMeta, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormRunRepository) GetByID(ctx context.Context, runID string) (*embeddings.RunMeta, error) {
	var model models.EmbeddingRunModel
	if err := r.db.WithContext(ctx).Where("id = ?", runID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("embedding run with ID %s not found", runID)
		}
		return nil, fmt.Errorf("failed to fetch embedding run: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormRunRepository) DeleteByID(ctx context.Context, runID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", runID).Delete(&models.EmbeddingRunModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete embedding run: %w", err)
	}

	r.logger.Info("Deleted embedding run with id ", runID)
	return nil
}
