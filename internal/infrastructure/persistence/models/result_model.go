package models

import (
	"time"

	"github.com/georgSquared/livesketch/internal/domain/evaluation"
)

// EvaluationResultModel is the GORM database model for evaluation results (infrastructure concern)
type EvaluationResultModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	DatasetID       string    `gorm:"not null;index;type:uuid"`
	Model           string    `gorm:"not null;index;type:varchar(50)"`
	Dimensions      int       `gorm:"not null"`
	Metric          string    `gorm:"not null;index;type:varchar(50)"`
	Value           float64   `gorm:"not null"`
	Operator        string    `gorm:"type:varchar(50)"`
	Similarity      string    `gorm:"type:varchar(50)"`
	K               int       `gorm:"not null"`
	ElapsedMs       int64     `gorm:"not null"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (EvaluationResultModel) TableName() string {
	return "evaluation_results"
}

// ToDomain converts GORM model to domain entity
func (m *EvaluationResultModel) ToDomain() *evaluation.Result {
	return &evaluation.Result{
		ID:              m.ID,
		DatasetID:       m.DatasetID,
		Model:           m.Model,
		Dimensions:      m.Dimensions,
		Metric:          m.Metric,
		Value:           m.Value,
		Operator:        m.Operator,
		Similarity:      m.Similarity,
		K:               m.K,
		ElapsedMs:       m.ElapsedMs,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EvaluationResultModel) FromDomain(r *evaluation.Result) {
	m.ID = r.ID
	m.DatasetID = r.DatasetID
	m.Model = r.Model
	m.Dimensions = r.Dimensions
	m.Metric = r.Metric
	m.Value = r.Value
	m.Operator = r.Operator
	m.Similarity = r.Similarity
	m.K = r.K
	m.ElapsedMs = r.ElapsedMs
	m.DateTimeCreated = r.DateTimeCreated
}
