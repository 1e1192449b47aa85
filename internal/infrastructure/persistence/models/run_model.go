package models

import (
	"time"

	"github.com/georgSquared/livesketch/internal/domain/embeddings"
)

// EmbeddingRunModel is the GORM database model for embedding runs (infrastructure concern)
type EmbeddingRunModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	DatasetID       string    `gorm:"not null;index;type:uuid"`
	Model           string    `gorm:"not null;index;type:varchar(50)"`
	Dimensions      int       `gorm:"not null"`
	Seed            int64     `gorm:"not null"`
	IndexPath       string    `gorm:"not null;type:varchar(1024)"`
	BuildDurationMs int64     `gorm:"not null"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (EmbeddingRunModel) TableName() string {
	return "embedding_runs"
}

// ToDomain converts GORM model to domain entity
func (m *EmbeddingRunModel) ToDomain() *embeddings.RunMeta {
	return &embeddings.RunMeta{
		ID:              m.ID,
		DatasetID:       m.DatasetID,
		Model:           m.Model,
		Dimensions:      m.Dimensions,
		Seed:            m.Seed,
		IndexPath:       m.IndexPath,
		BuildDurationMs: m.BuildDurationMs,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EmbeddingRunModel) FromDomain(r *embeddings.RunMeta) {
	m.ID = r.ID
	m.DatasetID = r.DatasetID
	m.Model = r.Model
	m.Dimensions = r.Dimensions
	m.Seed = r.Seed
	m.IndexPath = r.IndexPath
	m.BuildDurationMs = r.BuildDurationMs
	m.DateTimeCreated = r.DateTimeCreated
}
