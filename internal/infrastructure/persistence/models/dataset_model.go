package models

import (
	"time"

	"github.com/georgSquared/livesketch/internal/domain/datasets"
)

// DatasetModel is the GORM database model for dataset metadata (infrastructure concern)
type DatasetModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Name            string    `gorm:"not null;index;type:varchar(255)"`
	SourceURL       string    `gorm:"not null;type:varchar(2048)"`
	LocalPath       string    `gorm:"not null;type:varchar(1024)"`
	MinScore        float64   `gorm:"not null"`
	ArchiveSize     int64     `gorm:"not null"`
	ArchiveChecksum string    `gorm:"type:varchar(64)"`
	LeftCount       int       `gorm:"not null"`
	RightCount      int       `gorm:"not null"`
	EdgeCount       int       `gorm:"not null"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (DatasetModel) TableName() string {
	return "datasets"
}

// ToDomain converts GORM model to domain entity
func (m *DatasetModel) ToDomain() *datasets.DatasetMeta {
	return &datasets.DatasetMeta{
		ID:              m.ID,
		Name:            m.Name,
		SourceURL:       m.SourceURL,
		LocalPath:       m.LocalPath,
		MinScore:        m.MinScore,
		ArchiveSize:     m.ArchiveSize,
		ArchiveChecksum: m.ArchiveChecksum,
		LeftCount:       m.LeftCount,
		RightCount:      m.RightCount,
		EdgeCount:       m.EdgeCount,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *DatasetModel) FromDomain(d *datasets.DatasetMeta) {
	m.ID = d.ID
	m.Name = d.Name
	m.SourceURL = d.SourceURL
	m.LocalPath = d.LocalPath
	m.MinScore = d.MinScore
	m.ArchiveSize = d.ArchiveSize
	m.ArchiveChecksum = d.ArchiveChecksum
	m.LeftCount = d.LeftCount
	m.RightCount = d.RightCount
	m.EdgeCount = d.EdgeCount
	m.DateTimeCreated = d.DateTimeCreated
}
