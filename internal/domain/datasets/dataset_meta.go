package datasets

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DatasetMeta entity describing a fetched rating dataset
type DatasetMeta struct {
	ID              string    `validate:"required,uuid4"`
	Name            string    `validate:"required,min=1,max=255"`
	SourceURL       string    `validate:"required,url"`
	LocalPath       string    `validate:"required"`
	MinScore        float64   `validate:"gte=0,lte=5"`
	ArchiveSize     int64     `validate:"gte=0"`
	ArchiveChecksum string    `validate:"omitempty,len=64,hexadecimal"`
	LeftCount       int       `validate:"required,min=1"`
	RightCount      int       `validate:"required,min=1"`
	EdgeCount       int       `validate:"required,min=1"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating DatasetMeta struct
func (d *DatasetMeta) Validate() error {
	validate := validator.New()

	err := validate.Struct(d)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// DatasetQuery is the filter used when listing dataset metadata
type DatasetQuery struct {
	Name      string `validate:"omitempty,max=255"`
	SortBy    string `validate:"omitempty,oneof=date_time_created name edge_count"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"gte=0"`
	Offset    int    `validate:"gte=0"`
}

// Validate for validating DatasetQuery struct
func (q *DatasetQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("invalid dataset query: %w", err)
	}
	return nil
}
