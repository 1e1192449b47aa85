package embeddings

import (
	"errors"
	"fmt"
	"time"

	"github.com/georgSquared/livesketch/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// RunMeta entity describing one embedding computation over a dataset
type RunMeta struct {
	ID              string    `validate:"required,uuid4"`
	DatasetID       string    `validate:"required,uuid4"`
	Model           string    `validate:"required,oneof=livesketch random_projection"`
	Dimensions      int       `validate:"required,dimensionValidation"`
	Seed            int64     `validate:"gte=0"`
	IndexPath       string    `validate:"required"`
	BuildDurationMs int64     `validate:"gte=0"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating RunMeta struct
func (r *RunMeta) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("dimensionValidation", validators.DimensionValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(r)
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

// RunQuery is the filter used when listing run metadata
type RunQuery struct {
	DatasetID string `validate:"omitempty,uuid4"`
	Model     string `validate:"omitempty,oneof=livesketch random_projection"`
	SortBy    string `validate:"omitempty,oneof=date_time_created model dimensions"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"gte=0"`
	Offset    int    `validate:"gte=0"`
}

// Validate for validating RunQuery struct
func (q *RunQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("invalid run query: %w", err)
	}
	return nil
}
