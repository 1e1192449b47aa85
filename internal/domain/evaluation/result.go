package evaluation

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Metric name constants
const (
	MetricROCAUC       = "roc_auc"
	MetricPrecisionAtK = "precision_at_k"
)

// Result entity describing one evaluation of an embedding model on a dataset
type Result struct {
	ID              string    `validate:"required,uuid4"`
	DatasetID       string    `validate:"required,uuid4"`
	Model           string    `validate:"required,oneof=livesketch random_projection"`
	Dimensions      int       `validate:"required,min=2"`
	Metric          string    `validate:"required,oneof=roc_auc precision_at_k"`
	Value           float64   `validate:"gte=0"`
	Operator        string    `validate:"omitempty,oneof=concat hadamard average"`
	Similarity      string    `validate:"omitempty,oneof=cosine hamming dot_product"`
	K               int       `validate:"gte=0"`
	ElapsedMs       int64     `validate:"gte=0"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Result struct
func (r *Result) Validate() error {
	validate := validator.New()

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

// ResultQuery is the filter used when listing evaluation results
type ResultQuery struct {
	DatasetID string `validate:"omitempty,uuid4"`
	Metric    string `validate:"omitempty,oneof=roc_auc precision_at_k"`
	Model     string `validate:"omitempty,oneof=livesketch random_projection"`
	SortBy    string `validate:"omitempty,oneof=date_time_created value metric"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"gte=0"`
	Offset    int    `validate:"gte=0"`
}

// Validate for validating ResultQuery struct
func (q *ResultQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("invalid result query: %w", err)
	}
	return nil
}
