package v1

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the error payload returned by all handlers
type ErrorResponse struct {
	Message string `json:"message"`
}

// FetchDatasetRequest is the payload for registering and fetching a dataset
type FetchDatasetRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=255"`
	SourceURL string  `json:"source_url" validate:"required,url"`
	MinScore  float64 `json:"min_score" validate:"gte=0,lte=5"`
}

// Validate for validating FetchDatasetRequest struct
func (r *FetchDatasetRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid fetch dataset request: %w", err)
	}
	return nil
}

// DatasetResponse mirrors dataset metadata for API consumers
type DatasetResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	SourceURL       string    `json:"source_url"`
	MinScore        float64   `json:"min_score"`
	ArchiveSize     int64     `json:"archive_size"`
	ArchiveChecksum string    `json:"archive_checksum,omitempty"`
	UserCount       int       `json:"user_count"`
	ItemCount       int       `json:"item_count"`
	EdgeCount       int       `json:"edge_count"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// RunRequest is the payload for starting an embedding run
type RunRequest struct {
	DatasetID  string `json:"dataset_id" validate:"required,uuid4"`
	Model      string `json:"model" validate:"required,oneof=livesketch random_projection"`
	Dimensions int    `json:"dimensions" validate:"required,min=2,max=4096"`
	Seed       int64  `json:"seed" validate:"gte=0"`
}

// Validate for validating RunRequest struct
func (r *RunRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid run request: %w", err)
	}
	return nil
}

// RunResponse mirrors embedding run metadata for API consumers
type RunResponse struct {
	ID              string    `json:"id"`
	DatasetID       string    `json:"dataset_id"`
	Model           string    `json:"model"`
	Dimensions      int       `json:"dimensions"`
	Seed            int64     `json:"seed"`
	IndexPath       string    `json:"index_path"`
	BuildDurationMs int64     `json:"build_duration_ms"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// EvaluationRequest is the payload for running an evaluation. Operator and
// TestFraction apply to roc_auc, Similarity and K to precision_at_k.
type EvaluationRequest struct {
	DatasetID    string  `json:"dataset_id" validate:"required,uuid4"`
	Model        string  `json:"model" validate:"required,oneof=livesketch random_projection"`
	Dimensions   int     `json:"dimensions" validate:"required,min=2,max=4096"`
	Metric       string  `json:"metric" validate:"required,oneof=roc_auc precision_at_k"`
	Operator     string  `json:"operator" validate:"omitempty,oneof=concat hadamard average"`
	TestFraction float64 `json:"test_fraction" validate:"omitempty,gt=0,lt=1"`
	Similarity   string  `json:"similarity" validate:"omitempty,oneof=cosine hamming dot_product"`
	K            int     `json:"k" validate:"omitempty,min=1"`
	Seed         int64   `json:"seed" validate:"gte=0"`
}

// Validate for validating EvaluationRequest struct
func (r *EvaluationRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid evaluation request: %w", err)
	}
	return nil
}

// EvaluationResponse mirrors an evaluation result for API consumers
type EvaluationResponse struct {
	ID              string    `json:"id"`
	DatasetID       string    `json:"dataset_id"`
	Model           string    `json:"model"`
	Dimensions      int       `json:"dimensions"`
	Metric          string    `json:"metric"`
	Value           float64   `json:"value"`
	Operator        string    `json:"operator,omitempty"`
	Similarity      string    `json:"similarity,omitempty"`
	K               int       `json:"k,omitempty"`
	ElapsedMs       int64     `json:"elapsed_ms"`
	DateTimeCreated time.Time `json:"date_time_created"`
}
