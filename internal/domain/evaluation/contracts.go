package evaluation

import (
	"context"

	"github.com/georgSquared/livesketch/internal/domain/embeddings"
)

// AUCParams configures a link-prediction ROC AUC evaluation.
type AUCParams struct {
	DatasetID    string
	Model        string
	Dimensions   int
	Operator     embeddings.EdgeOperator
	TestFraction float64
	Seed         int64
}

// PrecisionParams configures a precision-at-k evaluation.
type PrecisionParams struct {
	DatasetID  string
	Model      string
	Dimensions int
	Similarity embeddings.SimilarityMeasure
	K          int
	Seed       int64
}

// EvaluationService defines methods for scoring embedding models.
type EvaluationService interface {
	// EvaluateAUC holds out a fraction of edges, fits the model on the train
	// graph, trains a classifier on edge embeddings and returns the ROC AUC
	// over the held-out edges.
	EvaluateAUC(ctx context.Context, params AUCParams) (*Result, error)

	// EvaluatePrecisionAtK fits the model on the full graph, ranks all node
	// pairs by similarity and returns the fraction of the top-k pairs that
	// are existing edges.
	EvaluatePrecisionAtK(ctx context.Context, params PrecisionParams) (*Result, error)

	// List retrieves evaluation results considering a query filter when set.
	List(ctx context.Context, query *ResultQuery) ([]*Result, error)
}

// ResultRepository defines the persistence operations for evaluation results
type ResultRepository interface {
	// Create adds a new evaluation result to the database
	Create(ctx context.Context, result *Result) error
	// List lists evaluation results in the database with optional filter
	List(ctx context.Context, query *ResultQuery) ([]*Result, error)
	// GetByID retrieves an evaluation result from the database by ID
	GetByID(ctx context.Context, resultID string) (*Result, error)
	// DeleteByID deletes an evaluation result in the database by ID
	DeleteByID(ctx context.Context, resultID string) error
}

// ClassifierFactory constructs a classifier seeded for deterministic training.
type ClassifierFactory func(seed int64) (Classifier, error)

// Classifier is a binary classifier over edge embeddings.
type Classifier interface {
	// Fit trains the classifier on feature vectors and binary labels.
	Fit(samples [][]float32, labels []int) error

	// PredictProba returns the positive-class probability for each sample.
	PredictProba(samples [][]float32) ([]float64, error)
}
