//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetchDatasetRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   FetchDatasetRequest
		shouldErr bool
	}{
		{"Valid request", FetchDatasetRequest{Name: "ml-latest-small", SourceURL: "https://files.grouplens.org/datasets/movielens/ml-latest-small.zip", MinScore: 3.0}, false},
		{"Zero min score (valid)", FetchDatasetRequest{Name: "ml-latest-small", SourceURL: "https://example.com/ratings.zip"}, false},
		{"Missing name", FetchDatasetRequest{SourceURL: "https://example.com/ratings.zip", MinScore: 3.0}, true},
		{"Missing URL", FetchDatasetRequest{Name: "ml-latest-small", MinScore: 3.0}, true},
		{"Malformed URL", FetchDatasetRequest{Name: "ml-latest-small", SourceURL: "not-a-url", MinScore: 3.0}, true},
		{"Min score above range", FetchDatasetRequest{Name: "ml-latest-small", SourceURL: "https://example.com/ratings.zip", MinScore: 6.0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestRunRequest_Validate(t *testing.T) {
	datasetID := "3f1c29aa-74ad-4a63-8d8a-8a1f4f2b9c11"

	tests := []struct {
		name      string
		request   RunRequest
		shouldErr bool
	}{
		{"Valid livesketch", RunRequest{DatasetID: datasetID, Model: "livesketch", Dimensions: 128, Seed: 42}, false},
		{"Valid random projection", RunRequest{DatasetID: datasetID, Model: "random_projection", Dimensions: 64}, false},
		{"Unknown model", RunRequest{DatasetID: datasetID, Model: "word2vec", Dimensions: 128}, true},
		{"Missing dataset ID", RunRequest{Model: "livesketch", Dimensions: 128}, true},
		{"Non-UUID dataset ID", RunRequest{DatasetID: "dataset-1", Model: "livesketch", Dimensions: 128}, true},
		{"Dimensions too small", RunRequest{DatasetID: datasetID, Model: "livesketch", Dimensions: 1}, true},
		{"Dimensions too large", RunRequest{DatasetID: datasetID, Model: "livesketch", Dimensions: 8192}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestEvaluationRequest_Validate(t *testing.T) {
	datasetID := "3f1c29aa-74ad-4a63-8d8a-8a1f4f2b9c11"

	tests := []struct {
		name      string
		request   EvaluationRequest
		shouldErr bool
	}{
		{"Valid AUC request", EvaluationRequest{DatasetID: datasetID, Model: "livesketch", Dimensions: 128, Metric: "roc_auc", Operator: "hadamard", TestFraction: 0.2}, false},
		{"Valid precision request", EvaluationRequest{DatasetID: datasetID, Model: "livesketch", Dimensions: 128, Metric: "precision_at_k", Similarity: "hamming", K: 100}, false},
		{"Unknown metric", EvaluationRequest{DatasetID: datasetID, Model: "livesketch", Dimensions: 128, Metric: "f1"}, true},
		{"Unknown operator", EvaluationRequest{DatasetID: datasetID, Model: "livesketch", Dimensions: 128, Metric: "roc_auc", Operator: "subtract"}, true},
		{"Unknown similarity", EvaluationRequest{DatasetID: datasetID, Model: "livesketch", Dimensions: 128, Metric: "precision_at_k", Similarity: "euclidean"}, true},
		{"Test fraction too large", EvaluationRequest{DatasetID: datasetID, Model: "livesketch", Dimensions: 128, Metric: "roc_auc", Operator: "concat", TestFraction: 1.0}, true},
		{"Negative k", EvaluationRequest{DatasetID: datasetID, Model: "livesketch", Dimensions: 128, Metric: "precision_at_k", Similarity: "cosine", K: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}
