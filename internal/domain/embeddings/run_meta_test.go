//go:build unit
// +build unit

package embeddings

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func validRunMeta() RunMeta {
	return RunMeta{
		ID:              uuid.NewString(),
		DatasetID:       uuid.NewString(),
		Model:           ModelLiveSketch,
		Dimensions:      128,
		Seed:            42,
		IndexPath:       "/tmp/livesketch/indexes/run.json",
		BuildDurationMs: 1500,
		DateTimeCreated: time.Now(),
	}
}

func TestRunMeta_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*RunMeta)
		shouldErr bool
	}{
		{"Valid livesketch run", func(r *RunMeta) {}, false},
		{"Valid random projection run", func(r *RunMeta) {
			r.Model = ModelRandomProjection
			r.Dimensions = 64
		}, false},
		{"Missing ID", func(r *RunMeta) { r.ID = "" }, true},
		{"Non-UUID dataset ID", func(r *RunMeta) { r.DatasetID = "dataset-1" }, true},
		{"Unknown model", func(r *RunMeta) { r.Model = "word2vec" }, true},
		{"Livesketch dimensions below range", func(r *RunMeta) { r.Dimensions = 4 }, true},
		{"Livesketch dimensions above range", func(r *RunMeta) { r.Dimensions = 2048 }, true},
		{"Random projection wide dimensions", func(r *RunMeta) {
			r.Model = ModelRandomProjection
			r.Dimensions = 2048
		}, false},
		{"Missing index path", func(r *RunMeta) { r.IndexPath = "" }, true},
		{"Negative seed", func(r *RunMeta) { r.Seed = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := validRunMeta()
			tt.mutate(&run)

			err := run.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestRunQuery_Validate(t *testing.T) {
	valid := RunQuery{Model: ModelLiveSketch, SortBy: "date_time_created", SortOrder: "desc", Limit: 10}
	require.NoError(t, valid.Validate())

	invalid := RunQuery{SortBy: "seed"}
	require.Error(t, invalid.Validate())
}
