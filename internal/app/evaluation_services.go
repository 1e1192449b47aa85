package app

import (
	"container/heap"
	"context"
	"fmt"
	"time"

	"github.com/georgSquared/livesketch/internal/domain/datasets"
	"github.com/georgSquared/livesketch/internal/domain/embeddings"
	"github.com/georgSquared/livesketch/internal/domain/evaluation"
	"github.com/georgSquared/livesketch/internal/domain/graph"
	"github.com/georgSquared/livesketch/internal/infrastructure/classify"
	"github.com/georgSquared/livesketch/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
)

// evaluationService implements the EvaluationService interface for scoring embedding models
type evaluationService struct {
	datasetService datasets.DatasetService
	resultRepo     evaluation.ResultRepository
	newEmbedder    embeddings.EmbedderFactory
	newClassifier  evaluation.ClassifierFactory
	showProgress   bool
	logger         logger.Logger
}

// NewEvaluationService creates a new instance of EvaluationService. When
// showProgress is set, the pairwise similarity scan renders a progress bar on
// stderr, which is what the CLI wants and the REST API does not.
func NewEvaluationService(
	datasetService datasets.DatasetService,
	resultRepo evaluation.ResultRepository,
	newEmbedder embeddings.EmbedderFactory,
	newClassifier evaluation.ClassifierFactory,
	showProgress bool,
	logger logger.Logger,
) (evaluation.EvaluationService, error) {
	return &evaluationService{
		datasetService: datasetService,
		resultRepo:     resultRepo,
		newEmbedder:    newEmbedder,
		newClassifier:  newClassifier,
		showProgress:   showProgress,
		logger:         logger,
	}, nil
}

// EvaluateAUC holds out a fraction of edges, fits the model on the train graph,
// trains a classifier on edge embeddings and returns the ROC AUC over the
// held-out edges.
func (s *evaluationService) EvaluateAUC(ctx context.Context, params evaluation.AUCParams) (*evaluation.Result, error) {
	g, _, err := s.datasetService.LoadGraph(ctx, params.DatasetID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	sample, err := graph.SplitEdges(g, params.TestFraction, params.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to split edges: %w", err)
	}
	if sample.NegativeShortfall > 0 {
		s.logger.Warn("negative sampling fell short by ", sample.NegativeShortfall,
			" non-edges; the AUC is computed on unbalanced label sets")
	}

	embedder, err := s.newEmbedder(params.Model, params.Dimensions, params.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	start := time.Now()
	if err := embedder.Fit(sample.Train); err != nil {
		return nil, fmt.Errorf("failed to fit %s model: %w", params.Model, err)
	}

	matrix := embedder.Embedding()

	trainX, trainY, err := edgeFeatures(matrix, params.Operator, sample.TrainEdges)
	if err != nil {
		return nil, fmt.Errorf("failed to build train edge embeddings: %w", err)
	}
	testX, testY, err := edgeFeatures(matrix, params.Operator, sample.TestEdges)
	if err != nil {
		return nil, fmt.Errorf("failed to build test edge embeddings: %w", err)
	}

	classifier, err := s.newClassifier(params.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create classifier: %w", err)
	}
	if err := classifier.Fit(trainX, trainY); err != nil {
		return nil, fmt.Errorf("failed to train classifier: %w", err)
	}

	scores, err := classifier.PredictProba(testX)
	if err != nil {
		return nil, fmt.Errorf("failed to score test edges: %w", err)
	}

	auc, err := classify.ROCAUC(scores, testY)
	if err != nil {
		return nil, fmt.Errorf("failed to compute ROC AUC: %w", err)
	}
	elapsed := time.Since(start)

	result := &evaluation.Result{
		ID:              uuid.NewString(),
		DatasetID:       params.DatasetID,
		Model:           params.Model,
		Dimensions:      params.Dimensions,
		Metric:          evaluation.MetricROCAUC,
		Value:           auc,
		Operator:        string(params.Operator),
		ElapsedMs:       elapsed.Milliseconds(),
		DateTimeCreated: time.Now(),
	}

	if err := s.resultRepo.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to save evaluation result: %w", err)
	}

	s.logger.Info("ROC AUC evaluation completed",
		" dataset_id ", params.DatasetID,
		" model ", params.Model,
		" operator ", params.Operator,
		" auc ", auc)

	return result, nil
}

// EvaluatePrecisionAtK fits the model on the full graph, ranks all node pairs
// by similarity and returns the fraction of the top-k pairs that are existing
// edges.
func (s *evaluationService) EvaluatePrecisionAtK(ctx context.Context, params evaluation.PrecisionParams) (*evaluation.Result, error) {
	g, _, err := s.datasetService.LoadGraph(ctx, params.DatasetID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	embedder, err := s.newEmbedder(params.Model, params.Dimensions, params.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	start := time.Now()
	if err := embedder.Fit(g); err != nil {
		return nil, fmt.Errorf("failed to fit %s model: %w", params.Model, err)
	}
	s.logger.Info("node embeddings calculated in ", time.Since(start).Milliseconds(), " ms")

	matrix := embedder.Embedding()

	top, err := s.topPairs(matrix, params.Similarity, params.K)
	if err != nil {
		return nil, fmt.Errorf("failed to rank node pairs: %w", err)
	}

	truePositives := 0
	for _, pair := range top {
		if g.HasEdge(pair.u, pair.v) {
			truePositives++
		}
	}
	precision := float64(truePositives) / float64(len(top))
	elapsed := time.Since(start)

	result := &evaluation.Result{
		ID:              uuid.NewString(),
		DatasetID:       params.DatasetID,
		Model:           params.Model,
		Dimensions:      params.Dimensions,
		Metric:          evaluation.MetricPrecisionAtK,
		Value:           precision,
		Similarity:      string(params.Similarity),
		K:               len(top),
		ElapsedMs:       elapsed.Milliseconds(),
		DateTimeCreated: time.Now(),
	}

	if err := s.resultRepo.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to save evaluation result: %w", err)
	}

	s.logger.Info("precision@k evaluation completed",
		" dataset_id ", params.DatasetID,
		" model ", params.Model,
		" similarity ", params.Similarity,
		" k ", len(top),
		" precision ", precision)

	return result, nil
}

// List retrieves evaluation results considering a query filter
func (s *evaluationService) List(ctx context.Context, query *evaluation.ResultQuery) ([]*evaluation.Result, error) {
	results, err := s.resultRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return results, nil
}

// scoredPair is a node pair with its similarity score.
type scoredPair struct {
	u, v  int
	score float64
}

// topPairs scans the strict lower triangle of the pairwise similarity matrix
// and keeps the k best-scoring pairs via a bounded min-heap.
func (s *evaluationService) topPairs(matrix [][]float32, measure embeddings.SimilarityMeasure, k int) ([]scoredPair, error) {
	n := len(matrix)
	if n < 2 {
		return nil, fmt.Errorf("need at least two embedded nodes, got %d", n)
	}

	totalPairs := n * (n - 1) / 2
	if k <= 0 {
		return nil, fmt.Errorf("k must be positive, got %d", k)
	}
	if k > totalPairs {
		k = totalPairs
	}

	var bar *progressbar.ProgressBar
	if s.showProgress {
		bar = progressbar.Default(int64(totalPairs), "scoring pairs")
	}

	h := &pairHeap{}
	heap.Init(h)

	for v := 1; v < n; v++ {
		for u := 0; u < v; u++ {
			score, err := embeddings.Similarity(measure, matrix[u], matrix[v])
			if err != nil {
				return nil, err
			}

			if h.Len() < k {
				heap.Push(h, scoredPair{u: u, v: v, score: score})
			} else if score > (*h)[0].score {
				(*h)[0] = scoredPair{u: u, v: v, score: score}
				heap.Fix(h, 0)
			}
		}
		if bar != nil {
			_ = bar.Add(v)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	return *h, nil
}

// pairHeap is a min-heap of scoredPair ordered by score.
type pairHeap []scoredPair

func (h pairHeap) Len() int            { return len(h) }
func (h pairHeap) Less(i, j int) bool  { return h[i].score < h[j].score }
func (h pairHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *pairHeap) Push(x interface{}) { *h = append(*h, x.(scoredPair)) }
func (h *pairHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// edgeFeatures builds one feature vector per labeled edge using the operator.
func edgeFeatures(matrix [][]float32, operator embeddings.EdgeOperator, edges []graph.LabeledEdge) ([][]float32, []int, error) {
	features := make([][]float32, len(edges))
	labels := make([]int, len(edges))

	for i, e := range edges {
		if e.U >= len(matrix) || e.V >= len(matrix) {
			return nil, nil, fmt.Errorf("edge (%d, %d) outside embedding matrix of %d rows", e.U, e.V, len(matrix))
		}
		feature, err := embeddings.EdgeEmbedding(operator, matrix[e.U], matrix[e.V])
		if err != nil {
			return nil, nil, err
		}
		features[i] = feature
		labels[i] = e.Label
	}

	return features, labels, nil
}
