package classify

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/georgSquared/livesketch/internal/domain/evaluation"
	"github.com/georgSquared/livesketch/internal/pkg/logger"

	"gonum.org/v1/gonum/floats"
)

// Training hyperparameters. Edge embeddings are low-dimensional and the label
// sets balanced, so plain SGD with a fixed schedule converges reliably.
const (
	defaultEpochs       = 100
	defaultLearningRate = 0.1
)

// logisticRegression is an L2-free logistic regression trained with seeded
// stochastic gradient descent.
type logisticRegression struct {
	weights []float64
	bias    float64
	epochs  int
	rate    float64
	seed    int64
	logger  logger.Logger
}

// NewLogisticRegression creates a logistic-regression classifier. Training is
// deterministic for a fixed seed.
func NewLogisticRegression(seed int64, logger logger.Logger) (evaluation.Classifier, error) {
	return &logisticRegression{
		epochs: defaultEpochs,
		rate:   defaultLearningRate,
		seed:   seed,
		logger: logger,
	}, nil
}

// Fit trains the classifier on feature vectors and binary labels.
func (c *logisticRegression) Fit(samples [][]float32, labels []int) error {
	if len(samples) == 0 {
		return fmt.Errorf("no training samples provided")
	}
	if len(samples) != len(labels) {
		return fmt.Errorf("sample count %d does not match label count %d", len(samples), len(labels))
	}

	features := len(samples[0])
	x := make([][]float64, len(samples))
	for i, sample := range samples {
		if len(sample) != features {
			return fmt.Errorf("sample %d has %d features, expected %d", i, len(sample), features)
		}
		x[i] = toFloat64(sample)
	}

	c.weights = make([]float64, features)
	c.bias = 0

	rng := rand.New(rand.NewSource(c.seed))
	order := rng.Perm(len(x))

	for epoch := 0; epoch < c.epochs; epoch++ {
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
		for _, i := range order {
			predicted := sigmoid(floats.Dot(c.weights, x[i]) + c.bias)
			gradient := predicted - float64(labels[i])
			floats.AddScaled(c.weights, -c.rate*gradient, x[i])
			c.bias -= c.rate * gradient
		}
	}

	c.logger.Info("Logistic regression trained on ", len(x), " samples with ", features, " features")
	return nil
}

// PredictProba returns the positive-class probability for each sample.
func (c *logisticRegression) PredictProba(samples [][]float32) ([]float64, error) {
	if c.weights == nil {
		return nil, fmt.Errorf("classifier is not fitted: call Fit first")
	}

	probabilities := make([]float64, len(samples))
	for i, sample := range samples {
		if len(sample) != len(c.weights) {
			return nil, fmt.Errorf("sample %d has %d features, expected %d", i, len(sample), len(c.weights))
		}
		probabilities[i] = sigmoid(floats.Dot(c.weights, toFloat64(sample)) + c.bias)
	}
	return probabilities, nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func toFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
