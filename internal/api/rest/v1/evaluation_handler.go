package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/georgSquared/livesketch/internal/domain/embeddings"
	"github.com/georgSquared/livesketch/internal/domain/evaluation"

	"github.com/gin-gonic/gin"
)

// Defaults applied when a precision_at_k request omits the optional fields,
// matching the CLI flag defaults.
const (
	defaultPrecisionK          = 100
	defaultPrecisionSimilarity = string(embeddings.SimilarityHamming)
)

// EvaluationHandler defines the interface for handling evaluation operations
type EvaluationHandler interface {
	Evaluate(ctx *gin.Context)
	List(ctx *gin.Context)
}

type evaluationHandler struct {
	evaluationService evaluation.EvaluationService
}

// NewEvaluationHandler creates a new EvaluationHandler
func NewEvaluationHandler(evaluationService evaluation.EvaluationService) EvaluationHandler {
	return &evaluationHandler{
		evaluationService: evaluationService,
	}
}

// Evaluate runs the requested metric for a model on a stored dataset
func (handler *evaluationHandler) Evaluate(ctx *gin.Context) {
	var request EvaluationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	var result *evaluation.Result
	var err error

	switch request.Metric {
	case evaluation.MetricROCAUC:
		var operator embeddings.EdgeOperator
		operator, err = embeddings.ParseEdgeOperator(request.Operator)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
			return
		}
		result, err = handler.evaluationService.EvaluateAUC(ctx, evaluation.AUCParams{
			DatasetID:    request.DatasetID,
			Model:        request.Model,
			Dimensions:   request.Dimensions,
			Operator:     operator,
			TestFraction: request.TestFraction,
			Seed:         request.Seed,
		})
	case evaluation.MetricPrecisionAtK:
		similarityName := request.Similarity
		if similarityName == "" {
			similarityName = defaultPrecisionSimilarity
		}
		k := request.K
		if k == 0 {
			k = defaultPrecisionK
		}

		var measure embeddings.SimilarityMeasure
		measure, err = embeddings.ParseSimilarityMeasure(similarityName)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
			return
		}
		result, err = handler.evaluationService.EvaluatePrecisionAtK(ctx, evaluation.PrecisionParams{
			DatasetID:  request.DatasetID,
			Model:      request.Model,
			Dimensions: request.Dimensions,
			Similarity: measure,
			K:          k,
			Seed:       request.Seed,
		})
	default:
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("unsupported metric: %s", request.Metric)})
		return
	}

	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error running evaluation: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, toEvaluationResponse(result))
}

// List fetches evaluation results optionally with query parameters
func (handler *evaluationHandler) List(ctx *gin.Context) {
	query := &evaluation.ResultQuery{}

	if datasetID := ctx.Query("dataset_id"); len(datasetID) > 0 {
		query.DatasetID = datasetID
	}
	if model := ctx.Query("model"); len(model) > 0 {
		query.Model = model
	}
	if metric := ctx.Query("metric"); len(metric) > 0 {
		query.Metric = metric
	}
	if sortBy := ctx.Query("sort_by"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}
	if sortOrder := ctx.Query("sort_order"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit, _ = strconv.Atoi(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset, _ = strconv.Atoi(offset)
	}

	results, err := handler.evaluationService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error listing evaluation results: %v", err)})
		return
	}

	responses := make([]EvaluationResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, toEvaluationResponse(result))
	}

	ctx.JSON(http.StatusOK, responses)
}

func toEvaluationResponse(result *evaluation.Result) EvaluationResponse {
	return EvaluationResponse{
		ID:              result.ID,
		DatasetID:       result.DatasetID,
		Model:           result.Model,
		Dimensions:      result.Dimensions,
		Metric:          result.Metric,
		Value:           result.Value,
		Operator:        result.Operator,
		Similarity:      result.Similarity,
		K:               result.K,
		ElapsedMs:       result.ElapsedMs,
		DateTimeCreated: result.DateTimeCreated,
	}
}
