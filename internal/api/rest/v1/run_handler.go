package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/georgSquared/livesketch/internal/domain/embeddings"

	"github.com/gin-gonic/gin"
)

// RunHandler defines the interface for handling embedding-run operations
type RunHandler interface {
	Run(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type runHandler struct {
	runService embeddings.EmbeddingRunService
}

// NewRunHandler creates a new RunHandler
func NewRunHandler(runService embeddings.EmbeddingRunService) RunHandler {
	return &runHandler{
		runService: runService,
	}
}

// Run fits an embedding model on a stored dataset and persists the run
func (handler *runHandler) Run(ctx *gin.Context) {
	var request RunRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	run, err := handler.runService.Run(ctx, request.DatasetID, request.Model, request.Dimensions, request.Seed)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error running embedding: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, toRunResponse(run))
}

// List fetches run metadata optionally with query parameters
func (handler *runHandler) List(ctx *gin.Context) {
	query := &embeddings.RunQuery{}

	if datasetID := ctx.Query("dataset_id"); len(datasetID) > 0 {
		query.DatasetID = datasetID
	}
	if model := ctx.Query("model"); len(model) > 0 {
		query.Model = model
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

	runs, err := handler.runService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error listing runs: %v", err)})
		return
	}

	responses := make([]RunResponse, 0, len(runs))
	for _, run := range runs {
		responses = append(responses, toRunResponse(run))
	}

	ctx.JSON(http.StatusOK, responses)
}

// GetByID fetches run metadata by ID
func (handler *runHandler) GetByID(ctx *gin.Context) {
	runID := ctx.Param("id")

	run, err := handler.runService.GetByID(ctx, runID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("run not found: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, toRunResponse(run))
}

// DeleteByID deletes a run and its index file by ID
func (handler *runHandler) DeleteByID(ctx *gin.Context) {
	runID := ctx.Param("id")

	if err := handler.runService.DeleteByID(ctx, runID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("error deleting run: %v", err)})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func toRunResponse(run *embeddings.RunMeta) RunResponse {
	return RunResponse{
		ID:              run.ID,
		DatasetID:       run.DatasetID,
		Model:           run.Model,
		Dimensions:      run.Dimensions,
		Seed:            run.Seed,
		IndexPath:       run.IndexPath,
		BuildDurationMs: run.BuildDurationMs,
		DateTimeCreated: run.DateTimeCreated,
	}
}
