package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/georgSquared/livesketch/internal/domain/datasets"

	"github.com/gin-gonic/gin"
)

// DatasetHandler defines the interface for handling dataset-related operations
type DatasetHandler interface {
	Fetch(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type datasetHandler struct {
	datasetService datasets.DatasetService
}

// NewDatasetHandler creates a new DatasetHandler
func NewDatasetHandler(datasetService datasets.DatasetService) DatasetHandler {
	return &datasetHandler{
		datasetService: datasetService,
	}
}

// Fetch downloads a dataset archive, builds its graph and stores the metadata
func (handler *datasetHandler) Fetch(ctx *gin.Context) {
	var request FetchDatasetRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	meta, err := handler.datasetService.Fetch(ctx, request.Name, request.SourceURL, request.MinScore)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error fetching dataset: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, toDatasetResponse(meta))
}

// List fetches dataset metadata optionally with query parameters
func (handler *datasetHandler) List(ctx *gin.Context) {
	query := &datasets.DatasetQuery{}

	if name := ctx.Query("name"); len(name) > 0 {
		query.Name = name
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

	metas, err := handler.datasetService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error listing datasets: %v", err)})
		return
	}

	responses := make([]DatasetResponse, 0, len(metas))
	for _, meta := range metas {
		responses = append(responses, toDatasetResponse(meta))
	}

	ctx.JSON(http.StatusOK, responses)
}

// GetByID fetches dataset metadata by ID
func (handler *datasetHandler) GetByID(ctx *gin.Context) {
	datasetID := ctx.Param("id")

	meta, err := handler.datasetService.GetByID(ctx, datasetID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("dataset not found: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, toDatasetResponse(meta))
}

// DeleteByID deletes dataset metadata by ID
func (handler *datasetHandler) DeleteByID(ctx *gin.Context) {
	datasetID := ctx.Param("id")

	if err := handler.datasetService.DeleteByID(ctx, datasetID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("error deleting dataset: %v", err)})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func toDatasetResponse(meta *datasets.DatasetMeta) DatasetResponse {
	return DatasetResponse{
		ID:              meta.ID,
		Name:            meta.Name,
		SourceURL:       meta.SourceURL,
		MinScore:        meta.MinScore,
		ArchiveSize:     meta.ArchiveSize,
		ArchiveChecksum: meta.ArchiveChecksum,
		UserCount:       meta.LeftCount,
		ItemCount:       meta.RightCount,
		EdgeCount:       meta.EdgeCount,
		DateTimeCreated: meta.DateTimeCreated,
	}
}
