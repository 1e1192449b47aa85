package v1

import (
	"github.com/georgSquared/livesketch/internal/domain/datasets"
	"github.com/georgSquared/livesketch/internal/domain/embeddings"
	"github.com/georgSquared/livesketch/internal/domain/evaluation"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	datasetService datasets.DatasetService,
	runService embeddings.EmbeddingRunService,
	evaluationService evaluation.EvaluationService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Dataset Routes
	datasetHandler := NewDatasetHandler(datasetService)
	v1.POST("/datasets", datasetHandler.Fetch)
	v1.GET("/datasets", datasetHandler.List)
	v1.GET("/datasets/:id", datasetHandler.GetByID)
	v1.DELETE("/datasets/:id", datasetHandler.DeleteByID)

	// Embedding Run Routes
	runHandler := NewRunHandler(runService)
	v1.POST("/runs", runHandler.Run)
	v1.GET("/runs", runHandler.List)
	v1.GET("/runs/:id", runHandler.GetByID)
	v1.DELETE("/runs/:id", runHandler.DeleteByID)

	// Evaluation Routes
	evaluationHandler := NewEvaluationHandler(evaluationService)
	v1.POST("/evaluations", evaluationHandler.Evaluate)
	v1.GET("/evaluations", evaluationHandler.List)
}
