//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/georgSquared/livesketch/internal/domain/embeddings"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRunHandler_Run_Success(t *testing.T) {
	mockRunService := new(MockEmbeddingRunService)
	handler := NewRunHandler(mockRunService)

	run := &embeddings.RunMeta{
		ID:              "9f8a1b52-2f3e-4f38-9a7c-6d2f1a0b3c44",
		DatasetID:       "3f1c29aa-74ad-4a63-8d8a-8a1f4f2b9c11",
		Model:           embeddings.ModelLiveSketch,
		Dimensions:      128,
		Seed:            42,
		IndexPath:       "/var/lib/livesketch/indexes/9f8a1b52.json",
		BuildDurationMs: 812,
		DateTimeCreated: time.Now(),
	}

	requestBody := `{"dataset_id": "3f1c29aa-74ad-4a63-8d8a-8a1f4f2b9c11", "model": "livesketch", "dimensions": 128, "seed": 42}`

	mockRunService.
		On("Run", mock.Anything, "3f1c29aa-74ad-4a63-8d8a-8a1f4f2b9c11", "livesketch", 128, int64(42)).
		Return(run, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/runs", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Run(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "9f8a1b52-2f3e-4f38-9a7c-6d2f1a0b3c44")
	mockRunService.AssertExpectations(t)
}

func TestRunHandler_Run_UnknownModel(t *testing.T) {
	mockRunService := new(MockEmbeddingRunService)
	handler := NewRunHandler(mockRunService)

	requestBody := `{"dataset_id": "3f1c29aa-74ad-4a63-8d8a-8a1f4f2b9c11", "model": "word2vec", "dimensions": 128}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/runs", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Run(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRunService.AssertNotCalled(t, "Run")
}

func TestRunHandler_List_Success(t *testing.T) {
	mockRunService := new(MockEmbeddingRunService)
	handler := NewRunHandler(mockRunService)

	run := &embeddings.RunMeta{
		ID:         "9f8a1b52-2f3e-4f38-9a7c-6d2f1a0b3c44",
		DatasetID:  "3f1c29aa-74ad-4a63-8d8a-8a1f4f2b9c11",
		Model:      embeddings.ModelRandomProjection,
		Dimensions: 64,
	}

	mockRunService.
		On("List", mock.Anything, mock.Anything).
		Return([]*embeddings.RunMeta{run}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/runs?model=random_projection", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "random_projection")
	mockRunService.AssertExpectations(t)
}

func TestRunHandler_DeleteByID_Success(t *testing.T) {
	mockRunService := new(MockEmbeddingRunService)
	handler := NewRunHandler(mockRunService)

	// the service contract removes the run's index file alongside the metadata
	mockRunService.
		On("DeleteByID", mock.Anything, "9f8a1b52-2f3e-4f38-9a7c-6d2f1a0b3c44").
		Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/runs/9f8a1b52-2f3e-4f38-9a7c-6d2f1a0b3c44", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "9f8a1b52-2f3e-4f38-9a7c-6d2f1a0b3c44"}}

	handler.DeleteByID(c)
	// ctx.Status alone does not flush outside the engine
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockRunService.AssertExpectations(t)
}

func TestRunHandler_DeleteByID_NotFound(t *testing.T) {
	mockRunService := new(MockEmbeddingRunService)
	handler := NewRunHandler(mockRunService)

	mockRunService.
		On("DeleteByID", mock.Anything, "missing-id").
		Return(errors.New("record not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/runs/missing-id", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing-id"}}

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRunService.AssertExpectations(t)
}
