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

	"github.com/georgSquared/livesketch/internal/domain/datasets"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDatasetHandler_Fetch_Success(t *testing.T) {
	mockDatasetService := new(MockDatasetService)
	handler := NewDatasetHandler(mockDatasetService)

	meta := &datasets.DatasetMeta{
		ID:              "3f1c29aa-74ad-4a63-8d8a-8a1f4f2b9c11",
		Name:            "ml-latest-small",
		SourceURL:       "https://files.grouplens.org/datasets/movielens/ml-latest-small.zip",
		MinScore:        3.0,
		LeftCount:       610,
		RightCount:      9724,
		EdgeCount:       48580,
		DateTimeCreated: time.Now(),
	}

	requestBody := `{"name": "ml-latest-small", "source_url": "https://files.grouplens.org/datasets/movielens/ml-latest-small.zip", "min_score": 3.0}`

	mockDatasetService.
		On("Fetch", mock.Anything, "ml-latest-small", mock.AnythingOfType("string"), 3.0).
		Return(meta, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/datasets", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Fetch(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "3f1c29aa-74ad-4a63-8d8a-8a1f4f2b9c11")
	assert.Contains(t, w.Body.String(), "\"user_count\":610")
	mockDatasetService.AssertExpectations(t)
}

func TestDatasetHandler_Fetch_InvalidBody(t *testing.T) {
	mockDatasetService := new(MockDatasetService)
	handler := NewDatasetHandler(mockDatasetService)

	requestBody := `{"name": "", "source_url": "not-a-url"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/datasets", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Fetch(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockDatasetService.AssertNotCalled(t, "Fetch")
}

func TestDatasetHandler_List_Success(t *testing.T) {
	mockDatasetService := new(MockDatasetService)
	handler := NewDatasetHandler(mockDatasetService)

	meta := &datasets.DatasetMeta{
		ID:        "3f1c29aa-74ad-4a63-8d8a-8a1f4f2b9c11",
		Name:      "ml-latest-small",
		SourceURL: "https://files.grouplens.org/datasets/movielens/ml-latest-small.zip",
		MinScore:  3.0,
	}

	mockDatasetService.
		On("List", mock.Anything, mock.Anything).
		Return([]*datasets.DatasetMeta{meta}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/datasets?limit=10", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ml-latest-small")
	mockDatasetService.AssertExpectations(t)
}

func TestDatasetHandler_GetByID_NotFound(t *testing.T) {
	mockDatasetService := new(MockDatasetService)
	handler := NewDatasetHandler(mockDatasetService)

	mockDatasetService.
		On("GetByID", mock.Anything, "missing-id").
		Return(nil, errors.New("record not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/datasets/missing-id", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing-id"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockDatasetService.AssertExpectations(t)
}

func TestDatasetHandler_DeleteByID_Success(t *testing.T) {
	mockDatasetService := new(MockDatasetService)
	handler := NewDatasetHandler(mockDatasetService)

	mockDatasetService.
		On("DeleteByID", mock.Anything, "3f1c29aa-74ad-4a63-8d8a-8a1f4f2b9c11").
		Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/datasets/3f1c29aa-74ad-4a63-8d8a-8a1f4f2b9c11", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "3f1c29aa-74ad-4a63-8d8a-8a1f4f2b9c11"}}

	handler.DeleteByID(c)
	// ctx.Status alone does not flush outside the engine
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockDatasetService.AssertExpectations(t)
}
