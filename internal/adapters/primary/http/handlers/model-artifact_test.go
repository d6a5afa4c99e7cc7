package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"model-artifact-service/internal/core/domain"
	"model-artifact-service/internal/core/services"
	"model-artifact-service/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupRouter() (*testutil.MockArtifactRepo, *testutil.MockObjectStore, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	repo := new(testutil.MockArtifactRepo)
	store := new(testutil.MockObjectStore)

	svc := services.NewModelArtifactService(repo, store)
	h := New(svc)

	r := gin.New()
	api := r.Group("/api/v1")
	h.RegisterRoutes(api)

	return repo, store, r
}

func multipartBody(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for name, content := range files {
		fw, err := w.CreateFormFile("files", name)
		assert.NoError(t, err)
		_, err = fw.Write(content)
		assert.NoError(t, err)
	}
	assert.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestUploadModels(t *testing.T) {
	repo, store, r := setupRouter()

	store.On("Put", mock.Anything, "alpha.pth", []byte("weights")).Return(nil)
	repo.On("InsertBatch", mock.Anything, mock.AnythingOfType("[]*domain.ModelArtifact")).Return(
		[]*domain.ModelArtifact{
			{ID: 1, ModelName: "alpha", S3Key: "alpha.pth", FileSize: 7, CreatedAt: time.Now()},
		}, nil)

	body, contentType := multipartBody(t, map[string][]byte{"alpha.pth": []byte("weights")})
	req, _ := http.NewRequest("POST", "/api/v1/pytorch-models/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(1), resp["success_count"])
	assert.Equal(t, float64(0), resp["failed_count"])
	uploaded := resp["uploaded_files"].([]interface{})
	assert.Len(t, uploaded, 1)
	first := uploaded[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "alpha", first["model_name"])
}

func TestUploadModels_NoFiles(t *testing.T) {
	repo, store, r := setupRouter()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	assert.NoError(t, w.WriteField("note", "empty"))
	assert.NoError(t, w.Close())

	req, _ := http.NewRequest("POST", "/api/v1/pytorch-models/upload", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "InsertBatch", mock.Anything, mock.Anything)
}

func TestUploadModels_UnsupportedExtension(t *testing.T) {
	repo, store, r := setupRouter()

	body, contentType := multipartBody(t, map[string][]byte{"alpha.onnx": []byte("weights")})
	req, _ := http.NewRequest("POST", "/api/v1/pytorch-models/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "InsertBatch", mock.Anything, mock.Anything)
}

func TestUploadModels_MetadataFailure(t *testing.T) {
	repo, store, r := setupRouter()

	store.On("Put", mock.Anything, "alpha.pth", mock.Anything).Return(nil)
	repo.On("InsertBatch", mock.Anything, mock.Anything).Return(nil, errors.New("tx aborted"))

	body, contentType := multipartBody(t, map[string][]byte{"alpha.pth": []byte("weights")})
	req, _ := http.NewRequest("POST", "/api/v1/pytorch-models/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDownloadModel(t *testing.T) {
	repo, store, r := setupRouter()

	content := []byte("model weights")
	repo.On("GetByID", mock.Anything, int64(7)).Return(&domain.ModelArtifact{
		ID: 7, ModelName: "alpha", S3Key: "alpha.pth", FileSize: int64(len(content)),
	}, nil)
	store.On("Get", mock.Anything, "alpha.pth").Return(content, nil)

	req, _ := http.NewRequest("GET", "/api/v1/pytorch-models/7/download", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=alpha.pth", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, content, w.Body.Bytes())
}

func TestDownloadModel_NotFound(t *testing.T) {
	repo, store, r := setupRouter()

	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrArtifactNotFound)

	req, _ := http.NewRequest("GET", "/api/v1/pytorch-models/99/download", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	store.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestDownloadModel_InvalidID(t *testing.T) {
	repo, _, r := setupRouter()

	req, _ := http.NewRequest("GET", "/api/v1/pytorch-models/abc/download", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestListModels(t *testing.T) {
	repo, _, r := setupRouter()

	rows := []*domain.ModelArtifact{
		{ID: 2, ModelName: "beta", S3Key: "beta.pth", FileSize: 2, CreatedAt: time.Now()},
		{ID: 1, ModelName: "alpha", S3Key: "alpha.pth", FileSize: 4, CreatedAt: time.Now()},
	}
	repo.On("ListPaged", mock.Anything, 0, 10).Return(rows, nil)
	repo.On("CountAll", mock.Anything).Return(2, nil)

	req, _ := http.NewRequest("GET", "/api/v1/pytorch-models", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(1), resp["current_page"])
	assert.Equal(t, float64(10), resp["page_size"])
	assert.Equal(t, float64(2), resp["total_count"])
	assert.Equal(t, float64(1), resp["total_pages"])
	assert.Len(t, resp["models"].([]interface{}), 2)
}

func TestListModels_BadPaging(t *testing.T) {
	repo, _, r := setupRouter()

	req, _ := http.NewRequest("GET", "/api/v1/pytorch-models?page=0", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req, _ = http.NewRequest("GET", "/api/v1/pytorch-models?page=1&page_size=101", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	repo.AssertNotCalled(t, "ListPaged", mock.Anything, mock.Anything, mock.Anything)
}
