package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Beratdogann/Patato-Disease-Detector-App/internal/logger"
	"github.com/Beratdogann/Patato-Disease-Detector-App/internal/model"
)

var testClasses = []string{"Early_blight", "Late_blight", "Healthy"}

// stubPredictor is a fixed-output model for exercising the HTTP surface.
type stubPredictor struct {
	shape  []int64
	scores []float32
	err    error
}

func (s *stubPredictor) InputShape() []int64 {
	return append([]int64(nil), s.shape...)
}

func (s *stubPredictor) Run(input []float32) ([]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.scores, nil
}

func newTestRouter(stub *stubPredictor) http.Handler {
	log := logger.New("")
	engine := model.NewEngine(stub)
	return NewRouter(NewHandler(engine, testClasses, 10, log), log)
}

func leafJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{40, 180, 70, 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("Failed to encode fixture: %v", err)
	}
	return buf.Bytes()
}

func uploadRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/predict", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestPing(t *testing.T) {
	router := newTestRouter(&stubPredictor{shape: []int64{1, 256, 256, 3}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["message"] == "" {
		t.Error("Expected a liveness message")
	}
}

func TestPredictHealthyLeaf(t *testing.T) {
	router := newTestRouter(&stubPredictor{
		shape:  []int64{1, 256, 256, 3},
		scores: []float32{0.02, 0.03, 0.95},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "file", "healthy_leaf.jpg", leafJPEG(t, 256, 256)))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result model.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if result.Prediction != "Healthy" {
		t.Errorf("Expected prediction Healthy, got %s", result.Prediction)
	}
	if result.ClassIndex != 2 {
		t.Errorf("Expected class index 2, got %d", result.ClassIndex)
	}
	if result.Confidence != 0.95 {
		t.Errorf("Expected confidence 0.95, got %v", result.Confidence)
	}
	if result.Filename != "healthy_leaf.jpg" {
		t.Errorf("Expected filename echoed back, got %s", result.Filename)
	}
	if result.Shape != "(256, 256, 3)" {
		t.Errorf("Expected original shape (256, 256, 3), got %s", result.Shape)
	}
}

func TestPredictEmptyUpload(t *testing.T) {
	router := newTestRouter(&stubPredictor{shape: []int64{1, 256, 256, 3}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "file", "empty.jpg", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error != "decode_error" {
		t.Errorf("Expected decode_error kind, got %s", resp.Error)
	}
}

func TestPredictMissingFileField(t *testing.T) {
	router := newTestRouter(&stubPredictor{shape: []int64{1, 256, 256, 3}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "image", "leaf.jpg", leafJPEG(t, 32, 32)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for wrong field name, got %d", rec.Code)
	}
}

func TestPredictLabelMismatch(t *testing.T) {
	// Model emits four scores against the three-class table.
	router := newTestRouter(&stubPredictor{
		shape:  []int64{1, 256, 256, 3},
		scores: []float32{0.1, 0.2, 0.3, 0.4},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "file", "leaf.jpg", leafJPEG(t, 64, 64)))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error != "label_mapping_error" {
		t.Errorf("Expected label_mapping_error kind, got %s", resp.Error)
	}
}

func TestPredictInferenceFailure(t *testing.T) {
	router := newTestRouter(&stubPredictor{
		shape: []int64{1, 256, 256, 3},
		err:   errors.New("resource exhausted"),
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "file", "leaf.jpg", leafJPEG(t, 64, 64)))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error != "inference_error" {
		t.Errorf("Expected inference_error kind, got %s", resp.Error)
	}
}

func TestPredictCORSHeaders(t *testing.T) {
	router := newTestRouter(&stubPredictor{shape: []int64{1, 256, 256, 3}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected CORS allow-origin header")
	}
}
