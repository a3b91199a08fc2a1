package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Beratdogann/Patato-Disease-Detector-App/internal/logger"
	"github.com/Beratdogann/Patato-Disease-Detector-App/internal/model"
	"github.com/Beratdogann/Patato-Disease-Detector-App/internal/vision"
)

// Handler exposes the classification pipeline over HTTP.
type Handler struct {
	engine         *model.Engine
	labels         []string
	maxUploadBytes int64
	log            *logger.Logger
}

// ErrorResponse is the JSON shape of all error replies.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewHandler creates a Handler around a ready Engine and class table.
func NewHandler(engine *model.Engine, labels []string, maxUploadMB int64, log *logger.Logger) *Handler {
	return &Handler{
		engine:         engine,
		labels:         labels,
		maxUploadBytes: maxUploadMB << 20,
		log:            log,
	}
}

// Ping is the liveness endpoint.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "pong"})
}

// Predict accepts a multipart upload (field "file") and runs the full
// pipeline: decode, preprocess, classify, assemble.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		h.writeError(w, http.StatusBadRequest, "bad_request", "Failed to parse multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "bad_request", "No image file provided. Use 'file' as the form field name")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "bad_request", "Failed to read upload")
		return
	}

	h.log.Info("Received file: %s, size: %d bytes", header.Filename, len(data))

	img, err := vision.Decode(data, header.Filename)
	if err != nil {
		h.writePipelineError(w, err)
		return
	}

	targetH, targetW := h.engine.InputSize()
	batch, err := vision.Preprocess(img, targetH, targetW)
	if err != nil {
		h.writePipelineError(w, err)
		return
	}

	scores, err := h.engine.Classify(batch)
	if err != nil {
		h.writePipelineError(w, err)
		return
	}

	result, err := model.Assemble(scores, h.labels, header.Filename, img.Width, img.Height)
	if err != nil {
		h.writePipelineError(w, err)
		return
	}

	h.log.Info("Predicted %s (%.4f) for %s", result.Prediction, result.Confidence, result.Filename)
	writeJSON(w, http.StatusOK, result)
}

// writePipelineError maps pipeline error kinds onto client-facing
// statuses: bad input is 400, misconfiguration and model failures 500.
func (h *Handler) writePipelineError(w http.ResponseWriter, err error) {
	var (
		decodeErr   *vision.DecodeError
		shapeErr    *vision.ShapeError
		mismatchErr *model.ShapeMismatchError
		infErr      *model.InferenceError
		labelErr    *model.LabelMappingError
	)

	switch {
	case errors.As(err, &decodeErr):
		h.log.Warning("Decode failed: %v", err)
		h.writeError(w, http.StatusBadRequest, "decode_error", "Invalid image. Supported formats: JPEG, PNG, GIF, WebP")
	case errors.As(err, &shapeErr):
		h.log.Warning("Degenerate image: %v", err)
		h.writeError(w, http.StatusBadRequest, "shape_error", err.Error())
	case errors.As(err, &mismatchErr):
		h.log.Error("Shape mismatch: %v", err)
		h.writeError(w, http.StatusInternalServerError, "shape_mismatch", err.Error())
	case errors.As(err, &infErr):
		h.log.Error("Inference failed: %v", err)
		h.writeError(w, http.StatusInternalServerError, "inference_error", "Prediction failed")
	case errors.As(err, &labelErr):
		h.log.Error("Label mapping broken: %v", err)
		h.writeError(w, http.StatusInternalServerError, "label_mapping_error", err.Error())
	default:
		h.log.Error("Unexpected pipeline error: %v", err)
		h.writeError(w, http.StatusInternalServerError, "internal_error", "Prediction failed")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, ErrorResponse{Error: kind, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
