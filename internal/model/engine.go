package model

import (
	"github.com/Beratdogann/Patato-Disease-Detector-App/internal/vision"
)

// Predictor runs a prepared input batch through a loaded classifier and
// returns one raw score per class. Implementations must be safe for
// concurrent calls or serialize internally.
type Predictor interface {
	InputShape() []int64
	Run(input []float32) ([]float32, error)
}

// Engine wraps a loaded classifier behind shape validation. The
// predictor handle is set once at construction and never replaced.
type Engine struct {
	predictor Predictor
}

// NewEngine creates an Engine around a loaded predictor.
func NewEngine(p Predictor) *Engine {
	return &Engine{predictor: p}
}

// InputSize returns the model's expected input height and width.
func (e *Engine) InputSize() (int, int) {
	shape := e.predictor.InputShape()
	return int(shape[1]), int(shape[2])
}

// Classify runs the batch through the model and returns the raw
// per-class scores. The batch shape is validated against the model's
// expected input shape before invocation; the returned slice is owned
// by the caller.
func (e *Engine) Classify(batch *vision.Batch) ([]float32, error) {
	want := e.predictor.InputShape()
	if !shapeEqual(batch.Shape[:], want) {
		return nil, &ShapeMismatchError{Got: append([]int64(nil), batch.Shape[:]...), Want: want}
	}

	expected := 1
	for _, dim := range want {
		expected *= int(dim)
	}
	if len(batch.Data) != expected {
		return nil, &ShapeMismatchError{Got: append([]int64(nil), batch.Shape[:]...), Want: want}
	}

	out, err := e.predictor.Run(batch.Data)
	if err != nil {
		return nil, &InferenceError{Err: err}
	}

	scores := make([]float32, len(out))
	copy(scores, out)
	return scores, nil
}

func shapeEqual(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
