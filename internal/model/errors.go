package model

import "fmt"

// ShapeMismatchError reports a batch whose shape does not match the
// model's expected input shape.
type ShapeMismatchError struct {
	Got  []int64
	Want []int64
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("batch shape %v does not match model input shape %v", e.Got, e.Want)
}

// InferenceError reports a failure inside the model invocation itself.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference failed: %v", e.Err)
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}

// LabelMappingError reports a score vector whose length disagrees with
// the configured class label table.
type LabelMappingError struct {
	Scores int
	Labels int
}

func (e *LabelMappingError) Error() string {
	return fmt.Sprintf("got %d scores for %d class labels", e.Scores, e.Labels)
}
