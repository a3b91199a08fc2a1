package model

import "fmt"

// Assemble converts raw per-class scores into a classification result.
// The maximum score picks the class; exact ties resolve to the lowest
// index. Confidence is the raw maximum score, taken as-is from the
// model's output distribution without re-normalization.
func Assemble(scores []float32, labels []string, filename string, width, height int) (*Result, error) {
	if len(scores) != len(labels) || len(scores) == 0 {
		return nil, &LabelMappingError{Scores: len(scores), Labels: len(labels)}
	}

	maxIdx := 0
	maxVal := scores[0]
	for i, val := range scores {
		if val > maxVal {
			maxVal = val
			maxIdx = i
		}
	}

	return &Result{
		Filename:   filename,
		Prediction: labels[maxIdx],
		Confidence: maxVal,
		ClassIndex: maxIdx,
		Shape:      fmt.Sprintf("(%d, %d, 3)", height, width),
	}, nil
}
