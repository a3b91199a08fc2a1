package model

import (
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// OnnxModel is a Predictor backed by an ONNX Runtime session. The
// session reuses preallocated input/output tensors, so Run serializes
// invocations behind a mutex; concurrent callers block, they do not race.
type OnnxModel struct {
	session      *ort.AdvancedSession
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
	inputShape   []int64
	mu           sync.Mutex
}

// LoadOnnxModel opens the model at modelPath expecting NHWC input
// (1, imageSize, imageSize, 3) and an output of one score per class.
// The exported graph must name its I/O nodes "input" and "output".
func LoadOnnxModel(modelPath string, imageSize, numClasses int) (*OnnxModel, error) {
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to initialize ONNX environment: %w", err)
	}

	inputShape := []int64{1, int64(imageSize), int64(imageSize), 3}
	outputShape := []int64{1, int64(numClasses)}

	inputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(inputShape...))
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}

	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(outputShape...))
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{"input"}, []string{"output"},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("failed to create ONNX session: %w", err)
	}

	return &OnnxModel{
		session:      session,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
		inputShape:   inputShape,
	}, nil
}

// InputShape returns the model's expected NHWC input shape.
func (m *OnnxModel) InputShape() []int64 {
	return append([]int64(nil), m.inputShape...)
}

// Run copies the batch into the session's input tensor, executes the
// graph, and returns a copy of the output scores.
func (m *OnnxModel) Run(input []float32) ([]float32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copy(m.inputTensor.GetData(), input)

	if err := m.session.Run(); err != nil {
		return nil, err
	}

	out := m.outputTensor.GetData()
	scores := make([]float32, len(out))
	copy(scores, out)
	return scores, nil
}

// Close releases the session, its tensors, and the ONNX environment.
func (m *OnnxModel) Close() {
	if m.inputTensor != nil {
		m.inputTensor.Destroy()
	}
	if m.outputTensor != nil {
		m.outputTensor.Destroy()
	}
	if m.session != nil {
		m.session.Destroy()
	}
	ort.DestroyEnvironment()
}
