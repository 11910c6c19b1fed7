package model

import (
	"fmt"
	"os"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/solarwatch/panel-api/internal/advice"
)

// Scorer is the prediction operation the handlers consume. The production
// implementation is Engine; tests substitute stubs.
type Scorer interface {
	Predict(input []float32) ([]float32, error)
}

// Engine wraps a loaded ONNX classification session. It is created once at
// startup and shared read-only across requests; Predict allocates its tensors
// per call, so concurrent use is safe.
type Engine struct {
	session   *ort.DynamicAdvancedSession
	labels    []advice.ClassLabel
	imageSize int
}

// SetRuntimeLibrary points the ONNX runtime at a shared library outside the
// default search path. Must be called before Load. Empty path is a no-op.
func SetRuntimeLibrary(path string) {
	if path != "" {
		ort.SetSharedLibraryPath(path)
	}
}

// Load initializes the ONNX environment and opens the model at path. A failure
// here means the service must not start.
func Load(path string, labels []advice.ClassLabel, imageSize int) (*Engine, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("model artifact %s: %w", path, err)
	}

	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to initialize ONNX environment: %w", err)
	}

	session, err := ort.NewDynamicAdvancedSession(path,
		[]string{"input"}, []string{"output"}, nil)
	if err != nil {
		ort.DestroyEnvironment()
		return nil, fmt.Errorf("failed to create ONNX session: %w", err)
	}

	return &Engine{
		session:   session,
		labels:    labels,
		imageSize: imageSize,
	}, nil
}

// Predict runs the model on a flat NHWC tensor of shape [1, size, size, 3]
// and returns one raw score per label.
func (e *Engine) Predict(input []float32) ([]float32, error) {
	want := e.imageSize * e.imageSize * 3
	if len(input) != want {
		return nil, fmt.Errorf("expected %d input values, got %d", want, len(input))
	}

	size := int64(e.imageSize)
	inT, err := ort.NewTensor(ort.NewShape(1, size, size, 3), input)
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}
	defer inT.Destroy()

	outT, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(len(e.labels))))
	if err != nil {
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}
	defer outT.Destroy()

	if err := e.session.Run([]ort.Value{inT}, []ort.Value{outT}); err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	scores := make([]float32, len(e.labels))
	copy(scores, outT.GetData())
	return scores, nil
}

func (e *Engine) Close() {
	if e.session != nil {
		e.session.Destroy()
	}
	ort.DestroyEnvironment()
}
