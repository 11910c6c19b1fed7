package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/solarwatch/panel-api/internal/advice"
	"github.com/solarwatch/panel-api/internal/model"
	"github.com/solarwatch/panel-api/internal/preprocess"
)

// Service holds the per-process dependencies of the prediction endpoints: the
// loaded model and the preprocessor, both immutable after startup.
type Service struct {
	engine         model.Scorer
	preprocessor   *preprocess.Preprocessor
	maxUploadBytes int64
}

func NewService(engine model.Scorer, pre *preprocess.Preprocessor, maxUploadBytes int64) *Service {
	return &Service{
		engine:         engine,
		preprocessor:   pre,
		maxUploadBytes: maxUploadBytes,
	}
}

func (s *Service) AddRoutes(r chi.Router) {
	r.Get("/health", restHandler(s.Health))
	r.Get("/classes", restHandler(s.Classes))
	// Clients of the original service post to /predict/ with a trailing
	// slash; accept both forms.
	r.Post("/predict", restHandler(s.Predict))
	r.Post("/predict/", restHandler(s.Predict))
	r.Post("/predict/raw", restHandler(s.PredictRaw))
}

func (s *Service) Health(r *http.Request) (any, error) {
	return map[string]string{"status": "healthy"}, nil
}

// Classes returns the class labels in model output order.
func (s *Service) Classes(r *http.Request) (any, error) {
	return advice.Labels(), nil
}

// Predict runs the upload through validate, preprocess, infer, normalize, and
// advice lookup, short-circuiting with a coded error at the failing stage.
func (s *Service) Predict(r *http.Request) (any, error) {
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		return nil, CodedErrorf(http.StatusBadRequest, "Failed to parse form")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, CodedErrorf(http.StatusBadRequest, "No file provided. Use 'file' as the form field name")
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		slog.Warn("unsupported file type", "content_type", contentType, "filename", header.Filename)
		return nil, CodedErrorf(http.StatusBadRequest, "Unsupported file type.")
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, CodedErrorf(http.StatusBadRequest, "Failed to read upload")
	}
	slog.Info("file received", "filename", header.Filename, "size", len(data))

	tensor, err := s.preprocessor.Preprocess(data)
	if err != nil {
		slog.Error("image preprocessing failed", "filename", header.Filename, "error", err)
		return nil, CodedErrorf(http.StatusBadRequest, "Image preprocessing failed")
	}

	scores, err := s.engine.Predict(tensor)
	if err != nil {
		slog.Error("prediction failed", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "Prediction failed")
	}

	return assemble(scores), nil
}

// PredictRaw applies the normalize and lookup stages to a caller-supplied
// score vector, skipping upload handling and inference.
func (s *Service) PredictRaw(r *http.Request) (any, error) {
	req, err := parseRequest[RawPredictionRequest](r)
	if err != nil {
		return nil, err
	}

	n := len(advice.Labels())
	if len(req.Scores) != n && len(req.Scores) != 1 {
		return nil, CodedErrorf(http.StatusBadRequest, "expected %d scores, got %d", n, len(req.Scores))
	}

	return assemble(req.Scores), nil
}

// assemble turns raw scores into the response body: softmax, first-occurrence
// argmax, and advice lookup with its default fallback for any index outside
// the label list.
func assemble(scores []float32) PredictionResponse {
	probs := normalize(scores)
	idx := argmax(probs)

	labels := advice.Labels()
	var label advice.ClassLabel
	if idx < len(labels) {
		label = labels[idx]
	}
	entry := advice.Lookup(label)

	return PredictionResponse{
		PredictedClass:  string(label),
		Confidence:      probs[idx],
		Recommendations: entry.Recommendations,
		Tips:            entry.Tips,
	}
}
