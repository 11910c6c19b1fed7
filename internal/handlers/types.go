package handlers

// PredictionResponse is the body returned for a successful prediction.
type PredictionResponse struct {
	PredictedClass  string   `json:"predicted_class"`
	Confidence      float64  `json:"confidence"`
	Recommendations []string `json:"recommendations"`
	Tips            []string `json:"tips"`
}

// RawPredictionRequest carries a raw score vector, e.g. from an offline model
// run, to be normalized and labeled through the same pipeline stages.
type RawPredictionRequest struct {
	Scores []float32 `json:"scores"`
}
