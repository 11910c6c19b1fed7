package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

type codedError struct {
	err  error
	code int
}

func (e *codedError) Error() string {
	return e.err.Error()
}

func (e *codedError) Unwrap() error {
	return e.err
}

func CodedError(code int, err error) error {
	return &codedError{err: err, code: code}
}

func CodedErrorf(code int, format string, args ...any) error {
	return &codedError{err: fmt.Errorf(format, args...), code: code}
}

type errorDetail struct {
	Detail string `json:"detail"`
}

// restHandler funnels endpoint errors into JSON {"detail": ...} bodies. Coded
// errors keep their status and message; anything else is hidden behind a
// generic 500 so internals never reach the client.
func restHandler(handler func(r *http.Request) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := handler(r)
		if err != nil {
			var cerr *codedError
			if errors.As(err, &cerr) {
				if cerr.code >= http.StatusInternalServerError {
					slog.Error("internal error in endpoint", "path", r.URL.Path, "error", err)
				}
				writeJSON(w, cerr.code, errorDetail{Detail: err.Error()})
			} else {
				slog.Error("received non coded error from endpoint", "path", r.URL.Path, "error", err)
				writeJSON(w, http.StatusInternalServerError, errorDetail{Detail: "Internal server error"})
			}
			return
		}

		if res == nil {
			res = struct{}{}
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func parseRequest[T any](r *http.Request) (T, error) {
	var data T
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		slog.Error("error parsing request body", "error", err)
		return data, CodedErrorf(http.StatusBadRequest, "unable to parse request body")
	}
	return data, nil
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("error serializing response body", "error", err)
	}
}
