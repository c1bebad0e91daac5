package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ANUSHKASINGH809/orderbook-simulator/pkg/errors"
)

// response is the envelope every endpoint answers with.
type response struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Code      string    `json:"code"`
}

func writeSuccess(w http.ResponseWriter, httpStatus int, data any) {
	writeJSON(w, httpStatus, response{
		Status:    "success",
		Message:   "success",
		Data:      data,
		Timestamp: time.Now().UTC(),
		Code:      "ok",
	})
}

func writeError(w http.ResponseWriter, httpStatus int, message string, code errors.ErrorCode, data any) {
	writeJSON(w, httpStatus, response{
		Status:    "error",
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
		Code:      string(code),
	})
}

func writeJSON(w http.ResponseWriter, httpStatus int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_ = json.NewEncoder(w).Encode(body)
}
