package httputil

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
)

const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every non-2xx answer
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, api sonic.API, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body == nil {
		return
	}
	if err := api.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encoding response error", slog.Int("status", statusCode), slog.String("error", err.Error()))
	}
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}
	if details != nil {
		resp.Details = details.Error()
	}
	writeJSON(w, sonic.ConfigFastest, statusCode, resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	writeJSON(w, sonic.ConfigDefault, statusCode, body)
}

// DecodeJSON reads at most 1 MiB of request body into dst.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	defer r.Body.Close()
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return sonic.ConfigDefault.NewDecoder(body).Decode(dst)
}

// QueryInt returns query param key as int, or def when it is absent,
// malformed or outside [min, max].
func QueryInt(r *http.Request, key string, def, min, max int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v < min || v > max {
		return def
	}
	return v
}
