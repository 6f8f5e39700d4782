package errors

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response body: every endpoint answers with
// success, a human-readable message and an optional payload.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type RateLimitEnvelope struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	RetryAfterSec int64  `json:"retry_after_sec"`
}

func Write(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
