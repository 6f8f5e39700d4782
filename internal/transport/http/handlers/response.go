package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	httperrors "github.com/akravets/sparkle/backend/internal/transport/http/errors"
)

func decodeJSON(r *http.Request, target any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func parseUserID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func writeRejected(w http.ResponseWriter, message string) {
	httperrors.Write(w, http.StatusBadRequest, httperrors.Envelope{
		Success: false,
		Message: message,
	})
}

func writeFailed(w http.ResponseWriter, message string) {
	httperrors.Write(w, http.StatusInternalServerError, httperrors.Envelope{
		Success: false,
		Message: message,
	})
}
