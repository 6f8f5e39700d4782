package handlers

import (
	"errors"
	"net/http"

	rewindsvc "github.com/akravets/sparkle/backend/internal/services/rewind"
	"github.com/akravets/sparkle/backend/internal/transport/http/dto"
	httperrors "github.com/akravets/sparkle/backend/internal/transport/http/errors"
)

const (
	msgSwipeUndone   = "Swipe undone"
	msgNothingToUndo = "No swipes to undo"
	msgRewindLimit   = "Free users get 1 rewind per day. Upgrade for unlimited!"
	msgUndoFailed    = "Undo failed"
)

type RewindHandler struct {
	service *rewindsvc.Service
}

func NewRewindHandler(service *rewindsvc.Service) *RewindHandler {
	return &RewindHandler{service: service}
}

func (h *RewindHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeFailed(w, msgUndoFailed)
		return
	}

	var req dto.RewindRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRejected(w, "Invalid request body")
		return
	}
	userID, ok := parseUserID(req.UserID)
	if !ok {
		writeRejected(w, "user_id is required")
		return
	}

	result, err := h.service.Undo(r.Context(), userID, req.IsPremium)
	if err != nil {
		switch {
		case errors.Is(err, rewindsvc.ErrValidation):
			writeRejected(w, "Invalid rewind request")
		case errors.Is(err, rewindsvc.ErrNoActionsToRewind):
			writeRejected(w, msgNothingToUndo)
		case errors.Is(err, rewindsvc.ErrRewindLimitReached):
			writeRejected(w, msgRewindLimit)
		default:
			writeFailed(w, msgUndoFailed)
		}
		return
	}

	httperrors.Write(w, http.StatusOK, dto.RewindResponse{
		Success: true,
		Message: msgSwipeUndone,
		Profile: &dto.ProfileCardResponse{
			ID:          result.Profile.UserID,
			DisplayName: result.Profile.DisplayName,
			Age:         result.Profile.Age,
			CityID:      result.Profile.CityID,
			City:        result.Profile.City,
			Bio:         result.Profile.Bio,
		},
	})
}
