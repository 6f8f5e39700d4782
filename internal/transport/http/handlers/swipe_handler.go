package handlers

import (
	"errors"
	"net/http"

	swipesvc "github.com/akravets/sparkle/backend/internal/services/swipes"
	"github.com/akravets/sparkle/backend/internal/transport/http/dto"
	httperrors "github.com/akravets/sparkle/backend/internal/transport/http/errors"
)

type SwipeHandler struct {
	service *swipesvc.Service
}

func NewSwipeHandler(service *swipesvc.Service) *SwipeHandler {
	return &SwipeHandler{service: service}
}

func (h *SwipeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeFailed(w, "Swipe failed")
		return
	}

	var req dto.SwipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRejected(w, "Invalid request body")
		return
	}
	userID, ok := parseUserID(req.UserID)
	if !ok {
		writeRejected(w, "user_id is required")
		return
	}
	if req.TargetID <= 0 {
		writeRejected(w, "target_id is required")
		return
	}

	result, err := h.service.Swipe(r.Context(), userID, req.TargetID, req.Kind)
	if err != nil {
		var tooFast swipesvc.TooFastError
		switch {
		case errors.Is(err, swipesvc.ErrValidation):
			writeRejected(w, "Invalid swipe request")
		case errors.Is(err, swipesvc.ErrUnsupportedKind):
			writeRejected(w, "Unsupported swipe kind")
		case errors.As(err, &tooFast):
			httperrors.Write(w, http.StatusTooManyRequests, httperrors.RateLimitEnvelope{
				Success:       false,
				Message:       "Too many swipes, slow down",
				RetryAfterSec: tooFast.RetryAfterSec,
			})
		default:
			writeFailed(w, "Swipe failed")
		}
		return
	}

	httperrors.Write(w, http.StatusOK, dto.SwipeResponse{
		Success:      true,
		Message:      "Swipe recorded",
		MatchCreated: result.MatchCreated,
	})
}
