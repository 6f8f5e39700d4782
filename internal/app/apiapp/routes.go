package apiapp

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	rewindsvc "github.com/akravets/sparkle/backend/internal/services/rewind"
	swipesvc "github.com/akravets/sparkle/backend/internal/services/swipes"
	httperrors "github.com/akravets/sparkle/backend/internal/transport/http/errors"
	"github.com/akravets/sparkle/backend/internal/transport/http/handlers"
)

type Dependencies struct {
	SwipeService  *swipesvc.Service
	RewindService *rewindsvc.Service
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler()
	swipeHandler := handlers.NewSwipeHandler(deps.SwipeService)
	rewindHandler := handlers.NewRewindHandler(deps.RewindService)

	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.Write(w, http.StatusMethodNotAllowed, httperrors.Envelope{
			Success: false,
			Message: "Method not allowed",
		})
	})

	r.Get("/healthz", healthHandler.Get)
	r.Post("/swipe", swipeHandler.Handle)
	r.Post("/rewind", rewindHandler.Handle)
}
