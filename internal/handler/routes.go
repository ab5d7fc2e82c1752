// internal/handler/routes.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/unclebandit/campaigntrack/internal/controller"
	"github.com/unclebandit/campaigntrack/internal/middleware"
)

// NewRouter wires the campaign and auth endpoints. When staticDir is
// non-empty, unmatched routes fall through to the static file server
// with an index.html fallback so a single-page frontend can be served
// from the same process.
func NewRouter(
	campaignController *controller.CampaignController,
	authController *controller.AuthController,
	staticDir string,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithRequestLogging(logger))

	// Campaign routes
	r.Get("/campaigns", campaignController.ListCampaigns)
	r.Get("/campaigns/summary", campaignController.Summary)
	r.Post("/campaigns", campaignController.CreateCampaign)
	r.Put("/campaigns/{id}", campaignController.UpdateStatus)
	r.Delete("/campaigns/{id}", campaignController.DeleteCampaign)

	// Auth routes
	r.Post("/signup", authController.Signup)
	r.Post("/login", authController.Login)

	if staticDir != "" {
		r.NotFound(StaticHandler(staticDir))
	}

	return r
}
