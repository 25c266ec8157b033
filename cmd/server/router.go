package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/moloke/lightverse/internal/api"
	apiMiddleware "github.com/moloke/lightverse/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.otpService, app.logger)
	verseHandler := api.NewVerseHandler(app.verseStore, app.practiceService, app.logger)
	practiceHandler := api.NewPracticeHandler(app.practiceService, app.logger)
	profileHandler := api.NewProfileHandler(app.userStore, app.streakStore, app.logger)
	webhookHandler := api.NewSMSWebhookHandler(app.practiceService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/otp/request", authHandler.RequestCode)
		r.Post("/auth/otp/verify", authHandler.VerifyCode)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Verse catalog
			r.Get("/verses", verseHandler.ListVerses)
			r.Get("/verses/{id}", verseHandler.GetVerse)

			// Sessions
			r.Post("/sessions", verseHandler.StartSession)

			// Practice cycle
			r.Get("/practice", practiceHandler.GetPractice)
			r.Post("/practice/submit", practiceHandler.SubmitBlanks)

			// Profile and delivery settings
			r.Get("/profile", profileHandler.GetProfile)
			r.Patch("/profile", profileHandler.UpdateProfile)
			r.Post("/profile/pause", profileHandler.PauseDelivery)
			r.Post("/profile/resume", profileHandler.ResumeDelivery)
		})
	})

	// Inbound SMS callbacks from the provider (public, form-encoded)
	r.Post("/webhooks/sms", webhookHandler.HandleInbound)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
