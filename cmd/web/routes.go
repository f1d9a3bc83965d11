package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (app *application) routes() http.Handler {
	router := chi.NewRouter()
	router.Use(app.logAndTraceRequest, app.recoverPanic, secureHeaders, app.timeout)
	router.NotFound(app.notFound)
	router.MethodNotAllowed(app.methodNotAllowed)

	router.Get("/api/healthy", app.healthy)
	router.Get("/api/test/timeout", app.testTimeout)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(app.requireAPIKey, app.requireAthlete)

		r.Post("/assessment", app.assessmentPOST)
		r.Get("/profile", app.profileGET)
		r.Get("/routine", app.routineGET)
		r.Get("/routine/week", app.weeklyPlanGET)
		r.Post("/sessions/{sessionID}/complete", app.sessionCompletePOST)
		r.Post("/exercises/log", app.exerciseLogPOST)
		r.Get("/skills/{skill}/readiness", app.skillReadinessGET)
		r.Get("/missions", app.missionsGET)
	})

	return router
}
