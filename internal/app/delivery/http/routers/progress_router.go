package routers

import (
	"timetable-service/internal/app/delivery/http/middlewares"
	"timetable-service/internal/app/services/core/progress"

	"github.com/go-chi/chi/v5"
)

func attachProgressRoutes(router chi.Router, middlewares *middlewares.Middlewares, progressController *progress.ProgressController) {
	router.Post("/project", progressController.ProjectProgress)
	router.Post("/forecast", progressController.ForecastCompletion)
}
