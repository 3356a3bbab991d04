package routers

import (
	"timetable-service/internal/app/delivery/http/middlewares"
	"timetable-service/internal/app/services/core/checkruns"

	"github.com/go-chi/chi/v5"
)

func attachCheckRunRoutes(router chi.Router, middlewares *middlewares.Middlewares, checkRunController *checkruns.CheckRunController) {
	router.With(middlewares.Authenticate).Get("/", checkRunController.GetRecentCheckRuns)
}
