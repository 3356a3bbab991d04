package routers

import (
	"timetable-service/internal/app/delivery/http/middlewares"
	"timetable-service/internal/app/services/core/conflicts"

	"github.com/go-chi/chi/v5"
)

func attachConflictRoutes(router chi.Router, middlewares *middlewares.Middlewares, conflictController *conflicts.ConflictController) {
	router.With(middlewares.Authenticate).Post("/check", conflictController.CheckConflicts)
}
