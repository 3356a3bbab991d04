package routers

import (
	"timetable-service/internal/app/delivery/http/middlewares"
	"timetable-service/internal/app/services/core/patterns"

	"github.com/go-chi/chi/v5"
)

func attachPatternRoutes(router chi.Router, middlewares *middlewares.Middlewares, patternController *patterns.PatternController) {
	router.Post("/encode", patternController.EncodePattern)
	router.Post("/decode", patternController.DecodePattern)
}
