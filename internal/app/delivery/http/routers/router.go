package routers

import (
	"fmt"
	"time"

	"timetable-service/internal/app/config"
	"timetable-service/internal/app/delivery/http/middlewares"
	"timetable-service/internal/app/services/core/checkruns"
	"timetable-service/internal/app/services/core/conflicts"
	"timetable-service/internal/app/services/core/patterns"
	"timetable-service/internal/app/services/core/progress"
	"timetable-service/internal/app/services/core/proposals"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	patternController *patterns.PatternController,
	progressController *progress.ProgressController,
	conflictController *conflicts.ConflictController,
	proposalController *proposals.ProposalController,
	checkRunController *checkruns.CheckRunController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/patterns", func(r chi.Router) {
				attachPatternRoutes(r, middlewares, patternController)
			})

			r.Route("/progress", func(r chi.Router) {
				attachProgressRoutes(r, middlewares, progressController)
			})

			r.Route("/conflicts", func(r chi.Router) {
				attachConflictRoutes(r, middlewares, conflictController)
			})

			r.Route("/proposals", func(r chi.Router) {
				attachProposalRoutes(r, middlewares, proposalController)
			})

			r.Route("/conflict-checks", func(r chi.Router) {
				attachCheckRunRoutes(r, middlewares, checkRunController)
			})
		})
	})
}
