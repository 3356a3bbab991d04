package routers

import (
	"timetable-service/internal/app/delivery/http/middlewares"
	"timetable-service/internal/app/services/core/proposals"

	"github.com/go-chi/chi/v5"
)

func attachProposalRoutes(router chi.Router, middlewares *middlewares.Middlewares, proposalController *proposals.ProposalController) {
	router.With(middlewares.Authenticate).Post("/", proposalController.ProposeBookings)
}
