package proposals

import (
	"net/http"

	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ProposalController struct {
	Log             *zap.Logger
	ProposalUsecase contracts.ProposalUsecase
}

func NewProposalController(logger *zap.Logger, proposalUsecase contracts.ProposalUsecase) *ProposalController {
	return &ProposalController{
		Log:             logger,
		ProposalUsecase: proposalUsecase,
	}
}

func (c *ProposalController) ProposeBookings(w http.ResponseWriter, r *http.Request) {
	request := new(requests.BookingProposal)
	if err := utils.ParseRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	result, err := c.ProposalUsecase.Propose(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProposalSuccess, result)
}
