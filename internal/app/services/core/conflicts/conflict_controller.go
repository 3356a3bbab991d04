package conflicts

import (
	"net/http"

	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ConflictController struct {
	Log             *zap.Logger
	ConflictUsecase contracts.ConflictUsecase
}

func NewConflictController(logger *zap.Logger, conflictUsecase contracts.ConflictUsecase) *ConflictController {
	return &ConflictController{
		Log:             logger,
		ConflictUsecase: conflictUsecase,
	}
}

func (c *ConflictController) CheckConflicts(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ConflictCheck)
	if err := utils.ParseRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	result, err := c.ConflictUsecase.Detect(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConflictCheckSuccess, result)
}
