package checkruns

import (
	"net/http"

	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type CheckRunController struct {
	Log             *zap.Logger
	CheckRunUsecase contracts.CheckRunUsecase
}

func NewCheckRunController(logger *zap.Logger, checkRunUsecase contracts.CheckRunUsecase) *CheckRunController {
	return &CheckRunController{
		Log:             logger,
		CheckRunUsecase: checkRunUsecase,
	}
}

func (c *CheckRunController) GetRecentCheckRuns(w http.ResponseWriter, r *http.Request) {
	page, pageSize := utils.ParsePageParams(r)

	runs, total, err := c.CheckRunUsecase.FindRecent(r.Context(), page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.CheckRunsGetSuccess, pagination, runs)
}
