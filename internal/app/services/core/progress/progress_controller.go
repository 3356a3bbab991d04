package progress

import (
	"net/http"

	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ProgressController struct {
	Log             *zap.Logger
	ProgressUsecase contracts.ProgressUsecase
}

func NewProgressController(logger *zap.Logger, progressUsecase contracts.ProgressUsecase) *ProgressController {
	return &ProgressController{
		Log:             logger,
		ProgressUsecase: progressUsecase,
	}
}

func (c *ProgressController) ProjectProgress(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ProgressProjection)
	if err := utils.ParseRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	result, err := c.ProgressUsecase.Project(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProgressProjectSuccess, result)
}

func (c *ProgressController) ForecastCompletion(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CompletionForecast)
	if err := utils.ParseRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	result, err := c.ProgressUsecase.Forecast(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ForecastSuccess, result)
}
