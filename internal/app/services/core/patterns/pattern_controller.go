package patterns

import (
	"net/http"

	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type PatternController struct {
	Log            *zap.Logger
	PatternUsecase contracts.PatternUsecase
}

func NewPatternController(logger *zap.Logger, patternUsecase contracts.PatternUsecase) *PatternController {
	return &PatternController{
		Log:            logger,
		PatternUsecase: patternUsecase,
	}
}

func (c *PatternController) EncodePattern(w http.ResponseWriter, r *http.Request) {
	request := new(requests.PatternEncode)
	if err := utils.ParseRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	result, err := c.PatternUsecase.Encode(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatternEncodedSuccess, result)
}

func (c *PatternController) DecodePattern(w http.ResponseWriter, r *http.Request) {
	request := new(requests.PatternDecode)
	if err := utils.ParseRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	result, err := c.PatternUsecase.Decode(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatternDecodedSuccess, result)
}
