package candidate

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dnkhanh/hireflow/internal/apperror"
	"github.com/dnkhanh/hireflow/internal/dto"
	"github.com/dnkhanh/hireflow/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	flowService       service.InterviewFlowService
	proctoringService service.ProctoringService
}

func NewInterviewController(flowService service.InterviewFlowService, proctoringService service.ProctoringService) *InterviewController {
	return &InterviewController{flowService: flowService, proctoringService: proctoringService}
}

func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperror.ErrInvalidState):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperror.ErrOracleFailure):
		// Retryable: nothing was committed for this turn.
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}

// StartInterview godoc
// @Summary Start an interview by invite token
// @Description Transitions the interview to IN_PROGRESS and returns the first question. Idempotent while in progress.
// @Tags Candidate - Interview
// @Produce json
// @Param invite_token path string true "Invite token"
// @Success 200 {object} dto.InterviewStartDTO
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 409 {object} dto.ErrorResponse "Interview already completed"
// @Router /interviews/start/{invite_token} [post]
func (c *InterviewController) StartInterview(ctx *gin.Context) {
	token := ctx.Param("invite_token")

	result, err := c.flowService.Start(ctx.Request.Context(), token)
	if err != nil {
		log.Warn().Err(err).Msg("StartInterview failed")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// SubmitAnswer godoc
// @Summary Submit an answer to the currently open prompt
// @Description Scores the answer, then either issues a follow-up probe, advances the spine, or completes the interview.
// @Tags Candidate - Interview
// @Accept json
// @Produce json
// @Param interview_id path int true "Interview ID"
// @Param answer body dto.AnswerSubmitDTO true "Candidate answer"
// @Success 200 {object} dto.AnswerScoringDTO
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 409 {object} dto.ErrorResponse "Interview not in progress"
// @Failure 503 {object} dto.ErrorResponse "Scoring temporarily unavailable, retry"
// @Router /interviews/{interview_id}/answer [post]
func (c *InterviewController) SubmitAnswer(ctx *gin.Context) {
	interviewID, err := parseUintParam(ctx, "interview_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid interview ID"})
		return
	}

	var req dto.AnswerSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	result, err := c.flowService.SubmitAnswer(ctx.Request.Context(), interviewID, req.AnswerText)
	if err != nil {
		log.Warn().Err(err).Uint("interviewID", interviewID).Msg("SubmitAnswer failed")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// CompleteInterview godoc
// @Summary Finalize a completed interview and build its transcript
// @Tags Candidate - Interview
// @Produce json
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.InterviewCompleteDTO
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 409 {object} dto.ErrorResponse "Interview not completed yet"
// @Router /interviews/{interview_id}/complete [post]
func (c *InterviewController) CompleteInterview(ctx *gin.Context) {
	interviewID, err := parseUintParam(ctx, "interview_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid interview ID"})
		return
	}

	result, err := c.flowService.Complete(ctx.Request.Context(), interviewID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetInterviewSummary godoc
// @Summary Summarize a completed interview
// @Description Hands the full chronological transcript to the summarizer and returns its recommendation.
// @Tags Candidate - Interview
// @Produce json
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.InterviewSummaryDTO
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 409 {object} dto.ErrorResponse "Interview not completed yet"
// @Failure 503 {object} dto.ErrorResponse "Summarizer temporarily unavailable, retry"
// @Router /interviews/{interview_id}/summary [get]
func (c *InterviewController) GetInterviewSummary(ctx *gin.Context) {
	interviewID, err := parseUintParam(ctx, "interview_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid interview ID"})
		return
	}

	result, err := c.flowService.Summarize(ctx.Request.Context(), interviewID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// SubmitProctoringEvents godoc
// @Summary Report behavioral events for integrity scoring
// @Tags Candidate - Proctoring
// @Accept json
// @Produce json
// @Param interview_id path int true "Interview ID"
// @Param events body dto.ProctoringSubmitDTO true "Behavioral events"
// @Success 200 {object} dto.IntegrityDTO
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interviews/{interview_id}/proctoring/events [post]
func (c *InterviewController) SubmitProctoringEvents(ctx *gin.Context) {
	interviewID, err := parseUintParam(ctx, "interview_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid interview ID"})
		return
	}

	var req dto.ProctoringSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	result, err := c.proctoringService.RecordEvents(ctx.Request.Context(), interviewID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func parseUintParam(ctx *gin.Context, name string) (uint, error) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(val), nil
}
