package admin

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

type AdminJobController struct {
	adminJobService service.AdminJobService
}

func NewAdminJobController(adminJobService service.AdminJobService) *AdminJobController {
	return &AdminJobController{adminJobService: adminJobService}
}

func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperror.ErrInvalidState):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}

// CreateJob godoc
// @Summary (Admin) Create a job with its interview questions
// @Description Creates a job, its competency list and its ordered spine questions in one call.
// @Tags Admin - Jobs
// @Accept json
// @Produce json
// @Param job_data body dto.JobCreateDTO true "Job with questions"
// @Success 201 {object} dto.JobDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/jobs [post]
func (c *AdminJobController) CreateJob(ctx *gin.Context) {
	var req dto.JobCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateJob: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	job, err := c.adminJobService.CreateJob(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Admin CreateJob: Service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, job)
}

// ListJobs godoc
// @Summary (Admin) List jobs
// @Tags Admin - Jobs
// @Produce json
// @Success 200 {array} dto.JobDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/jobs [get]
func (c *AdminJobController) ListJobs(ctx *gin.Context) {
	jobs, err := c.adminJobService.ListJobs(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, jobs)
}

// GetJob godoc
// @Summary (Admin) Get a job with its questions
// @Tags Admin - Jobs
// @Produce json
// @Param job_id path int true "Job ID"
// @Success 200 {object} dto.JobDTO
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /admin/jobs/{job_id} [get]
func (c *AdminJobController) GetJob(ctx *gin.Context) {
	jobID, err := parseUintParam(ctx, "job_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid job ID"})
		return
	}

	job, err := c.adminJobService.GetJob(ctx.Request.Context(), jobID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, job)
}

// CreateInterview godoc
// @Summary (Admin) Create an interview invite
// @Description Creates one interview for a (job, candidate) pair and returns its unique invite token.
// @Tags Admin - Interviews
// @Accept json
// @Produce json
// @Param interview_data body dto.InterviewCreateDTO true "Interview invite data"
// @Success 201 {object} dto.InterviewDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /admin/interviews [post]
func (c *AdminJobController) CreateInterview(ctx *gin.Context) {
	var req dto.InterviewCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateInterview: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	interview, err := c.adminJobService.CreateInterview(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Uint("jobID", req.JobID).Msg("Admin CreateInterview: Service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, interview)
}

// ListInterviews godoc
// @Summary (Admin) List a job's interviews
// @Tags Admin - Interviews
// @Produce json
// @Param job_id path int true "Job ID"
// @Success 200 {array} dto.InterviewDTO
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /admin/jobs/{job_id}/interviews [get]
func (c *AdminJobController) ListInterviews(ctx *gin.Context) {
	jobID, err := parseUintParam(ctx, "job_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid job ID"})
		return
	}

	interviews, err := c.adminJobService.ListInterviews(ctx.Request.Context(), jobID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, interviews)
}

// GetInterviewDetail godoc
// @Summary (Admin) Get one interview with its full transcript
// @Tags Admin - Interviews
// @Produce json
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.InterviewDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /admin/interviews/{interview_id} [get]
func (c *AdminJobController) GetInterviewDetail(ctx *gin.Context) {
	interviewID, err := parseUintParam(ctx, "interview_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid interview ID"})
		return
	}

	detail, err := c.adminJobService.GetInterviewDetail(ctx.Request.Context(), interviewID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

func parseUintParam(ctx *gin.Context, name string) (uint, error) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(val), nil
}
