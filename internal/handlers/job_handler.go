package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard-api/internal/dtos"
	"jobboard-api/internal/services"
)

type JobHandler struct {
	Jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

// CreateJob is the POST /api/job endpoint.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dtos.Fail("Invalid JSON format: "+err.Error(), ""))
		return
	}

	job, appErr := h.Jobs.PostJob(&req)
	if appErr != nil {
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, dtos.OK("Job created successfully", job))
}

// GetJob is the GET /api/job/:id endpoint. The response embeds the
// applicant list.
func (h *JobHandler) GetJob(c *gin.Context) {
	job, appErr := h.Jobs.GetJob(c.Param("id"))
	if appErr != nil {
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, dtos.OK("Job details retrieved successfully", job))
}

// GetAllJobs is the GET /api/jobs endpoint with ?limit and ?offset.
func (h *JobHandler) GetAllJobs(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		limit = services.DefaultJobListLimit
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		offset = 0
	}

	jobs, appErr := h.Jobs.ListJobs(limit, offset)
	if appErr != nil {
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, dtos.OKList("Jobs retrieved successfully", jobs, len(jobs)))
}

// ApplyToJob is the POST /api/job/:id/apply endpoint.
func (h *JobHandler) ApplyToJob(c *gin.Context) {
	var req dtos.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dtos.Fail("Invalid JSON format: "+err.Error(), ""))
		return
	}

	application, appErr := h.Jobs.Apply(c.Param("id"), req.Email)
	if appErr != nil {
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, dtos.OK("Application submitted successfully", application))
}

// GetAllApplicants is the GET /api/applicants endpoint.
func (h *JobHandler) GetAllApplicants(c *gin.Context) {
	applicants, appErr := h.Jobs.ListApplicants()
	if appErr != nil {
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, dtos.OKList("Applicants retrieved successfully", applicants, len(applicants)))
}

// GetApplicant is the GET /api/applicant/:id endpoint.
func (h *JobHandler) GetApplicant(c *gin.Context) {
	applicant, appErr := h.Jobs.GetApplicant(c.Param("id"))
	if appErr != nil {
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, dtos.OK("Applicant details retrieved successfully", applicant))
}
