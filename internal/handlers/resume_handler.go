package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-api/internal/dtos"
	"jobboard-api/internal/services"
)

// maxResumeSize is the upload bound enforced before the service runs; a
// request over it is rejected with no side effects.
const maxResumeSize = 2 * 1024 * 1024

var allowedResumeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

type ResumeHandler struct {
	Resumes *services.ResumeService
}

func NewResumeHandler(resumes *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{Resumes: resumes}
}

// Upload is the POST /resume/upload endpoint: multipart field "resume"
// plus an email form field. Size and MIME filtering happen here so a
// rejected upload never reaches storage.
func (h *ResumeHandler) Upload(c *gin.Context) {
	email := c.PostForm("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, dtos.Fail("Email is required", ""))
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, dtos.Fail("No file uploaded", ""))
		return
	}
	if fileHeader.Size > maxResumeSize {
		c.JSON(http.StatusBadRequest, dtos.Fail("File too large (max 2MB)", ""))
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedResumeTypes[contentType] {
		c.JSON(http.StatusBadRequest, dtos.Fail("Only PDF and DOCX files are allowed", ""))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dtos.Fail("No file uploaded", ""))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxResumeSize+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dtos.Fail("Internal server error", err.Error()))
		return
	}
	if len(data) > maxResumeSize {
		c.JSON(http.StatusBadRequest, dtos.Fail("File too large (max 2MB)", ""))
		return
	}

	metadata, appErr := h.Resumes.Upload(c.Request.Context(), email, data, fileHeader.Filename, contentType)
	if appErr != nil {
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, dtos.OK("Resume uploaded successfully", metadata))
}

// GetResume is the GET /resume/getResume?email= endpoint.
func (h *ResumeHandler) GetResume(c *gin.Context) {
	data, appErr := h.Resumes.GetResumeURL(c.Query("email"))
	if appErr != nil {
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, dtos.Response{Success: true, Data: data})
}

// DeleteResume is the DELETE /resume/deleteResume endpoint; the email
// comes in the request body.
func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	var req dtos.ResumeDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dtos.Fail("Invalid JSON format: "+err.Error(), ""))
		return
	}

	if appErr := h.Resumes.Delete(c.Request.Context(), req.Email); appErr != nil {
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, dtos.Response{Success: true, Message: "Resume deleted successfully"})
}
