package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the full HTTP surface. Route shapes are compatibility
// surface; do not rename them.
func NewRouter(authH *AuthHandler, jobH *JobHandler, resumeH *ResumeHandler) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	r.GET("/health", HealthCheck)

	auth := r.Group("/auth")
	{
		auth.POST("/signup", authH.Signup)
		auth.POST("/login", authH.Login)
	}

	api := r.Group("/api")
	{
		api.POST("/job", jobH.CreateJob)
		api.GET("/job/:id", jobH.GetJob)
		api.GET("/jobs", jobH.GetAllJobs)
		api.POST("/job/:id/apply", jobH.ApplyToJob)
		api.GET("/applicants", jobH.GetAllApplicants)
		api.GET("/applicant/:id", jobH.GetApplicant)
	}

	resume := r.Group("/resume")
	{
		resume.POST("/upload", resumeH.Upload)
		resume.GET("/getResume", resumeH.GetResume)
		resume.DELETE("/deleteResume", resumeH.DeleteResume)
	}

	return r
}
