package dtos

import "time"

type JobCreationRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
}

type JobUpdateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CompanyName string `json:"companyName"`
}

type ApplyRequest struct {
	Email string `json:"email"`
}

type JobResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CompanyName string    `json:"companyName"`
	PostedOn    time.Time `json:"postedOn"`
	PostedBy    string    `json:"postedBy"`
}

// JobApplicant is one entry in a job's embedded applicant list: the
// applicant's profile joined with their application row.
type JobApplicant struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	ProfileHeadline string    `json:"profileHeadline"`
	Address         string    `json:"address"`
	ResumeURL       string    `json:"resumeUrl"`
	AppliedAt       time.Time `json:"appliedAt"`
	Status          string    `json:"status"`
}

type JobDetailResponse struct {
	JobResponse
	Applicants []JobApplicant `json:"applicants"`
}

type ApplicationResponse struct {
	ApplicationID  string    `json:"applicationId"`
	JobID          string    `json:"jobId"`
	ApplicantEmail string    `json:"applicantEmail"`
	AppliedAt      time.Time `json:"appliedAt"`
	Status         string    `json:"status"`
}
