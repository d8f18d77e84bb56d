package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"jobboard-api/internal/apperrors"
	"jobboard-api/internal/dtos"
	"jobboard-api/internal/models"
)

const DefaultJobListLimit = 50

type JobService struct {
	DB    *gorm.DB
	Users *UserService
}

func NewJobService(db *gorm.DB, users *UserService) *JobService {
	return &JobService{DB: db, Users: users}
}

// PostJob creates a posting. Any registered user may post; the poster's
// email is validated against the user table at creation time only.
func (s *JobService) PostJob(req *dtos.JobCreationRequest) (*dtos.JobResponse, *apperrors.Error) {
	if req.Title == "" || req.Description == "" || req.CompanyName == "" || req.Email == "" {
		return nil, apperrors.BadRequest("All fields are required (title, description, companyName, email)")
	}
	if !validEmail(req.Email) {
		return nil, apperrors.BadRequest("Invalid email format")
	}

	user, err := s.Users.LookupByEmail(req.Email)
	if err != nil {
		return nil, apperrors.Internal("Internal server error while creating job", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("User with this email does not exist")
	}

	job := &models.Job{
		Title:         req.Title,
		Description:   req.Description,
		CompanyName:   req.CompanyName,
		PostedByEmail: req.Email,
		PostedOn:      time.Now(),
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, apperrors.Internal("Internal server error while creating job", err)
	}

	resp := toJobResponse(job)
	return &resp, nil
}

// GetJob returns a posting with its applicant list, most recent
// application first.
func (s *JobService) GetJob(jobID string) (*dtos.JobDetailResponse, *apperrors.Error) {
	if !validID(jobID) {
		return nil, apperrors.BadRequest("Invalid job ID format")
	}

	job, appErr := s.findJob(jobID)
	if appErr != nil {
		return nil, appErr
	}

	applicants, err := s.jobApplicants(jobID)
	if err != nil {
		return nil, apperrors.Internal("Internal server error while retrieving job", err)
	}

	return &dtos.JobDetailResponse{
		JobResponse: toJobResponse(job),
		Applicants:  applicants,
	}, nil
}

// ListJobs returns postings ordered by posting time descending. The limit
// defaults to DefaultJobListLimit and is caller-controlled beyond that.
func (s *JobService) ListJobs(limit, offset int) ([]dtos.JobResponse, *apperrors.Error) {
	if limit <= 0 {
		limit = DefaultJobListLimit
	}
	if offset < 0 {
		offset = 0
	}

	var jobs []models.Job
	err := s.DB.Order("posted_on DESC").Limit(limit).Offset(offset).Find(&jobs).Error
	if err != nil {
		return nil, apperrors.Internal("Internal server error while retrieving jobs", err)
	}

	resp := make([]dtos.JobResponse, 0, len(jobs))
	for i := range jobs {
		resp = append(resp, toJobResponse(&jobs[i]))
	}
	return resp, nil
}

// Apply records an application. Duplicates for the same (job, email) pair
// are rejected: first by the existence check, and if two requests race
// past it, by the composite unique index.
func (s *JobService) Apply(jobID, email string) (*dtos.ApplicationResponse, *apperrors.Error) {
	if email == "" {
		return nil, apperrors.BadRequest("Email is required")
	}
	if !validID(jobID) {
		return nil, apperrors.BadRequest("Invalid job ID format")
	}

	if _, appErr := s.findJob(jobID); appErr != nil {
		return nil, appErr
	}

	user, err := s.Users.LookupByEmail(email)
	if err != nil {
		return nil, apperrors.Internal("Internal server error while applying to job", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}
	if user.UserType != models.RoleApplicant {
		return nil, apperrors.Forbidden("Only applicants can apply to jobs")
	}

	var count int64
	err = s.DB.Model(&models.JobApplication{}).
		Where("job_id = ? AND applicant_email = ?", jobID, email).
		Count(&count).Error
	if err != nil {
		return nil, apperrors.Internal("Internal server error while applying to job", err)
	}
	if count > 0 {
		return nil, apperrors.Conflict("You have already applied to this job")
	}

	application := &models.JobApplication{
		JobID:          jobID,
		ApplicantEmail: email,
		AppliedAt:      time.Now(),
		Status:         models.ApplicationStatusPending,
	}
	if err := s.DB.Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("You have already applied to this job")
		}
		return nil, apperrors.Internal("Internal server error while applying to job", err)
	}

	return &dtos.ApplicationResponse{
		ApplicationID:  application.ID,
		JobID:          application.JobID,
		ApplicantEmail: application.ApplicantEmail,
		AppliedAt:      application.AppliedAt,
		Status:         application.Status,
	}, nil
}

// ListApplicants returns every Applicant account, newest first.
func (s *JobService) ListApplicants() ([]dtos.ApplicantResponse, *apperrors.Error) {
	var users []models.User
	err := s.DB.Where("user_type = ?", models.RoleApplicant).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, apperrors.Internal("Internal server error while retrieving applicants", err)
	}

	resp := make([]dtos.ApplicantResponse, 0, len(users))
	for i := range users {
		u := &users[i]
		resp = append(resp, dtos.ApplicantResponse{
			ID:              u.ID,
			Name:            u.Name,
			Email:           u.Email,
			ProfileHeadline: u.ProfileHeadline,
			Address:         u.Address,
			ResumeURL:       u.ResumeURL,
			CreatedAt:       u.CreatedAt,
		})
	}
	return resp, nil
}

// GetApplicant returns one applicant's detail. Users with any other role
// are reported as not found.
func (s *JobService) GetApplicant(applicantID string) (*dtos.ApplicantResponse, *apperrors.Error) {
	if !validID(applicantID) {
		return nil, apperrors.BadRequest("Invalid applicant ID format")
	}

	var user models.User
	err := s.DB.Where("id = ? AND user_type = ?", applicantID, models.RoleApplicant).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Applicant not found")
	}
	if err != nil {
		return nil, apperrors.Internal("Internal server error while retrieving applicant", err)
	}

	updatedAt := user.UpdatedAt
	return &dtos.ApplicantResponse{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		ProfileHeadline: user.ProfileHeadline,
		Address:         user.Address,
		ResumeURL:       user.ResumeURL,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       &updatedAt,
	}, nil
}

// UpdateJob and DeleteJob exist as unrouted capability; no revision of the
// HTTP surface has exposed them yet.
func (s *JobService) UpdateJob(jobID string, req *dtos.JobUpdateRequest) (*dtos.JobResponse, *apperrors.Error) {
	if !validID(jobID) {
		return nil, apperrors.BadRequest("Invalid job ID format")
	}
	job, appErr := s.findJob(jobID)
	if appErr != nil {
		return nil, appErr
	}

	updates := map[string]any{
		"title":        req.Title,
		"description":  req.Description,
		"company_name": req.CompanyName,
		"updated_at":   time.Now(),
	}
	if err := s.DB.Model(job).Updates(updates).Error; err != nil {
		return nil, apperrors.Internal("Internal server error while updating job", err)
	}

	resp := toJobResponse(job)
	return &resp, nil
}

func (s *JobService) DeleteJob(jobID string) *apperrors.Error {
	if !validID(jobID) {
		return apperrors.BadRequest("Invalid job ID format")
	}
	if _, appErr := s.findJob(jobID); appErr != nil {
		return appErr
	}
	if err := s.DB.Delete(&models.Job{}, "id = ?", jobID).Error; err != nil {
		return apperrors.Internal("Internal server error while deleting job", err)
	}
	return nil
}

// ListJobsByPoster returns a user's own postings, newest first. Unrouted.
func (s *JobService) ListJobsByPoster(email string) ([]dtos.JobResponse, *apperrors.Error) {
	var jobs []models.Job
	err := s.DB.Where("posted_by_email = ?", email).
		Order("posted_on DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, apperrors.Internal("Internal server error while retrieving jobs", err)
	}
	resp := make([]dtos.JobResponse, 0, len(jobs))
	for i := range jobs {
		resp = append(resp, toJobResponse(&jobs[i]))
	}
	return resp, nil
}

func (s *JobService) findJob(jobID string) (*models.Job, *apperrors.Error) {
	var job models.Job
	err := s.DB.Where("id = ?", jobID).First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Job not found")
	}
	if err != nil {
		return nil, apperrors.Internal("Internal server error while retrieving job", err)
	}
	return &job, nil
}

func (s *JobService) jobApplicants(jobID string) ([]dtos.JobApplicant, error) {
	var rows []struct {
		ID              string
		Name            string
		Email           string
		ProfileHeadline string
		Address         string
		ResumeURL       string
		AppliedAt       time.Time
		Status          string
	}
	err := s.DB.Table("job_applications").
		Select("users.id, users.name, users.email, users.profile_headline, users.address, users.resume_url, job_applications.applied_at, job_applications.status").
		Joins("JOIN users ON users.email = job_applications.applicant_email").
		Where("job_applications.job_id = ?", jobID).
		Order("job_applications.applied_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	applicants := make([]dtos.JobApplicant, 0, len(rows))
	for _, r := range rows {
		applicants = append(applicants, dtos.JobApplicant{
			ID:              r.ID,
			Name:            r.Name,
			Email:           r.Email,
			ProfileHeadline: r.ProfileHeadline,
			Address:         r.Address,
			ResumeURL:       r.ResumeURL,
			AppliedAt:       r.AppliedAt,
			Status:          r.Status,
		})
	}
	return applicants, nil
}

func toJobResponse(j *models.Job) dtos.JobResponse {
	return dtos.JobResponse{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		CompanyName: j.CompanyName,
		PostedOn:    j.PostedOn,
		PostedBy:    j.PostedByEmail,
	}
}
