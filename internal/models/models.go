package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of account types. Keeping it a named type (rather
// than comparing raw strings all over) means a new role cannot silently
// slip past a role check.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleApplicant Role = "Applicant"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleApplicant
}

type User struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	UserType     Role   `gorm:"type:varchar(16);not null" json:"user_type"`

	ProfileHeadline string `json:"profile_headline"`
	Address         string `json:"address"`

	// ResumeURL is the public URL handed back to clients. ResumePath is the
	// object key inside the bucket; deletion uses it directly instead of
	// parsing the URL back apart.
	ResumeURL  string `json:"resume_url"`
	ResumePath string `json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type Job struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	CompanyName string `gorm:"not null" json:"company_name"`

	// The poster is identified by email, not by foreign key. Validated to
	// belong to an existing user at creation time only.
	PostedByEmail string    `gorm:"index;not null" json:"posted_by_email"`
	PostedOn      time.Time `json:"posted_on"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

// ApplicationStatusPending is the only status this revision ever writes.
// No transition operations are exposed.
const ApplicationStatusPending = "pending"

type JobApplication struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	// The composite unique index is the real duplicate guard: the service
	// checks before inserting for the friendlier message, but only the
	// index closes the window between two concurrent applies for the same
	// pair.
	JobID          string `gorm:"not null;uniqueIndex:idx_job_applicant" json:"job_id"`
	ApplicantEmail string `gorm:"not null;uniqueIndex:idx_job_applicant" json:"applicant_email"`

	AppliedAt time.Time `json:"applied_at"`
	Status    string    `gorm:"default:'pending'" json:"status"`
}

func (a *JobApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
