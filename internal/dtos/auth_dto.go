package dtos

import "time"

type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	UserType        string `json:"userType"`
	ProfileHeadline string `json:"profileHeadline"`
	Address         string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the user shape returned by signup and login. The
// password hash never appears here.
type UserResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	UserType        string `json:"userType"`
	ProfileHeadline string `json:"profileHeadline"`
	Address         string `json:"address"`
}

type AuthData struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ApplicantResponse is the shape used by the applicant listing and detail
// endpoints. UpdatedAt is only populated on the detail view.
type ApplicantResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	ProfileHeadline string     `json:"profileHeadline"`
	Address         string     `json:"address"`
	ResumeURL       string     `json:"resumeUrl"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}
