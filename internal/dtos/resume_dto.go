package dtos

import "time"

type ResumeDeleteRequest struct {
	Email string `json:"email"`
}

// ResumeUploadData mirrors the upload endpoint's historical payload, which
// uses snake_case keys unlike the rest of the surface.
type ResumeUploadData struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ResumeURL  string    `json:"resume_url"`
	FileName   string    `json:"file_name"`
	FileSize   int       `json:"file_size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type ResumeGetData struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	UserType  string `json:"user_type"`
	ResumeURL string `json:"resume_url"`
}
