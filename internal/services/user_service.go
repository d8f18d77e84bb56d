package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"jobboard-api/internal/apperrors"
	"jobboard-api/internal/auth"
	"jobboard-api/internal/dtos"
	"jobboard-api/internal/models"
)

type UserService struct {
	DB        *gorm.DB
	JWTSecret string
}

func NewUserService(db *gorm.DB, jwtSecret string) *UserService {
	return &UserService{DB: db, JWTSecret: jwtSecret}
}

// Register creates a new account and issues its first token.
func (s *UserService) Register(req *dtos.SignupRequest) (*dtos.AuthData, *apperrors.Error) {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.UserType == "" ||
		req.ProfileHeadline == "" || req.Address == "" {
		return nil, apperrors.BadRequest("All fields are required (name, email, password, userType, profileHeadline, address)")
	}

	role := models.Role(req.UserType)
	if !role.Valid() {
		return nil, apperrors.BadRequest(`userType must be either "Admin" or "Applicant"`)
	}

	if !validEmail(req.Email) {
		return nil, apperrors.BadRequest("Invalid email format")
	}

	existing, err := s.LookupByEmail(req.Email)
	if err != nil {
		return nil, apperrors.Internal("Internal server error during signup", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("User with this email already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Internal("Internal server error during signup", err)
	}

	user := &models.User{
		Name:            req.Name,
		Email:           req.Email,
		PasswordHash:    hash,
		UserType:        role,
		ProfileHeadline: req.ProfileHeadline,
		Address:         req.Address,
	}
	if err := s.DB.Create(user).Error; err != nil {
		// The unique index on email backstops the existence check above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("User with this email already exists")
		}
		return nil, apperrors.Internal("Internal server error during signup", err)
	}

	token, err := auth.IssueToken(s.JWTSecret, user.ID, user.UserType)
	if err != nil {
		return nil, apperrors.Internal("Internal server error during signup", err)
	}

	return &dtos.AuthData{User: toUserResponse(user), Token: token}, nil
}

// Authenticate verifies credentials and issues a token. A missing user and
// a wrong password produce the same response, so callers cannot probe for
// registered emails.
func (s *UserService) Authenticate(req *dtos.LoginRequest) (*dtos.AuthData, *apperrors.Error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.BadRequest("Email and password are required")
	}

	user, err := s.LookupByEmail(req.Email)
	if err != nil {
		return nil, apperrors.Internal("Internal server error during login", err)
	}
	if user == nil || !auth.ComparePassword(req.Password, user.PasswordHash) {
		return nil, apperrors.Unauthorized("Invalid email or password")
	}

	token, err := auth.IssueToken(s.JWTSecret, user.ID, user.UserType)
	if err != nil {
		return nil, apperrors.Internal("Internal server error during login", err)
	}

	return &dtos.AuthData{User: toUserResponse(user), Token: token}, nil
}

// LookupByEmail returns (nil, nil) when no user has the email; an error
// only means the store itself failed.
func (s *UserService) LookupByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// LookupByID has the same absent-vs-failure contract as LookupByEmail.
func (s *UserService) LookupByID(id string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies a partial column update and stamps updated_at. Not
// routed in this revision.
func (s *UserService) UpdateProfile(id string, updates map[string]any) (*models.User, error) {
	updates["updated_at"] = time.Now()
	if err := s.DB.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.LookupByID(id)
}

func toUserResponse(u *models.User) dtos.UserResponse {
	return dtos.UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		UserType:        string(u.UserType),
		ProfileHeadline: u.ProfileHeadline,
		Address:         u.Address,
	}
}
