package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"real-estate-api/dto"
	"real-estate-api/models"
	"real-estate-api/utils"
)

var (
	// ErrEmailTaken is returned when registering an already-known email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials deliberately does not say whether the email or
	// the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// FieldErrors maps request field names to their validation messages.
type FieldErrors map[string][]string

type AuthService struct {
	DB     *gorm.DB
	Tokens *utils.TokenManager
}

func NewAuthService(db *gorm.DB, tokens *utils.TokenManager) *AuthService {
	return &AuthService{DB: db, Tokens: tokens}
}

// Register creates a user and signs them in. Policy violations come back as
// field-keyed messages; a duplicate email is reported as ErrEmailTaken.
func (s *AuthService) Register(req dto.RegisterRequest) (*dto.AuthResponse, FieldErrors, error) {
	fieldErrs := FieldErrors{}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		fieldErrs["email"] = append(fieldErrs["email"], "A valid email is required")
	}
	if policyErrs := utils.ValidatePassword(req.Password); len(policyErrs) > 0 {
		fieldErrs["password"] = policyErrs
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	var existing models.User
	err := s.DB.First(&existing, "email = ?", email).Error
	if err == nil {
		return nil, nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	user := models.User{
		ID:           uuid.New(),
		UserName:     email,
		Email:        email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, nil, err
	}

	resp, err := s.buildAuthResponse(user)
	return resp, nil, err
}

// Login verifies the credentials and mints a signed token.
func (s *AuthService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	var user models.User
	if err := s.DB.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return s.buildAuthResponse(user)
}

func (s *AuthService) buildAuthResponse(user models.User) (*dto.AuthResponse, error) {
	token, expiration, err := s.Tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		UserID:     user.ID,
		UserName:   user.UserName,
		Email:      user.Email,
		Token:      token,
		Expiration: expiration,
	}, nil
}
