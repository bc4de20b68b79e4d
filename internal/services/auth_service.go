package services

import (
	"errors"
	"fmt"

	"fitclub_backend/internal/models"
	"fitclub_backend/internal/repositories"
	"fitclub_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials is returned when the username or password is wrong.
	// The two cases are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// LoginRequest is the payload for operator login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterUserRequest is the payload for creating an operator account.
type RegisterUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// LoginResponse carries the signed token and the operator profile.
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// AuthService handles operator authentication.
type AuthService struct {
	db       *gorm.DB
	authRepo repositories.AuthRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(db *gorm.DB, authRepo repositories.AuthRepository) *AuthService {
	return &AuthService{db: db, authRepo: authRepo}
}

// Login verifies the credentials and issues a JWT.
func (s *AuthService) Login(req LoginRequest) (*LoginResponse, error) {
	user, err := s.authRepo.FindUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.FullName)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	utils.LogInfo("Operator logged in", map[string]interface{}{"user_id": user.ID, "username": user.Username})
	return &LoginResponse{Token: token, User: user}, nil
}

// RegisterUser creates a new operator account with a bcrypt password hash.
func (s *AuthService) RegisterUser(req RegisterUserRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Email:        req.Email,
	}

	id, err := s.authRepo.CreateUser(s.db, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	utils.LogInfo("Operator account created", map[string]interface{}{"user_id": id, "username": user.Username})
	return user, nil
}

// GetUserProfile returns the operator behind a validated token.
func (s *AuthService) GetUserProfile(userID int64) (*models.User, error) {
	return s.authRepo.FindUserByID(userID)
}
