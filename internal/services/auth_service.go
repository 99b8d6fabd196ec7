package services

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"travelog/internal/models"
	"travelog/internal/repositories/interfaces"
	"travelog/internal/security"
	"travelog/internal/utils"
	"travelog/internal/validators"
	"travelog/pkg/logger"
)

type AuthService interface {
	Register(ctx context.Context, req *validators.RegisterRequest) (*models.UserSummary, error)
	Login(ctx context.Context, req *validators.LoginRequest) (*LoginResponse, error)
}

type LoginResponse struct {
	Token string              `json:"token"`
	User  *models.UserSummary `json:"user"`
}

type authService struct {
	userRepo  interfaces.UserRepository
	jwtSecret string
	logger    *logger.Logger
}

func NewAuthService(userRepo interfaces.UserRepository, jwtSecret string, log *logger.Logger) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		logger:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *validators.RegisterRequest) (*models.UserSummary, error) {
	if errs := validators.ValidateRegister(req); len(errs) > 0 {
		return nil, NewValidationError(errs[0].Field, errs.First())
	}

	// Display name is free text; the email was already shape-checked.
	req.DisplayName = security.Sanitize(req.DisplayName)
	if len(req.DisplayName) < utils.MinDisplayNameLength {
		return nil, NewValidationError("display_name", "DisplayName must be at least 2 characters")
	}

	if existing, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, NewConflictError("A user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:       req.Email,
		Password:    string(hash),
		DisplayName: req.DisplayName,
		Role:        models.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique email index closes the check-then-create window.
		if mongo.IsDuplicateKeyError(err) {
			return nil, NewConflictError("A user with this email already exists")
		}
		return nil, err
	}

	s.logger.WithUserID(user.ID).Info("user registered")

	return user.Summary(), nil
}

func (s *authService) Login(ctx context.Context, req *validators.LoginRequest) (*LoginResponse, error) {
	if errs := validators.ValidateLogin(req); len(errs) > 0 {
		return nil, NewValidationError(errs[0].Field, errs.First())
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, NewAuthenticationError("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, NewAuthenticationError("Invalid email or password")
	}

	if user.IsBlocked {
		return nil, NewAuthorizationError("Your account has been blocked")
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role), user.DisplayName, s.jwtSecret, utils.JWTTokenTTL)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token: token,
		User:  user.Summary(),
	}, nil
}
