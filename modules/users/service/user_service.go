package service

import (
	"context"
	"strings"
	"time"

	"github.com/darkr4m/actually-star-k9/core/cache"
	"github.com/darkr4m/actually-star-k9/core/constants"
	"github.com/darkr4m/actually-star-k9/core/errors"
	"github.com/darkr4m/actually-star-k9/core/logger"
	"github.com/darkr4m/actually-star-k9/core/utils"
	"github.com/darkr4m/actually-star-k9/modules/users/dto"
	"github.com/darkr4m/actually-star-k9/modules/users/entity"
	"github.com/darkr4m/actually-star-k9/modules/users/repository"

	"github.com/google/uuid"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenPairResponse, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type userService struct {
	repo   repository.UserRepository
	cache  cache.Cache
	tokens *utils.TokenManager
}

func NewUserService(repo repository.UserRepository, cache cache.Cache, tokens *utils.TokenManager) UserService {
	return &userService{
		repo:   repo,
		cache:  cache,
		tokens: tokens,
	}
}

func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		logger.Error("UserService:Register:Lookup", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check existing account", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "an account with this email already exists", nil)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("UserService:Register:Hash", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	user, err := s.repo.CreateUser(ctx, &entity.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
	})
	if err != nil {
		logger.Error("UserService:Register:Create", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create account", err)
	}

	logger.Info("UserService:Register:Success", "userId", user.ID)
	return toUserResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenPairResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		logger.Error("UserService:Login:Lookup", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load account", err)
	}
	// Same response for unknown email and wrong password.
	if user == nil || !user.IsActive || !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid email or password", nil)
	}

	accessToken, err := s.tokens.Generate(user.ID, user.Email, constants.ScopeTokenAccess)
	if err != nil {
		logger.Error("UserService:Login:AccessToken", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to issue tokens", err)
	}
	refreshToken, err := s.tokens.Generate(user.ID, user.Email, constants.ScopeTokenRefresh)
	if err != nil {
		logger.Error("UserService:Login:RefreshToken", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to issue tokens", err)
	}

	logger.Info("UserService:Login:Success", "userId", user.ID)
	return &dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout blacklists the presented token for its remaining lifetime.
func (s *userService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.ValidateAndParse(token)
	if err != nil {
		return errors.NewAppError(errors.ErrInvalidTokenFormat, "token is invalid", err)
	}

	ttl := constants.AccessTokenTTL
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}

	if err := s.cache.AddToTokenBlacklist(ctx, token, ttl); err != nil {
		logger.Error("UserService:Logout:Blacklist", "error", err, "userId", claims.UserID)
		return errors.NewAppError(errors.ErrInternalServer, "failed to revoke token", err)
	}

	logger.Info("UserService:Logout:Success", "userId", claims.UserID)
	return nil
}

func (s *userService) Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		logger.Error("UserService:Me:Lookup", "error", err, "userId", userID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load account", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "account not found", nil)
	}
	return toUserResponse(user), nil
}

func toUserResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
	}
}
