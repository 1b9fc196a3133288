package service

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/darkr4m/actually-star-k9/core/config"
	"github.com/darkr4m/actually-star-k9/core/constants"
	"github.com/darkr4m/actually-star-k9/core/errors"
	"github.com/darkr4m/actually-star-k9/core/logger"
	"github.com/darkr4m/actually-star-k9/core/utils"
	"github.com/darkr4m/actually-star-k9/modules/googleauth/dto"
	"github.com/darkr4m/actually-star-k9/modules/googleauth/entity"
	"github.com/darkr4m/actually-star-k9/modules/googleauth/repository"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

type GoogleAuthService interface {
	GetGoogleAuthURL(ctx context.Context, userID uuid.UUID) (*dto.AuthURLResponse, error)
	HandleGoogleCallback(ctx context.Context, userID uuid.UUID, req *dto.GoogleCallbackRequest) error
}

type googleAuthService struct {
	repo      repository.GoogleAuthRepository
	googleCfg config.GoogleAPIConfig

	// timeout bounds each outbound call to the provider.
	timeout time.Duration
}

func NewGoogleAuthService(repo repository.GoogleAuthRepository, googleCfg config.GoogleAPIConfig) GoogleAuthService {
	return &googleAuthService{
		repo:      repo,
		googleCfg: googleCfg,
		timeout:   constants.GoogleAPITimeout,
	}
}

func (s *googleAuthService) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     s.googleCfg.ClientID,
		ClientSecret: s.googleCfg.ClientSecret,
		RedirectURL:  s.googleCfg.RedirectURI,
		Scopes:       constants.GoogleCalendarScopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  s.googleCfg.AuthURI,
			TokenURL: s.googleCfg.TokenURI,
		},
	}
}

// GetGoogleAuthURL builds the consent URL for the user. The anti-forgery
// state is stored before the URL is handed out, so a callback can never
// arrive for a state we do not know about.
func (s *googleAuthService) GetGoogleAuthURL(ctx context.Context, userID uuid.UUID) (*dto.AuthURLResponse, error) {
	state := utils.GenerateRandomString(constants.OAuthStateLength)

	oauthState := &entity.OAuthState{
		State:     state,
		UserID:    userID,
		ExpiresAt: time.Now().Add(constants.OAuthStateTTL),
	}
	if err := s.repo.SaveOAuthState(ctx, oauthState); err != nil {
		logger.Error("GoogleAuthService:GetGoogleAuthURL:SaveState", "error", err, "userId", userID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to persist oauth state", err)
	}

	authURL := s.oauthConfig().AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.ApprovalForce,
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
	)

	logger.Info("GoogleAuthService:GetGoogleAuthURL:Success", "userId", userID)
	return &dto.AuthURLResponse{AuthorizationURL: authURL}, nil
}

// HandleGoogleCallback validates the returned state, exchanges the
// authorization code for tokens and stores them for the user.
func (s *googleAuthService) HandleGoogleCallback(ctx context.Context, userID uuid.UUID, req *dto.GoogleCallbackRequest) error {
	if req.Code == "" {
		return errors.NewAppError(errors.ErrMissingCode, "authorization code is required", nil)
	}

	stored, err := s.repo.GetOAuthState(ctx, req.State)
	if err != nil {
		logger.Error("GoogleAuthService:HandleGoogleCallback:GetState", "error", err, "userId", userID)
		return errors.NewAppError(errors.ErrInternalServer, "failed to load oauth state", err)
	}

	// One attempt per state, whether the exchange succeeds or not.
	if req.State != "" {
		if err := s.repo.DeleteOAuthState(ctx, req.State); err != nil {
			logger.Warn("GoogleAuthService:HandleGoogleCallback:DeleteState", "error", err)
		}
	}

	if stored == nil || stored.UserID != userID {
		logger.Warn("GoogleAuthService:HandleGoogleCallback:StateMismatch", "userId", userID)
		return errors.NewAppError(errors.ErrInvalidState, "oauth state is invalid or expired", nil)
	}

	exchangeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tok, err := s.oauthConfig().Exchange(exchangeCtx, req.Code)
	if err != nil {
		if isInvalidGrant(err) {
			logger.Warn("GoogleAuthService:HandleGoogleCallback:InvalidGrant", "userId", userID)
			return errors.NewAppError(errors.ErrInvalidGrant, "authorization code was rejected", err)
		}
		logger.Error("GoogleAuthService:HandleGoogleCallback:Exchange", "error", err, "userId", userID)
		return errors.NewAppError(errors.ErrExchangeFailed, "failed to exchange authorization code", err)
	}

	scopes := strings.Join(constants.GoogleCalendarScopes, " ")
	if granted, ok := tok.Extra("scope").(string); ok && granted != "" {
		scopes = granted
	}

	cred := &entity.GoogleCredential{
		UserID:       userID,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    tok.Expiry,
		TokenURI:     s.googleCfg.TokenURI,
		ClientID:     s.googleCfg.ClientID,
		ClientSecret: s.googleCfg.ClientSecret,
		Scopes:       scopes,
	}

	created, err := s.reconcileCredentials(ctx, cred)
	if err != nil {
		logger.Error("GoogleAuthService:HandleGoogleCallback:Store", "error", err, "userId", userID)
		return errors.NewAppError(errors.ErrStorageFailure, "failed to store google credentials", err)
	}

	logger.Info("GoogleAuthService:HandleGoogleCallback:Success", "userId", userID, "created", created)
	return nil
}

// reconcileCredentials writes the new token set, keeping the previously
// stored refresh token when Google did not send a new one. The upsert SQL
// enforces the same rule, so concurrent callbacks cannot lose it either.
func (s *googleAuthService) reconcileCredentials(ctx context.Context, cred *entity.GoogleCredential) (bool, error) {
	if cred.RefreshToken == "" {
		existing, err := s.repo.GetCredentialsByUserID(ctx, cred.UserID)
		if err != nil {
			return false, err
		}
		if existing != nil {
			cred.RefreshToken = existing.RefreshToken
		}
	}
	return s.repo.UpsertCredentials(ctx, cred)
}

// isInvalidGrant detects the provider rejecting the code itself, which is a
// caller mistake rather than a server fault.
func isInvalidGrant(err error) bool {
	var retrieveErr *oauth2.RetrieveError
	if stderrors.As(err, &retrieveErr) {
		if retrieveErr.ErrorCode == "invalid_grant" {
			return true
		}
		return strings.Contains(string(retrieveErr.Body), "invalid_grant")
	}
	return strings.Contains(err.Error(), "invalid_grant")
}
