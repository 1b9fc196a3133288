package repository

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/darkr4m/actually-star-k9/core/database"
	"github.com/darkr4m/actually-star-k9/modules/googleauth/entity"

	"github.com/google/uuid"
)

type GoogleAuthRepository interface {
	SaveOAuthState(ctx context.Context, state *entity.OAuthState) error
	GetOAuthState(ctx context.Context, state string) (*entity.OAuthState, error)
	DeleteOAuthState(ctx context.Context, state string) error
	CleanupExpiredOAuthStates(ctx context.Context) error
	GetCredentialsByUserID(ctx context.Context, userID uuid.UUID) (*entity.GoogleCredential, error)
	UpsertCredentials(ctx context.Context, cred *entity.GoogleCredential) (bool, error)
	UpdateAccessToken(ctx context.Context, userID uuid.UUID, accessToken string, expiresAt time.Time) error
}

type googleAuthRepository struct {
	db database.IDatabase
}

func NewGoogleAuthRepository(db database.IDatabase) GoogleAuthRepository {
	return &googleAuthRepository{db: db}
}

func (r *googleAuthRepository) SaveOAuthState(ctx context.Context, state *entity.OAuthState) error {
	query := `
		INSERT INTO oauth_states (state, user_id, expires_at)
		VALUES ($1, $2, $3)`

	_, err := r.db.ExecContext(ctx, query, state.State, state.UserID, state.ExpiresAt)
	return err
}

// GetOAuthState returns nil when the state is unknown or already expired.
func (r *googleAuthRepository) GetOAuthState(ctx context.Context, state string) (*entity.OAuthState, error) {
	query := `
		SELECT id, state, user_id, expires_at, created_at, updated_at
		FROM oauth_states
		WHERE state = $1 AND expires_at > NOW()`

	var row entity.OAuthState
	err := r.db.GetContext(ctx, &row, query, state)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *googleAuthRepository) DeleteOAuthState(ctx context.Context, state string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM oauth_states WHERE state = $1`, state)
	return err
}

func (r *googleAuthRepository) CleanupExpiredOAuthStates(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM oauth_states WHERE expires_at <= NOW()`)
	return err
}

func (r *googleAuthRepository) GetCredentialsByUserID(ctx context.Context, userID uuid.UUID) (*entity.GoogleCredential, error) {
	query := `
		SELECT id, user_id, access_token, refresh_token, expires_at,
		       token_uri, client_id, client_secret, scopes, created_at, updated_at
		FROM google_credentials
		WHERE user_id = $1`

	var cred entity.GoogleCredential
	err := r.db.GetContext(ctx, &cred, query, userID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

// UpsertCredentials writes the credential row for the user, creating it on
// first link. An empty incoming refresh token never clobbers a stored one;
// Google only reissues refresh tokens on fresh consent. Returns true when a
// new row was created.
func (r *googleAuthRepository) UpsertCredentials(ctx context.Context, cred *entity.GoogleCredential) (bool, error) {
	query := `
		INSERT INTO google_credentials
			(user_id, access_token, refresh_token, expires_at, token_uri, client_id, client_secret, scopes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = COALESCE(NULLIF(EXCLUDED.refresh_token, ''), google_credentials.refresh_token),
			expires_at = EXCLUDED.expires_at,
			token_uri = EXCLUDED.token_uri,
			client_id = EXCLUDED.client_id,
			client_secret = EXCLUDED.client_secret,
			scopes = EXCLUDED.scopes,
			updated_at = NOW()
		RETURNING (xmax = 0) AS created`

	var created bool
	err := r.db.QueryRowContext(ctx, query,
		cred.UserID, cred.AccessToken, cred.RefreshToken, cred.ExpiresAt,
		cred.TokenURI, cred.ClientID, cred.ClientSecret, cred.Scopes,
	).Scan(&created)
	if err != nil {
		return false, err
	}
	return created, nil
}

// UpdateAccessToken persists only the rotated access token after a refresh.
// The refresh token and client fields are left untouched.
func (r *googleAuthRepository) UpdateAccessToken(ctx context.Context, userID uuid.UUID, accessToken string, expiresAt time.Time) error {
	query := `
		UPDATE google_credentials
		SET access_token = $2, expires_at = $3, updated_at = NOW()
		WHERE user_id = $1`

	_, err := r.db.ExecContext(ctx, query, userID, accessToken, expiresAt)
	return err
}
