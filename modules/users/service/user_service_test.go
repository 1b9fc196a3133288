package service

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/darkr4m/actually-star-k9/core/constants"
	"github.com/darkr4m/actually-star-k9/core/errors"
	"github.com/darkr4m/actually-star-k9/core/utils"
	"github.com/darkr4m/actually-star-k9/modules/users/dto"
	"github.com/darkr4m/actually-star-k9/modules/users/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[uuid.UUID]*entity.User
	err     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*entity.User),
		byID:    make(map[uuid.UUID]*entity.User),
	}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *entity.User) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := *user
	created.ID = uuid.New()
	created.IsActive = true
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.byEmail[created.Email] = &created
	f.byID[created.ID] = &created
	return &created, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

type fakeCache struct {
	blacklisted map[string]time.Duration
	err         error
}

func newFakeCache() *fakeCache {
	return &fakeCache{blacklisted: make(map[string]time.Duration)}
}

func (f *fakeCache) AddToTokenBlacklist(_ context.Context, token string, ttl time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.blacklisted[token] = ttl
	return nil
}

func (f *fakeCache) IsTokenBlacklisted(_ context.Context, token string) (bool, error) {
	_, ok := f.blacklisted[token]
	return ok, nil
}

func (f *fakeCache) Close() error { return nil }

func appErrCode(t *testing.T, err error) errors.ErrorCode {
	t.Helper()
	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.Code
}

func newTestService(repo *fakeUserRepo, c *fakeCache) UserService {
	return NewUserService(repo, c, utils.NewTokenManager("test-secret"))
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:       "trainer@example.com",
		Password:    "correct-horse",
		Password2:   "correct-horse",
		FirstName:   "Dana",
		LastName:    "Reyes",
		PhoneNumber: "555-0100",
	}
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, newFakeCache())

	user, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.Equal(t, "trainer@example.com", user.Email)
	assert.Equal(t, "Dana", user.FirstName)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, uuid.Nil, user.ID)

	// The stored hash must verify against the original password and never
	// equal the plaintext.
	stored := repo.byEmail["trainer@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct-horse", stored.PasswordHash)
	assert.True(t, utils.CheckPassword(stored.PasswordHash, "correct-horse"))
}

func TestRegisterNormalizesEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, newFakeCache())

	req := registerRequest()
	req.Email = "  Trainer@Example.COM "
	user, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "trainer@example.com", user.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, newFakeCache())

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequest())
	assert.Equal(t, errors.ErrAlreadyExists, appErrCode(t, err))
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, newFakeCache())

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	tokens, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "trainer@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)

	claims, err := utils.NewTokenManager("test-secret").ValidateAndParse(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, constants.ScopeTokenAccess, claims.Scope)
	assert.Equal(t, "trainer@example.com", claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, newFakeCache())

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "trainer@example.com",
		Password: "wrong",
	})
	assert.Equal(t, errors.ErrUnauthorized, appErrCode(t, err))
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), newFakeCache())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.Equal(t, errors.ErrUnauthorized, appErrCode(t, err))
}

func TestLoginInactiveAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, newFakeCache())

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	repo.byEmail["trainer@example.com"].IsActive = false

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "trainer@example.com",
		Password: "correct-horse",
	})
	assert.Equal(t, errors.ErrUnauthorized, appErrCode(t, err))
}

func TestLogoutBlacklistsToken(t *testing.T) {
	repo := newFakeUserRepo()
	c := newFakeCache()
	svc := newTestService(repo, c)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	tokens, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "trainer@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), tokens.AccessToken))

	ttl, ok := c.blacklisted[tokens.AccessToken]
	require.True(t, ok)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, constants.AccessTokenTTL)
}

func TestLogoutGarbageToken(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), newFakeCache())

	err := svc.Logout(context.Background(), "not-a-jwt")
	assert.Equal(t, errors.ErrInvalidTokenFormat, appErrCode(t, err))
}

func TestMe(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, newFakeCache())

	created, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	user, err := svc.Me(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "trainer@example.com", user.Email)
}

func TestMeUnknownUser(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), newFakeCache())

	_, err := svc.Me(context.Background(), uuid.New())
	assert.Equal(t, errors.ErrNotFound, appErrCode(t, err))
}
