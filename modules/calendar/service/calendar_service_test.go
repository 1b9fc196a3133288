package service

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/darkr4m/actually-star-k9/core/errors"
	"github.com/darkr4m/actually-star-k9/modules/calendar/entity"
	googleauthentity "github.com/darkr4m/actually-star-k9/modules/googleauth/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

type fakeCredRepo struct {
	cred         *googleauthentity.GoogleCredential
	getErr       error
	updateErr    error
	updateCalls  int
	lastToken    string
	lastExpires  time.Time
	updatedAtSeq int
	seq          *int
}

func (f *fakeCredRepo) SaveOAuthState(context.Context, *googleauthentity.OAuthState) error {
	return nil
}

func (f *fakeCredRepo) GetOAuthState(context.Context, string) (*googleauthentity.OAuthState, error) {
	return nil, nil
}

func (f *fakeCredRepo) DeleteOAuthState(context.Context, string) error { return nil }

func (f *fakeCredRepo) CleanupExpiredOAuthStates(context.Context) error { return nil }

func (f *fakeCredRepo) GetCredentialsByUserID(context.Context, uuid.UUID) (*googleauthentity.GoogleCredential, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.cred, nil
}

func (f *fakeCredRepo) UpsertCredentials(context.Context, *googleauthentity.GoogleCredential) (bool, error) {
	return false, nil
}

func (f *fakeCredRepo) UpdateAccessToken(_ context.Context, _ uuid.UUID, accessToken string, expiresAt time.Time) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updateCalls++
	f.lastToken = accessToken
	f.lastExpires = expiresAt
	if f.seq != nil {
		*f.seq++
		f.updatedAtSeq = *f.seq
	}
	return nil
}

type fakeCalendarRepo struct {
	events    map[string]*entity.CalendarEvent
	upsertErr error
}

func newFakeCalendarRepo() *fakeCalendarRepo {
	return &fakeCalendarRepo{events: make(map[string]*entity.CalendarEvent)}
}

func (f *fakeCalendarRepo) UpsertEvent(_ context.Context, event *entity.CalendarEvent) (*entity.CalendarEvent, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	stored := *event
	stored.SyncedWithGoogle = true
	f.events[event.GoogleEventID] = &stored
	return &stored, nil
}

func (f *fakeCalendarRepo) ListEvents(context.Context) ([]*entity.CalendarEvent, error) {
	out := make([]*entity.CalendarEvent, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e)
	}
	return out, nil
}

func appErrCode(t *testing.T, err error) errors.ErrorCode {
	t.Helper()
	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.Code
}

func validCredential(userID uuid.UUID) *googleauthentity.GoogleCredential {
	return &googleauthentity.GoogleCredential{
		UserID:       userID,
		AccessToken:  "ya29.valid",
		RefreshToken: "1//refresh",
		ExpiresAt:    time.Now().Add(time.Hour),
		TokenURI:     "http://127.0.0.1:1/token",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
	}
}

func TestParseEventTime(t *testing.T) {
	tests := []struct {
		name    string
		in      *calendar.EventDateTime
		want    time.Time
		wantErr bool
	}{
		{
			name: "rfc3339 utc",
			in:   &calendar.EventDateTime{DateTime: "2026-03-15T09:30:00Z"},
			want: time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC),
		},
		{
			name: "rfc3339 offset normalized to utc",
			in:   &calendar.EventDateTime{DateTime: "2026-03-15T09:30:00-05:00"},
			want: time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC),
		},
		{
			name: "all day event maps to midnight utc",
			in:   &calendar.EventDateTime{Date: "2026-03-15"},
			want: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{name: "nil", in: nil, wantErr: true},
		{name: "empty", in: &calendar.EventDateTime{}, wantErr: true},
		{name: "garbage datetime", in: &calendar.EventDateTime{DateTime: "next tuesday"}, wantErr: true},
		{name: "garbage date", in: &calendar.EventDateTime{Date: "15/03/2026"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEventTime(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestEventFromGoogleTitleFallback(t *testing.T) {
	event, err := eventFromGoogle(&calendar.Event{
		Id:    "evt-1",
		Start: &calendar.EventDateTime{DateTime: "2026-03-15T09:30:00Z"},
		End:   &calendar.EventDateTime{DateTime: "2026-03-15T10:30:00Z"},
	})
	require.NoError(t, err)
	assert.Equal(t, "No title", event.Title)
}

func TestSyncEventsNotConnected(t *testing.T) {
	svc := NewCalendarService(newFakeCalendarRepo(), &fakeCredRepo{cred: nil})

	_, err := svc.SyncEvents(context.Background(), uuid.New())
	assert.Equal(t, errors.ErrNotConnected, appErrCode(t, err))
}

func TestSyncEventsExpiredWithoutRefreshTokenProceedsStale(t *testing.T) {
	apiSrv := newCalendarAPIServer(t, `{"items": []}`)
	defer apiSrv.Close()

	userID := uuid.New()
	cred := validCredential(userID)
	cred.ExpiresAt = time.Now().Add(-time.Hour)
	cred.RefreshToken = ""
	credRepo := &fakeCredRepo{cred: cred}

	svc := syncServiceFor(newFakeCalendarRepo(), credRepo, apiSrv.URL)

	// No refresh attempt is made; the stale token is sent as is.
	_, err := svc.SyncEvents(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 0, credRepo.updateCalls)
}

func newCalendarAPIServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func syncServiceFor(repo *fakeCalendarRepo, credRepo *fakeCredRepo, apiURL string) CalendarService {
	svc := NewCalendarService(repo, credRepo).(*calendarService)
	svc.extraOpts = []option.ClientOption{option.WithEndpoint(apiURL)}
	return svc
}

func TestSyncEventsSuccess(t *testing.T) {
	apiSrv := newCalendarAPIServer(t, `{
		"items": [
			{
				"id": "evt-1",
				"summary": "Puppy foundations",
				"description": "Week 2",
				"start": {"dateTime": "2026-03-15T09:30:00Z"},
				"end": {"dateTime": "2026-03-15T10:30:00Z"}
			},
			{
				"id": "evt-2",
				"start": {"date": "2026-03-20"},
				"end": {"date": "2026-03-21"}
			}
		]
	}`)
	defer apiSrv.Close()

	userID := uuid.New()
	repo := newFakeCalendarRepo()
	credRepo := &fakeCredRepo{cred: validCredential(userID)}
	svc := syncServiceFor(repo, credRepo, apiSrv.URL)

	result, err := svc.SyncEvents(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Skipped)
	require.Len(t, result.Events, 2)
	assert.Equal(t, "Puppy foundations", result.Events[0].Title)
	assert.Equal(t, "No title", result.Events[1].Title)
	assert.True(t, result.Events[0].SyncedWithGoogle)
	assert.Equal(t, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), result.Events[1].StartTime)

	// A valid token must not trigger a refresh.
	assert.Equal(t, 0, credRepo.updateCalls)
}

func TestSyncEventsSkipsMalformed(t *testing.T) {
	apiSrv := newCalendarAPIServer(t, `{
		"items": [
			{
				"id": "evt-ok",
				"summary": "Reactivity session",
				"start": {"dateTime": "2026-03-15T09:30:00Z"},
				"end": {"dateTime": "2026-03-15T10:30:00Z"}
			},
			{
				"id": "evt-bad",
				"summary": "Broken",
				"start": {"dateTime": "not-a-time"},
				"end": {"dateTime": "2026-03-15T10:30:00Z"}
			},
			{
				"id": "evt-no-end",
				"summary": "Also broken",
				"start": {"dateTime": "2026-03-15T09:30:00Z"}
			}
		]
	}`)
	defer apiSrv.Close()

	userID := uuid.New()
	repo := newFakeCalendarRepo()
	svc := syncServiceFor(repo, &fakeCredRepo{cred: validCredential(userID)}, apiSrv.URL)

	result, err := svc.SyncEvents(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Skipped)
	require.Len(t, result.Events, 1)
	assert.Equal(t, "evt-ok", result.Events[0].GoogleEventID)
}

func TestSyncEventsRefreshesExpiredToken(t *testing.T) {
	seq := 0
	fetchedAtSeq := 0

	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
		assert.Equal(t, "1//refresh", r.Form.Get("refresh_token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "ya29.fresh", "token_type": "Bearer", "expires_in": 3600}`))
	}))
	defer tokenSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seq++
		fetchedAtSeq = seq
		assert.Equal(t, "Bearer ya29.fresh", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer apiSrv.Close()

	userID := uuid.New()
	cred := validCredential(userID)
	cred.ExpiresAt = time.Now().Add(-time.Minute)
	cred.TokenURI = tokenSrv.URL
	credRepo := &fakeCredRepo{cred: cred, seq: &seq}

	svc := syncServiceFor(newFakeCalendarRepo(), credRepo, apiSrv.URL)

	result, err := svc.SyncEvents(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, result.Events)

	require.Equal(t, 1, credRepo.updateCalls)
	assert.Equal(t, "ya29.fresh", credRepo.lastToken)
	assert.True(t, credRepo.lastExpires.After(time.Now()))

	// The rotated token is persisted before the calendar fetch runs.
	assert.Less(t, credRepo.updatedAtSeq, fetchedAtSeq)
}

func TestSyncEventsRefreshBoundedByTimeout(t *testing.T) {
	release := make(chan struct{})
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		tokenSrv.Close()
	}()

	userID := uuid.New()
	cred := validCredential(userID)
	cred.ExpiresAt = time.Now().Add(-time.Minute)
	cred.TokenURI = tokenSrv.URL

	svc := NewCalendarService(newFakeCalendarRepo(), &fakeCredRepo{cred: cred}).(*calendarService)
	svc.timeout = 100 * time.Millisecond

	start := time.Now()
	_, err := svc.SyncEvents(context.Background(), userID)
	assert.Equal(t, errors.ErrExchangeFailed, appErrCode(t, err))
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestSyncEventsFetchBoundedByTimeout(t *testing.T) {
	release := make(chan struct{})
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		apiSrv.Close()
	}()

	userID := uuid.New()
	svc := syncServiceFor(newFakeCalendarRepo(), &fakeCredRepo{cred: validCredential(userID)}, apiSrv.URL).(*calendarService)
	svc.timeout = 100 * time.Millisecond

	start := time.Now()
	_, err := svc.SyncEvents(context.Background(), userID)
	assert.Equal(t, errors.ErrFetchFailed, appErrCode(t, err))
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestListEventsReturnsStoredWithoutFetching(t *testing.T) {
	repo := newFakeCalendarRepo()
	repo.events["evt-1"] = &entity.CalendarEvent{GoogleEventID: "evt-1", Title: "Stored session"}

	// No linked credential; a fetch attempt would fail.
	svc := NewCalendarService(repo, &fakeCredRepo{cred: nil})

	events, err := svc.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Stored session", events[0].Title)
}

func TestSyncEventsRefreshFailure(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "invalid_grant"}`))
	}))
	defer tokenSrv.Close()

	userID := uuid.New()
	cred := validCredential(userID)
	cred.ExpiresAt = time.Now().Add(-time.Minute)
	cred.TokenURI = tokenSrv.URL

	svc := NewCalendarService(newFakeCalendarRepo(), &fakeCredRepo{cred: cred})

	_, err := svc.SyncEvents(context.Background(), userID)
	assert.Equal(t, errors.ErrExchangeFailed, appErrCode(t, err))
}

func TestSyncEventsRefreshPersistFailure(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "ya29.fresh", "token_type": "Bearer", "expires_in": 3600}`))
	}))
	defer tokenSrv.Close()

	userID := uuid.New()
	cred := validCredential(userID)
	cred.ExpiresAt = time.Now().Add(-time.Minute)
	cred.TokenURI = tokenSrv.URL

	svc := NewCalendarService(newFakeCalendarRepo(), &fakeCredRepo{cred: cred, updateErr: stderrors.New("db down")})

	_, err := svc.SyncEvents(context.Background(), userID)
	assert.Equal(t, errors.ErrStorageFailure, appErrCode(t, err))
}

func TestSyncEventsStoreFailure(t *testing.T) {
	apiSrv := newCalendarAPIServer(t, `{
		"items": [
			{
				"id": "evt-1",
				"summary": "Session",
				"start": {"dateTime": "2026-03-15T09:30:00Z"},
				"end": {"dateTime": "2026-03-15T10:30:00Z"}
			}
		]
	}`)
	defer apiSrv.Close()

	userID := uuid.New()
	repo := newFakeCalendarRepo()
	repo.upsertErr = stderrors.New("db down")
	svc := syncServiceFor(repo, &fakeCredRepo{cred: validCredential(userID)}, apiSrv.URL)

	_, err := svc.SyncEvents(context.Background(), userID)
	assert.Equal(t, errors.ErrStorageFailure, appErrCode(t, err))
}

func TestSyncEventsRepeatedRunUpdatesInPlace(t *testing.T) {
	apiSrv := newCalendarAPIServer(t, `{
		"items": [
			{
				"id": "evt-1",
				"summary": "Session",
				"start": {"dateTime": "2026-03-15T09:30:00Z"},
				"end": {"dateTime": "2026-03-15T10:30:00Z"}
			}
		]
	}`)
	defer apiSrv.Close()

	userID := uuid.New()
	repo := newFakeCalendarRepo()
	svc := syncServiceFor(repo, &fakeCredRepo{cred: validCredential(userID)}, apiSrv.URL)

	for i := 0; i < 2; i++ {
		_, err := svc.SyncEvents(context.Background(), userID)
		require.NoError(t, err)
	}
	assert.Len(t, repo.events, 1)
}
