package service

import (
	"context"
	"fmt"
	"time"

	"github.com/darkr4m/actually-star-k9/core/constants"
	"github.com/darkr4m/actually-star-k9/core/errors"
	"github.com/darkr4m/actually-star-k9/core/logger"
	"github.com/darkr4m/actually-star-k9/modules/calendar/dto"
	"github.com/darkr4m/actually-star-k9/modules/calendar/entity"
	"github.com/darkr4m/actually-star-k9/modules/calendar/repository"
	googleauthentity "github.com/darkr4m/actually-star-k9/modules/googleauth/entity"
	googleauthrepo "github.com/darkr4m/actually-star-k9/modules/googleauth/repository"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

type CalendarService interface {
	SyncEvents(ctx context.Context, userID uuid.UUID) (*dto.SyncEventsResponse, error)
	ListEvents(ctx context.Context) ([]*entity.CalendarEvent, error)
}

type calendarService struct {
	repo     repository.CalendarRepository
	credRepo googleauthrepo.GoogleAuthRepository

	// timeout bounds each outbound call to Google.
	timeout time.Duration

	// extraOpts lets tests point the Google client at a local server.
	extraOpts []option.ClientOption
}

func NewCalendarService(repo repository.CalendarRepository, credRepo googleauthrepo.GoogleAuthRepository) CalendarService {
	return &calendarService{
		repo:     repo,
		credRepo: credRepo,
		timeout:  constants.GoogleAPITimeout,
	}
}

// SyncEvents pulls the user's next upcoming events from Google Calendar and
// mirrors them locally. The access token is refreshed and persisted before
// any fetch, so a crash mid-sync never loses a rotated token.
func (s *calendarService) SyncEvents(ctx context.Context, userID uuid.UUID) (*dto.SyncEventsResponse, error) {
	cred, err := s.credRepo.GetCredentialsByUserID(ctx, userID)
	if err != nil {
		logger.Error("CalendarService:SyncEvents:LoadCredentials", "error", err, "userId", userID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load google credentials", err)
	}
	if cred == nil {
		return nil, errors.NewAppError(errors.ErrNotConnected, "google account is not linked", nil)
	}

	// Without a refresh token the stale access token is still sent; the
	// provider rejecting it surfaces as a fetch failure.
	accessToken := cred.AccessToken
	if cred.Expired() && cred.RefreshToken != "" {
		accessToken, err = s.refreshAccessToken(ctx, cred)
		if err != nil {
			return nil, err
		}
	}

	items, err := s.fetchUpcomingEvents(ctx, accessToken)
	if err != nil {
		logger.Error("CalendarService:SyncEvents:Fetch", "error", err, "userId", userID)
		return nil, errors.NewAppError(errors.ErrFetchFailed, "failed to fetch calendar events", err)
	}

	events := make([]*entity.CalendarEvent, 0, len(items))
	skipped := 0
	for _, item := range items {
		event, err := eventFromGoogle(item)
		if err != nil {
			skipped++
			logger.Warn("CalendarService:SyncEvents:SkipEvent", "eventId", item.Id, "error", err)
			continue
		}
		saved, err := s.repo.UpsertEvent(ctx, event)
		if err != nil {
			logger.Error("CalendarService:SyncEvents:Store", "error", err, "eventId", item.Id)
			return nil, errors.NewAppError(errors.ErrStorageFailure, "failed to store calendar event", err)
		}
		events = append(events, saved)
	}

	logger.Info("CalendarService:SyncEvents:Success", "userId", userID, "synced", len(events), "skipped", skipped)
	return &dto.SyncEventsResponse{Events: events, Skipped: skipped}, nil
}

// ListEvents returns the stored mirror rows without contacting Google.
func (s *calendarService) ListEvents(ctx context.Context) ([]*entity.CalendarEvent, error) {
	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		logger.Error("CalendarService:ListEvents:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list calendar events", err)
	}
	return events, nil
}

// refreshAccessToken rotates an expired access token against the stored
// token endpoint. Only the access token and expiry are written back.
func (s *calendarService) refreshAccessToken(ctx context.Context, cred *googleauthentity.GoogleCredential) (string, error) {
	conf := &oauth2.Config{
		ClientID:     cred.ClientID,
		ClientSecret: cred.ClientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: cred.TokenURI},
	}
	refreshCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tok, err := conf.TokenSource(refreshCtx, &oauth2.Token{RefreshToken: cred.RefreshToken}).Token()
	if err != nil {
		logger.Error("CalendarService:RefreshAccessToken:Error", "error", err, "userId", cred.UserID)
		return "", errors.NewAppError(errors.ErrExchangeFailed, "failed to refresh access token", err)
	}

	if err := s.credRepo.UpdateAccessToken(ctx, cred.UserID, tok.AccessToken, tok.Expiry); err != nil {
		logger.Error("CalendarService:RefreshAccessToken:Persist", "error", err, "userId", cred.UserID)
		return "", errors.NewAppError(errors.ErrStorageFailure, "failed to persist refreshed token", err)
	}

	logger.Info("CalendarService:RefreshAccessToken:Success", "userId", cred.UserID)
	return tok.AccessToken, nil
}

func (s *calendarService) fetchUpcomingEvents(ctx context.Context, accessToken string) ([]*calendar.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := append([]option.ClientOption{
		option.WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})),
	}, s.extraOpts...)

	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}

	res, err := svc.Events.List(constants.CalendarPrimaryID).
		TimeMin(time.Now().UTC().Format(time.RFC3339)).
		MaxResults(constants.CalendarSyncMaxResults).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	return res.Items, nil
}

// eventFromGoogle maps a Google event to the local mirror. Timed events
// carry RFC 3339 datetimes; all-day events carry a bare date, which maps to
// midnight UTC.
func eventFromGoogle(item *calendar.Event) (*entity.CalendarEvent, error) {
	if item.Id == "" {
		return nil, fmt.Errorf("event has no id")
	}

	start, err := parseEventTime(item.Start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	end, err := parseEventTime(item.End)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	title := item.Summary
	if title == "" {
		title = "No title"
	}

	return &entity.CalendarEvent{
		GoogleEventID: item.Id,
		Title:         title,
		Description:   item.Description,
		StartTime:     start,
		EndTime:       end,
	}, nil
}

func parseEventTime(edt *calendar.EventDateTime) (time.Time, error) {
	if edt == nil {
		return time.Time{}, fmt.Errorf("missing time")
	}
	if edt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, edt.DateTime)
		if err != nil {
			return time.Time{}, err
		}
		return t.UTC(), nil
	}
	if edt.Date != "" {
		t, err := time.Parse("2006-01-02", edt.Date)
		if err != nil {
			return time.Time{}, err
		}
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("missing time")
}
