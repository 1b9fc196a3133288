package repository

import (
	"context"

	"github.com/darkr4m/actually-star-k9/core/database"
	"github.com/darkr4m/actually-star-k9/modules/calendar/entity"
)

type CalendarRepository interface {
	UpsertEvent(ctx context.Context, event *entity.CalendarEvent) (*entity.CalendarEvent, error)
	ListEvents(ctx context.Context) ([]*entity.CalendarEvent, error)
}

type calendarRepository struct {
	db database.IDatabase
}

func NewCalendarRepository(db database.IDatabase) CalendarRepository {
	return &calendarRepository{db: db}
}

// UpsertEvent inserts or refreshes the local mirror row for a Google event.
func (r *calendarRepository) UpsertEvent(ctx context.Context, event *entity.CalendarEvent) (*entity.CalendarEvent, error) {
	query := `
		INSERT INTO calendar_events
			(google_event_id, title, description, start_time, end_time, synced_with_google)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		ON CONFLICT (google_event_id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			synced_with_google = TRUE,
			updated_at = NOW()
		RETURNING id, google_event_id, title, description, start_time, end_time,
		          synced_with_google, created_at, updated_at`

	var saved entity.CalendarEvent
	err := r.db.QueryRowContext(ctx, query,
		event.GoogleEventID, event.Title, event.Description, event.StartTime, event.EndTime,
	).Scan(
		&saved.ID, &saved.GoogleEventID, &saved.Title, &saved.Description,
		&saved.StartTime, &saved.EndTime, &saved.SyncedWithGoogle,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *calendarRepository) ListEvents(ctx context.Context) ([]*entity.CalendarEvent, error) {
	query := `
		SELECT id, google_event_id, title, description, start_time, end_time,
		       synced_with_google, created_at, updated_at
		FROM calendar_events
		ORDER BY start_time ASC`

	events := []*entity.CalendarEvent{}
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, err
	}
	return events, nil
}
