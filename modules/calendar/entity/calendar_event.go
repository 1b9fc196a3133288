package entity

import (
	"time"

	"github.com/darkr4m/actually-star-k9/core/entity"
)

// CalendarEvent is a local mirror of a Google Calendar event. Rows are
// keyed by the Google event id so repeated syncs update in place.
type CalendarEvent struct {
	GoogleEventID    string    `db:"google_event_id" json:"google_event_id"`
	Title            string    `db:"title" json:"title"`
	Description      string    `db:"description" json:"description"`
	StartTime        time.Time `db:"start_time" json:"start_time"`
	EndTime          time.Time `db:"end_time" json:"end_time"`
	SyncedWithGoogle bool      `db:"synced_with_google" json:"synced_with_google"`
	entity.BaseEntity
}
