package dto

import "github.com/darkr4m/actually-star-k9/modules/calendar/entity"

// SyncEventsResponse reports the events stored by a sync run. Skipped counts
// events Google returned that could not be parsed and were left out.
type SyncEventsResponse struct {
	Events  []*entity.CalendarEvent `json:"events"`
	Skipped int                     `json:"skipped"`
}
