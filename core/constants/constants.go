package constants

import "time"

// Database pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Timeouts
const (
	DefaultTimeout        = 10 * time.Second
	GoogleAPITimeout      = 30 * time.Second
	ServerShutdownTimeout = 30 * time.Second
)

// JWT token scopes and lifetimes
const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"

	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// Google OAuth
const (
	OAuthStateLength = 32
	OAuthStateTTL    = 10 * time.Minute
)

// GoogleCalendarScopes are requested when linking a Google account.
var GoogleCalendarScopes = []string{
	"https://www.googleapis.com/auth/calendar.readonly",
	"https://www.googleapis.com/auth/calendar.events",
}

// Calendar sync
const (
	CalendarSyncMaxResults = 10
	CalendarPrimaryID      = "primary"
)

// Object storage
const (
	DogPhotoPrefix = "dog_photos/"
)
