package domain

import "time"

// DefaultLocale is used when a destination has no locale preference configured
const DefaultLocale = "en"

// DefaultLockTTL is how long a status message stays owned by the last user who clicked it
const DefaultLockTTL = 15 * time.Second

// Forecast windows, in hours
const (
	HomeForecastHours       = 6
	DrilldownLookaheadHours = 24
)

// DefaultColor is the brand colour used when a condition has no mapped colour
const DefaultColor = 0x5865f2
