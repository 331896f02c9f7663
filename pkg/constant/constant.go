package constant

import "time"

const (
	// ResetTokenTTL is fixed, not configurable.
	ResetTokenTTL = 10 * time.Minute

	DefaultAccessExpiryMin  = 15
	DefaultRefreshExpiryMin = 10080
	DefaultMaxLoginAttempts = 5
)
