package domain

import "time"

// FeatureFlag is a named boolean toggle. Flags are always created
// disabled. Name uniqueness is not enforced by this service.
type FeatureFlag struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
	CreatedAt   time.Time
}
