package entity

import "time"

// Destination is a Slack workspace that receives the rotation status message
type Destination struct {
	ID             string // Slack team ID
	ChannelID      string
	Name           string
	MobileFriendly bool
	Locale         string
	LastMessageID  string // Slack message ts, empty until first publish
	LastUpdatedAt  *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasMessage reports whether a status message was published before
func (d *Destination) HasMessage() bool {
	return d.LastMessageID != ""
}
