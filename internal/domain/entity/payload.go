package entity

import "time"

// Payload is the platform-neutral content of a status message
type Payload struct {
	Title       string
	Description string
	Color       int
	Image       *ImageRequest
	Fields      []Field
	Footer      string
	Timestamp   time.Time
	ButtonRows  [][]Button
}

type Field struct {
	Name   string
	Value  string
	Inline bool
}

type Button struct {
	ControlID string
	Label     string
	Emoji     string
	Primary   bool
	Disabled  bool
}

// ImageRequest asks the transport to attach the rendered map for an hour
type ImageRequest struct {
	Hour   int
	Locale string
}

// FindButton returns the button carrying controlID, if any
func (p *Payload) FindButton(controlID string) (Button, bool) {
	for _, row := range p.ButtonRows {
		for _, b := range row {
			if b.ControlID == controlID {
				return b, true
			}
		}
	}
	return Button{}, false
}

// HomeDisabled reports whether the message currently shows the Home view,
// which is the only state where the Home button is disabled.
func (p *Payload) HomeDisabled(homeControlID string) bool {
	b, ok := p.FindButton(homeControlID)
	return ok && b.Disabled
}

// Click is a button press on a published status message
type Click struct {
	ControlID     string
	MessageID     string
	UserID        string
	ChannelID     string
	DestinationID string
	Disabled      bool
}
