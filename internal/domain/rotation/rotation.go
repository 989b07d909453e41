// Package rotation holds the fixed hourly map rotation schedule and the lookup
// and formatting helpers built on top of it.
package rotation

import (
	"strings"
	"time"
)

const (
	hoursPerDay  = 24
	numLocations = 5
)

// Condition is an in-game event code. The set is closed.
type Condition string

const (
	None Condition = "None"

	Harvester Condition = "Harvester"
	Night     Condition = "Night"
	Storm     Condition = "Storm"
	Tower     Condition = "Tower"
	Bunker    Condition = "Bunker"
	Matriarch Condition = "Matriarch"

	Husks  Condition = "Husks"
	Blooms Condition = "Blooms"
	Caches Condition = "Caches"
	Probes Condition = "Probes"
)

// MajorConditions lists the major tier in button order
var MajorConditions = []Condition{Harvester, Night, Storm, Tower, Bunker, Matriarch}

// MinorConditions lists the minor tier in button order
var MinorConditions = []Condition{Husks, Blooms, Caches, Probes}

var conditionEmojis = map[Condition]string{
	Harvester: ":harvester:",
	Night:     ":nightraid:",
	Husks:     ":husks:",
	Blooms:    ":lush:",
	Storm:     ":electro:",
	Caches:    ":cache:",
	Probes:    ":probe:",
	Tower:     ":spacetower_loot:",
	Bunker:    ":bunker:",
	Matriarch: ":matriarch:",
	None:      " ",
}

var conditionColors = map[Condition]int{
	Harvester: 0xd80c1a,
	Night:     0xd80c1a,
	Husks:     0xeed722,
	Blooms:    0xeed722,
	Storm:     0xd80c1a,
	Caches:    0xeed722,
	Probes:    0xeed722,
	Tower:     0xd80c1a,
	Bunker:    0xd80c1a,
	Matriarch: 0xd80c1a,
	None:      0x40fd86,
}

// UnknownEmoji is shown for a condition without a configured emoji
const UnknownEmoji = ":question:"

// ParseCondition returns the condition named by code
func ParseCondition(code string) (Condition, bool) {
	c := Condition(code)
	if c == None {
		return c, true
	}
	return c, c.IsMajor() || c.IsMinor()
}

func (c Condition) IsMajor() bool {
	for _, m := range MajorConditions {
		if m == c {
			return true
		}
	}
	return false
}

func (c Condition) IsMinor() bool {
	for _, m := range MinorConditions {
		if m == c {
			return true
		}
	}
	return false
}

// Emoji returns the chat emoji for the condition, or UnknownEmoji
func (c Condition) Emoji() string {
	if e, ok := conditionEmojis[c]; ok {
		return e
	}
	return UnknownEmoji
}

// Color returns the RGB colour mapped to the condition
func (c Condition) Color() (int, bool) {
	color, ok := conditionColors[c]
	return color, ok
}

// TranslationKey is the suffix of the condition's "map_rotation.events.*" key
func (c Condition) TranslationKey() string {
	return strings.ToLower(string(c))
}

// Location is one of the five tracked maps.
type Location int

const (
	Dam Location = iota
	BuriedCity
	Spaceport
	BlueGate
	StellaMontis
)

// Locations lists every location in display order
var Locations = []Location{Dam, BuriedCity, Spaceport, BlueGate, StellaMontis}

var locationMeta = [numLocations]struct {
	id, key, emoji string
}{
	Dam:          {"dam", "dam", ":snow_capped_mountain:"},
	BuriedCity:   {"buriedCity", "buried_city", ":classical_building:"},
	Spaceport:    {"spaceport", "spaceport", ":rocket:"},
	BlueGate:     {"blueGate", "blue_gate", ":bridge_at_night:"},
	StellaMontis: {"stellaMontis", "stella_montis", ":snow_capped_mountain:"},
}

// ID is the token used in control identifiers
func (l Location) ID() string { return locationMeta[l].id }

// TranslationKey is the suffix of the location's "map_rotation.locations.*" key
func (l Location) TranslationKey() string { return locationMeta[l].key }

func (l Location) Emoji() string { return locationMeta[l].emoji }

func (l Location) String() string { return l.ID() }

// ParseLocation resolves a control identifier token
func ParseLocation(id string) (Location, bool) {
	for _, l := range Locations {
		if locationMeta[l].id == id {
			return l, true
		}
	}
	return 0, false
}

// Slot is the pair of conditions active at a location for one hour
type Slot struct {
	Major Condition
	Minor Condition
}

// HasEvent reports whether either tier carries a real event
func (s Slot) HasEvent() bool {
	return s.Major != None || s.Minor != None
}

// Has reports whether c occurs in either tier
func (s Slot) Has(c Condition) bool {
	return s.Major == c || s.Minor == c
}

// Entry is one hour's condition assignment across all locations
type Entry struct {
	Hour  int
	slots [numLocations]Slot
}

func (e Entry) Slot(l Location) Slot {
	return e.slots[l]
}

// Lookup returns the entry for the given hour of day. Any int is accepted and
// reduced modulo 24.
func Lookup(hour int) Entry {
	return table[normalizeHour(hour)]
}

// Current returns the entry active at now
func Current(now time.Time) Entry {
	return Lookup(now.UTC().Hour())
}

// Next returns the entry that becomes active at the next hour boundary
func Next(now time.Time) Entry {
	return Lookup(now.UTC().Hour() + 1)
}

// Forecast returns the n entries following hour, in chronological order
func Forecast(hour, n int) []Entry {
	entries := make([]Entry, 0, n)
	for i := 1; i <= n; i++ {
		entries = append(entries, Lookup(hour+i))
	}
	return entries
}

// NextRotationAt returns the start of the next UTC hour
func NextRotationAt(now time.Time) time.Time {
	return now.UTC().Truncate(time.Hour).Add(time.Hour)
}

// ForecastTime returns the start of the i-th forecast row (1-based)
func ForecastTime(now time.Time, i int) time.Time {
	return NextRotationAt(now).Add(time.Duration(i-1) * time.Hour)
}

func normalizeHour(hour int) int {
	h := hour % hoursPerDay
	if h < 0 {
		h += hoursPerDay
	}
	return h
}
