// Package view implements the button driven navigation of a status message.
// Every transition is recomputed from scratch out of the rotation table, so
// the only input carried between clicks is the control identifier.
package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/map-rotation-bot/internal/domain"
	"github.com/diegoclair/map-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/map-rotation-bot/internal/domain/entity"
	"github.com/diegoclair/map-rotation-bot/internal/domain/rotation"
)

type Kind int

const (
	KindHome Kind = iota
	KindMajorFilter
	KindMinorFilter
	KindLocation
	KindEvent
)

// State is the derived view of a message. Location is set only for
// KindLocation and Event only for KindEvent.
type State struct {
	Kind     Kind
	Location rotation.Location
	Event    rotation.Condition
}

// Home is the state of every freshly published message
func Home() State {
	return State{Kind: KindHome}
}

// Transition computes the state reached by an action. The previous state never
// matters because every control names its destination fully.
func Transition(a Action) State {
	switch a := a.(type) {
	case SwitchMode:
		switch a.Mode {
		case ModeMajor:
			return State{Kind: KindMajorFilter}
		case ModeMinor:
			return State{Kind: KindMinorFilter}
		}
	case SelectLocation:
		return State{Kind: KindLocation, Location: a.Location}
	case SelectEvent:
		return State{Kind: KindEvent, Event: a.Event}
	}
	return Home()
}

type Options struct {
	MobileFriendly bool
	Now            time.Time
	Translator     contract.Translator
	// WithImage attaches a request for the rendered map of the current hour
	WithImage bool
}

const (
	homeEmoji  = ":house:"
	mapEmoji   = ":world_map:"
	majorEmoji = ":crossed_swords:"
	minorEmoji = ":mag:"
)

type renderer struct {
	opts    Options
	t       contract.Translator
	current rotation.Entry
	next    time.Time
}

// Render builds the payload for a state at opts.Now
func Render(s State, opts Options) *entity.Payload {
	r := renderer{
		opts:    opts,
		t:       opts.Translator,
		current: rotation.Current(opts.Now),
		next:    rotation.NextRotationAt(opts.Now),
	}

	p := &entity.Payload{
		Title:     r.t.T("map_rotation.title", nil),
		Color:     r.color(),
		Footer:    r.t.T("map_rotation.footer", nil),
		Timestamp: opts.Now,
	}
	if opts.WithImage {
		p.Image = &entity.ImageRequest{Hour: r.current.Hour, Locale: r.t.Locale()}
	}

	switch s.Kind {
	case KindLocation:
		r.locationBody(p, s.Location)
		p.ButtonRows = r.buttons(ModeMap, SelectLocation{Location: s.Location}.ControlID(), true)
	case KindEvent:
		r.eventBody(p, s.Event)
		mode := ModeMinor
		if s.Event.IsMajor() {
			mode = ModeMajor
		}
		p.ButtonRows = r.buttons(mode, SelectEvent{Event: s.Event}.ControlID(), true)
	case KindMajorFilter:
		r.homeBody(p)
		p.ButtonRows = r.buttons(ModeMajor, "", true)
	case KindMinorFilter:
		r.homeBody(p)
		p.ButtonRows = r.buttons(ModeMinor, "", true)
	default:
		r.homeBody(p)
		p.ButtonRows = r.buttons(ModeMap, "", false)
	}

	return p
}

func (r renderer) color() int {
	if c, ok := r.current.Slot(rotation.Dam).Major.Color(); ok {
		return c
	}
	return domain.DefaultColor
}

func (r renderer) homeBody(p *entity.Payload) {
	p.Description = fmt.Sprintf("*%s*\n%s",
		r.t.T("map_rotation.current_conditions", nil),
		r.nextRotationLine(),
	)

	for _, l := range rotation.Locations {
		p.Fields = append(p.Fields, entity.Field{
			Name:   l.Emoji() + " " + r.locationName(l),
			Value:  r.slotSummary(r.current.Slot(l)),
			Inline: !r.opts.MobileFriendly,
		})
	}

	header := r.t.T("map_rotation.forecast.header", map[string]string{"hours": fmt.Sprint(domain.HomeForecastHours)})

	var times, conditions, lines []string
	for i, e := range rotation.Forecast(r.current.Hour, domain.HomeForecastHours) {
		label := relativeTime(rotation.ForecastTime(r.opts.Now, i+1))

		var events []string
		for _, l := range rotation.Locations {
			if major := e.Slot(l).Major; major != rotation.None {
				events = append(events, r.shortLocationName(l)+": "+major.Emoji())
			}
		}
		text := r.t.T("map_rotation.forecast.no_major_events", nil)
		if len(events) > 0 {
			text = strings.Join(events, " | ")
		}

		times = append(times, label)
		conditions = append(conditions, text)
		lines = append(lines, fmt.Sprintf("*%s* • %s", label, text))
	}

	if r.opts.MobileFriendly {
		p.Fields = append(p.Fields, entity.Field{Name: header, Value: strings.Join(lines, "\n")})
		return
	}
	p.Fields = append(p.Fields,
		entity.Field{Name: header},
		entity.Field{Name: r.t.T("map_rotation.forecast.time_until", nil), Value: strings.Join(times, "\n"), Inline: true},
		entity.Field{Name: r.t.T("map_rotation.forecast.conditions", nil), Value: strings.Join(conditions, "\n"), Inline: true},
	)
}

func (r renderer) locationBody(p *entity.Payload, l rotation.Location) {
	title := l.Emoji() + " " + r.locationName(l)

	r.lookahead(p, title, r.t.T("map_rotation.forecast.conditions", nil), func(e rotation.Entry) string {
		s := e.Slot(l)
		var parts []string
		if s.Major != rotation.None {
			parts = append(parts, r.conditionLabel(s.Major))
		}
		if s.Minor != rotation.None {
			parts = append(parts, r.conditionLabel(s.Minor))
		}
		return strings.Join(parts, " ")
	})
}

func (r renderer) eventBody(p *entity.Payload, c rotation.Condition) {
	r.lookahead(p, r.conditionLabel(c), r.t.T("map_rotation.forecast.locations", nil), func(e rotation.Entry) string {
		var names []string
		for _, l := range rotation.Locations {
			if e.Slot(l).Has(c) {
				names = append(names, r.locationName(l))
			}
		}
		return strings.Join(names, ", ")
	})
}

// lookahead lists the next 24 hours for a drill-down, skipping hours where
// describe returns an empty string.
func (r renderer) lookahead(p *entity.Payload, subject, column string, describe func(rotation.Entry) string) {
	p.Description = fmt.Sprintf("*%s*\n%s",
		r.t.T("map_rotation.forecast.for", map[string]string{"name": subject}),
		r.nextRotationLine(),
	)

	var times, values, lines []string
	for i, e := range rotation.Forecast(r.current.Hour, domain.DrilldownLookaheadHours) {
		text := describe(e)
		if text == "" {
			continue
		}
		label := relativeTime(rotation.ForecastTime(r.opts.Now, i+1))
		times = append(times, label)
		values = append(values, text)
		lines = append(lines, fmt.Sprintf("*%s* • %s", label, text))
	}

	if len(lines) == 0 {
		p.Description += "\n\n" + r.t.T("map_rotation.forecast.no_events", map[string]string{"hours": fmt.Sprint(domain.DrilldownLookaheadHours)})
		return
	}

	if r.opts.MobileFriendly {
		p.Description += "\n\n" + strings.Join(lines, "\n")
		return
	}
	p.Fields = append(p.Fields,
		entity.Field{Name: r.t.T("map_rotation.forecast.time_until", nil), Value: strings.Join(times, "\n"), Inline: true},
		entity.Field{Name: column, Value: strings.Join(values, "\n"), Inline: true},
	)
}

// buttons builds the two rows for a mode. selected is the control id of the
// current drill-down, rendered disabled.
func (r renderer) buttons(mode Mode, selected string, homeEnabled bool) [][]entity.Button {
	var first []entity.Button
	switch mode {
	case ModeMajor, ModeMinor:
		conds := rotation.MajorConditions
		if mode == ModeMinor {
			conds = rotation.MinorConditions
		}
		for _, c := range conds {
			id := SelectEvent{Event: c}.ControlID()
			first = append(first, entity.Button{
				ControlID: id,
				Label:     r.conditionName(c),
				Emoji:     c.Emoji(),
				Disabled:  id == selected,
			})
		}
	default:
		for _, l := range rotation.Locations {
			id := SelectLocation{Location: l}.ControlID()
			first = append(first, entity.Button{
				ControlID: id,
				Label:     r.locationName(l),
				Emoji:     l.Emoji(),
				Disabled:  id == selected,
			})
		}
	}

	var second []entity.Button
	for _, m := range []Mode{ModeMap, ModeMajor, ModeMinor} {
		if m == mode {
			continue
		}
		second = append(second, r.modeButton(m))
	}
	second = append(second, entity.Button{
		ControlID: ControlHome,
		Label:     r.t.T("map_rotation.buttons.home", nil),
		Emoji:     homeEmoji,
		Disabled:  !homeEnabled,
	})

	return [][]entity.Button{first, second}
}

func (r renderer) modeButton(m Mode) entity.Button {
	b := entity.Button{ControlID: SwitchMode{Mode: m}.ControlID(), Primary: true}
	switch m {
	case ModeMajor:
		b.Label, b.Emoji = r.t.T("map_rotation.buttons.show_major", nil), majorEmoji
	case ModeMinor:
		b.Label, b.Emoji = r.t.T("map_rotation.buttons.show_minor", nil), minorEmoji
	default:
		b.Label, b.Emoji = r.t.T("map_rotation.buttons.show_map", nil), mapEmoji
	}
	return b
}

// slotSummary shows the major condition weighted 2x above the minor one
func (r renderer) slotSummary(s rotation.Slot) string {
	var parts []string
	if s.Major != rotation.None {
		parts = append(parts, r.t.T("map_rotation.major_weight", map[string]string{
			"condition": r.conditionLabel(s.Major),
		}))
	}
	if s.Minor != rotation.None {
		parts = append(parts, r.conditionLabel(s.Minor))
	}
	if len(parts) == 0 {
		return r.conditionName(rotation.None)
	}
	return strings.Join(parts, "\n")
}

func (r renderer) conditionLabel(c rotation.Condition) string {
	return c.Emoji() + " " + r.conditionName(c)
}

func (r renderer) conditionName(c rotation.Condition) string {
	return r.t.T("map_rotation.events."+c.TranslationKey(), nil)
}

func (r renderer) locationName(l rotation.Location) string {
	return r.t.T("map_rotation.locations."+l.TranslationKey(), nil)
}

func (r renderer) shortLocationName(l rotation.Location) string {
	return r.t.T("map_rotation.short_locations."+l.TranslationKey(), nil)
}

func (r renderer) nextRotationLine() string {
	return r.t.T("map_rotation.next_rotation", map[string]string{"time": relativeTime(r.next)})
}

// relativeTime renders as "in 23 minutes" in the reader's client, with the UTC
// clock time as fallback text.
func relativeTime(t time.Time) string {
	return fmt.Sprintf("<!date^%d^{ago}|%s>", t.Unix(), t.UTC().Format("15:04 UTC"))
}
