package view

import (
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/map-rotation-bot/internal/domain/entity"
	"github.com/diegoclair/map-rotation-bot/internal/domain/rotation"
	"github.com/diegoclair/map-rotation-bot/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hourTwo = time.Date(2025, 3, 10, 2, 41, 7, 0, time.UTC)

func testOptions(t *testing.T, now time.Time, mobile bool) Options {
	t.Helper()
	b, err := i18n.New("en")
	require.NoError(t, err)
	return Options{MobileFriendly: mobile, Now: now, Translator: b.For("en")}
}

func TestParseControl(t *testing.T) {
	tests := []struct {
		id      string
		want    Action
		wantErr bool
	}{
		{id: "view_overview", want: GoHome{}},
		{id: "view_mode_map", want: SwitchMode{Mode: ModeMap}},
		{id: "view_mode_major", want: SwitchMode{Mode: ModeMajor}},
		{id: "view_mode_minor", want: SwitchMode{Mode: ModeMinor}},
		{id: "view_map_dam", want: SelectLocation{Location: rotation.Dam}},
		{id: "view_map_stellaMontis", want: SelectLocation{Location: rotation.StellaMontis}},
		{id: "view_event_Night", want: SelectEvent{Event: rotation.Night}},
		{id: "view_event_Probes", want: SelectEvent{Event: rotation.Probes}},
		{id: "view_event_None", wantErr: true},
		{id: "view_event_Sandstorm", wantErr: true},
		{id: "view_map_moon", wantErr: true},
		{id: "view_mode_grid", wantErr: true},
		{id: "", wantErr: true},
		{id: "something_else", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := ParseControl(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownControl)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.id, got.ControlID(), "control ids must round trip")
		})
	}
}

func TestTransition(t *testing.T) {
	assert.Equal(t, Home(), Transition(GoHome{}))
	assert.Equal(t, Home(), Transition(SwitchMode{Mode: ModeMap}))
	assert.Equal(t, State{Kind: KindMajorFilter}, Transition(SwitchMode{Mode: ModeMajor}))
	assert.Equal(t, State{Kind: KindMinorFilter}, Transition(SwitchMode{Mode: ModeMinor}))
	assert.Equal(t, State{Kind: KindLocation, Location: rotation.BlueGate}, Transition(SelectLocation{Location: rotation.BlueGate}))
	assert.Equal(t, State{Kind: KindEvent, Event: rotation.Caches}, Transition(SelectEvent{Event: rotation.Caches}))
}

func TestRender_HomeAtHourTwo(t *testing.T) {
	opts := testOptions(t, hourTwo, false)
	opts.WithImage = true

	p := Render(Home(), opts)

	assert.Equal(t, "Arc Raiders - Map Rotation Status", p.Title)
	assert.Equal(t, 0xd80c1a, p.Color, "color follows the Dam major condition")
	assert.Equal(t, &entity.ImageRequest{Hour: 2, Locale: "en"}, p.Image)
	assert.Equal(t, hourTwo, p.Timestamp)

	nextRotation := time.Date(2025, 3, 10, 3, 0, 0, 0, time.UTC)
	assert.Contains(t, p.Description, relativeTime(nextRotation))
	assert.Contains(t, p.Description, "|03:00 UTC>")

	require.Len(t, p.Fields, 8)
	dam := p.Fields[0]
	assert.Equal(t, ":snow_capped_mountain: Dam", dam.Name)
	assert.Equal(t, ":nightraid: Night (2x)", dam.Value)
	assert.True(t, dam.Inline)

	assert.Equal(t, ":cache: Caches", p.Fields[1].Value)
	assert.Equal(t, "None", p.Fields[2].Value)
	assert.Equal(t, ":husks: Husks", p.Fields[3].Value)
	assert.Equal(t, ":nightraid: Night (2x)", p.Fields[4].Value)

	assert.Equal(t, ":crystal_ball: FORECAST (Next 6 Hours)", p.Fields[5].Name)
	assert.Equal(t, "Time Until", p.Fields[6].Name)
	assert.Equal(t, "Conditions", p.Fields[7].Name)

	times := strings.Split(p.Fields[6].Value, "\n")
	require.Len(t, times, 6)
	assert.Equal(t, relativeTime(nextRotation), times[0], "first forecast row starts at the next hour")
	assert.Equal(t, relativeTime(nextRotation.Add(5*time.Hour)), times[5])
	assert.Len(t, strings.Split(p.Fields[7].Value, "\n"), 6)

	require.Len(t, p.ButtonRows, 2)
	require.Len(t, p.ButtonRows[0], 5)
	assert.Equal(t, "view_map_dam", p.ButtonRows[0][0].ControlID)
	assert.Equal(t, []string{"view_mode_major", "view_mode_minor", "view_overview"}, controlIDs(p.ButtonRows[1]))
	assert.True(t, p.HomeDisabled(ControlHome))
}

func TestRender_HomeForecastOnlyMajorEvents(t *testing.T) {
	opts := testOptions(t, hourTwo, true)
	p := Render(Home(), opts)

	require.Len(t, p.Fields, 6)
	for _, f := range p.Fields[:5] {
		assert.False(t, f.Inline)
	}

	lines := strings.Split(p.Fields[5].Value, "\n")
	require.Len(t, lines, 6)
	for i, e := range rotation.Forecast(2, 6) {
		hasMajor := false
		for _, l := range rotation.Locations {
			major := e.Slot(l).Major
			if major != rotation.None {
				hasMajor = true
				assert.Contains(t, lines[i], major.Emoji())
			}
			if minor := e.Slot(l).Minor; minor != rotation.None && !hasMajorAnywhere(e, minor) {
				assert.NotContains(t, lines[i], minor.Emoji())
			}
		}
		if !hasMajor {
			assert.Contains(t, lines[i], "No Major Events")
		}
		assert.True(t, strings.HasPrefix(lines[i], "*"+relativeTime(rotation.ForecastTime(hourTwo, i+1))+"* • "))
	}
}

func TestRender_LocationForecast(t *testing.T) {
	for _, mobile := range []bool{false, true} {
		opts := testOptions(t, hourTwo, mobile)
		p := Render(Transition(SelectLocation{Location: rotation.Dam}), opts)

		var want []string
		for i, e := range rotation.Forecast(2, 24) {
			if e.Slot(rotation.Dam).HasEvent() {
				want = append(want, relativeTime(rotation.ForecastTime(hourTwo, i+1)))
			}
		}
		require.NotEmpty(t, want)

		var got []string
		if mobile {
			assert.Empty(t, p.Fields)
			for _, line := range strings.Split(p.Description, "\n") {
				if strings.HasPrefix(line, "*<!date^") {
					got = append(got, strings.TrimPrefix(strings.SplitN(line, "* • ", 2)[0], "*"))
				}
			}
		} else {
			require.Len(t, p.Fields, 2)
			assert.Equal(t, "Time Until", p.Fields[0].Name)
			got = strings.Split(p.Fields[0].Value, "\n")
			assert.Len(t, strings.Split(p.Fields[1].Value, "\n"), len(got))
		}
		assert.Equal(t, want, got, "mobile=%v", mobile)
		assert.True(t, strings.HasPrefix(p.Description, "*Forecast for :snow_capped_mountain: Dam*"))

		button, ok := p.FindButton("view_map_dam")
		require.True(t, ok)
		assert.True(t, button.Disabled)
		other, _ := p.FindButton("view_map_spaceport")
		assert.False(t, other.Disabled)
		assert.False(t, p.HomeDisabled(ControlHome))
	}
}

func TestRender_EventForecast(t *testing.T) {
	opts := testOptions(t, hourTwo, false)
	p := Render(Transition(SelectEvent{Event: rotation.Night}), opts)

	var want []string
	for _, e := range rotation.Forecast(2, 24) {
		var names []string
		for _, l := range rotation.Locations {
			if e.Slot(l).Has(rotation.Night) {
				names = append(names, opts.Translator.T("map_rotation.locations."+l.TranslationKey(), nil))
			}
		}
		if len(names) > 0 {
			want = append(want, strings.Join(names, ", "))
		}
	}
	require.NotEmpty(t, want)

	require.Len(t, p.Fields, 2)
	assert.Equal(t, "Locations", p.Fields[1].Name)
	assert.Equal(t, want, strings.Split(p.Fields[1].Value, "\n"))

	require.Len(t, p.ButtonRows[0], 6, "major events use the major button set")
	b, _ := p.FindButton("view_event_Night")
	assert.True(t, b.Disabled)
	assert.Equal(t, []string{"view_mode_map", "view_mode_minor", "view_overview"}, controlIDs(p.ButtonRows[1]))
	assert.False(t, p.HomeDisabled(ControlHome))
}

func TestRender_EventWithoutOccurrences(t *testing.T) {
	for _, c := range append(append([]rotation.Condition{}, rotation.MajorConditions...), rotation.MinorConditions...) {
		occurs := false
		for _, e := range rotation.Forecast(2, 24) {
			for _, l := range rotation.Locations {
				occurs = occurs || e.Slot(l).Has(c)
			}
		}
		if occurs {
			continue
		}

		p := Render(Transition(SelectEvent{Event: c}), testOptions(t, hourTwo, false))
		assert.Empty(t, p.Fields)
		assert.True(t, strings.HasSuffix(p.Description, "No events upcoming in the next 24 hours."))
	}
}

func TestRender_FilterModes(t *testing.T) {
	opts := testOptions(t, hourTwo, false)
	home := Render(Home(), opts)

	major := Render(Transition(SwitchMode{Mode: ModeMajor}), opts)
	assert.Equal(t, home.Fields, major.Fields, "filters keep the home body")
	assert.Len(t, major.ButtonRows[0], 6)
	assert.False(t, major.HomeDisabled(ControlHome))

	minor := Render(Transition(SwitchMode{Mode: ModeMinor}), opts)
	assert.Equal(t, []string{"view_event_Husks", "view_event_Blooms", "view_event_Caches", "view_event_Probes"}, controlIDs(minor.ButtonRows[0]))
	assert.Equal(t, []string{"view_mode_map", "view_mode_major", "view_overview"}, controlIDs(minor.ButtonRows[1]))
	for _, b := range minor.ButtonRows[0] {
		assert.False(t, b.Disabled)
	}

	mapMode := Render(Transition(SwitchMode{Mode: ModeMap}), opts)
	assert.Equal(t, home, mapMode)
}

func TestRender_Deterministic(t *testing.T) {
	controls := []string{"view_mode_major", "view_event_Night", "view_mode_minor", "view_event_Husks", "view_map_blueGate", "view_overview"}

	run := func() []*entity.Payload {
		opts := testOptions(t, hourTwo, false)
		var out []*entity.Payload
		for _, id := range controls {
			a, err := ParseControl(id)
			require.NoError(t, err)
			out = append(out, Render(Transition(a), opts))
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestRender_ColorFollowsDam(t *testing.T) {
	for h := 0; h < 24; h++ {
		now := time.Date(2025, 3, 10, h, 5, 0, 0, time.UTC)
		p := Render(Home(), testOptions(t, now, false))

		want, ok := rotation.Lookup(h).Slot(rotation.Dam).Major.Color()
		require.True(t, ok)
		assert.Equal(t, want, p.Color, "hour %d", h)
	}
}

func TestRender_Localized(t *testing.T) {
	b, err := i18n.New("en")
	require.NoError(t, err)

	p := Render(Home(), Options{Now: hourTwo, Translator: b.For("es"), WithImage: true})
	assert.Equal(t, ":nightraid: Noche (2x)", p.Fields[0].Value)
	assert.Equal(t, "es", p.Image.Locale)
	assert.Equal(t, "Inicio", p.ButtonRows[1][2].Label)
}

func controlIDs(row []entity.Button) []string {
	ids := make([]string, 0, len(row))
	for _, b := range row {
		ids = append(ids, b.ControlID)
	}
	return ids
}

func hasMajorAnywhere(e rotation.Entry, c rotation.Condition) bool {
	for _, l := range rotation.Locations {
		if e.Slot(l).Major == c {
			return true
		}
	}
	return false
}
