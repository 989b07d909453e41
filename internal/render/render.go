// Package render draws the map status card attached to rotation messages.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"github.com/diegoclair/map-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/map-rotation-bot/internal/domain/rotation"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	width     = 720
	padding   = 16
	rowHeight = 22
	swatch    = 12
)

var (
	background = color.RGBA{R: 0x1e, G: 0x1f, B: 0x22, A: 0xff}
	panel      = color.RGBA{R: 0x2b, G: 0x2d, B: 0x31, A: 0xff}
	textColor  = color.RGBA{R: 0xf2, G: 0xf3, B: 0xf5, A: 0xff}
	mutedColor = color.RGBA{R: 0x94, G: 0x9b, B: 0xa4, A: 0xff}
)

// PNGRenderer implements contract.Renderer with a fixed width card layout
type PNGRenderer struct {
	face font.Face
}

func New() *PNGRenderer {
	return &PNGRenderer{face: basicfont.Face7x13}
}

func (r *PNGRenderer) Render(ctx context.Context, in contract.RenderInput) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t := in.Translator

	rows := 2 + len(rotation.Locations) + 2 + len(in.Forecast)
	height := padding*2 + rows*rowHeight
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	c := canvas{img: img, face: r.face, y: padding}

	c.text(padding, t.T("map_rotation.title", nil), textColor)
	c.textRight(fmt.Sprintf("%02d:00 UTC", in.Current.Hour), mutedColor)
	c.next()
	c.text(padding, t.T("map_rotation.current_conditions", nil), mutedColor)
	c.next()

	for _, l := range rotation.Locations {
		s := in.Current.Slot(l)
		c.fillRow(panel)
		c.swatch(padding, slotColor(s))
		c.text(padding+swatch+8, t.T("map_rotation.locations."+l.TranslationKey(), nil), textColor)
		c.text(width/3, conditionText(t, s), textColor)
		c.next()
	}

	c.next()
	c.text(padding, t.T("map_rotation.forecast.header", map[string]string{"hours": fmt.Sprint(len(in.Forecast))}), mutedColor)
	c.next()

	for i, e := range in.Forecast {
		at := rotation.ForecastTime(in.Now, i+1)
		c.text(padding, at.UTC().Format("15:04"), mutedColor)

		var events []string
		col := color.Color(mutedColor)
		for _, l := range rotation.Locations {
			if major := e.Slot(l).Major; major != rotation.None {
				events = append(events, t.T("map_rotation.short_locations."+l.TranslationKey(), nil)+": "+
					t.T("map_rotation.events."+major.TranslationKey(), nil))
				col = textColor
			}
		}
		line := t.T("map_rotation.forecast.no_major_events", nil)
		if len(events) > 0 {
			line = strings.Join(events, " | ")
		}
		c.text(padding+64, line, col)
		c.next()
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func conditionText(t contract.Translator, s rotation.Slot) string {
	var parts []string
	if s.Major != rotation.None {
		parts = append(parts, t.T("map_rotation.events."+s.Major.TranslationKey(), nil)+" (2x)")
	}
	if s.Minor != rotation.None {
		parts = append(parts, t.T("map_rotation.events."+s.Minor.TranslationKey(), nil))
	}
	if len(parts) == 0 {
		return t.T("map_rotation.events.none", nil)
	}
	return strings.Join(parts, " | ")
}

func slotColor(s rotation.Slot) color.Color {
	cond := s.Major
	if cond == rotation.None {
		cond = s.Minor
	}
	rgb, ok := cond.Color()
	if !ok {
		return mutedColor
	}
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}

type canvas struct {
	img  *image.RGBA
	face font.Face
	y    int
}

func (c *canvas) next() {
	c.y += rowHeight
}

func (c *canvas) fillRow(col color.Color) {
	r := image.Rect(padding/2, c.y, width-padding/2, c.y+rowHeight-2)
	draw.Draw(c.img, r, &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func (c *canvas) swatch(x int, col color.Color) {
	top := c.y + (rowHeight-swatch)/2
	draw.Draw(c.img, image.Rect(x, top, x+swatch, top+swatch), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func (c *canvas) text(x int, s string, col color.Color) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  &image.Uniform{C: col},
		Face: c.face,
		Dot:  fixed.P(x, c.y+rowHeight-7),
	}
	d.DrawString(s)
}

func (c *canvas) textRight(s string, col color.Color) {
	w := font.MeasureString(c.face, s).Ceil()
	c.text(width-padding-w, s, col)
}
