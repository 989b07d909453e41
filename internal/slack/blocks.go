package slack

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/diegoclair/map-rotation-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// Block ids let Decode tell the payload parts apart
const (
	blockTitle       = "title"
	blockDescription = "description"
	blockFieldPrefix = "field_"
	blockImage       = "image"
	blockFooter      = "footer"
	blockRowPrefix   = "buttons_"

	// disabledValue marks a button rendered as the current position. Slack has
	// no disabled state, so clicks carrying it are dropped on arrival.
	disabledValue = "current"
	enabledValue  = "open"

	maxSectionFields = 10
)

// Codec converts payloads to Block Kit messages and back
type Codec struct {
	imageBaseURL string
}

// NewCodec builds a codec. An empty imageBaseURL drops image blocks.
func NewCodec(imageBaseURL string) *Codec {
	return &Codec{imageBaseURL: strings.TrimRight(imageBaseURL, "/")}
}

// ImagePath is the route the rendered map is served from
func ImagePath(locale string, hour int) string {
	return fmt.Sprintf("/images/%s/%d.png", locale, hour)
}

// ParseImagePath reads back the hour and locale of an image URL or path
func ParseImagePath(p string) (hour int, locale string, ok bool) {
	file := path.Base(p)
	if !strings.HasSuffix(file, ".png") {
		return 0, "", false
	}
	hour, err := strconv.Atoi(strings.TrimSuffix(file, ".png"))
	if err != nil {
		return 0, "", false
	}
	return hour, path.Base(path.Dir(p)), true
}

func (c *Codec) Attachment(p *entity.Payload) slack.Attachment {
	var blocks []slack.Block

	if p.Title != "" {
		blocks = append(blocks, slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, p.Title, true, false),
			slack.HeaderBlockOptionBlockID(blockTitle),
		))
	}
	if p.Description != "" {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, p.Description, false, false),
			nil, nil, slack.SectionBlockOptionBlockID(blockDescription),
		))
	}

	blocks = append(blocks, fieldBlocks(p.Fields)...)

	if p.Image != nil && c.imageBaseURL != "" {
		blocks = append(blocks, slack.NewImageBlock(
			c.imageBaseURL+ImagePath(p.Image.Locale, p.Image.Hour),
			p.Title, blockImage, nil,
		))
	}

	if footer := footerText(p); footer != "" {
		blocks = append(blocks, slack.NewContextBlock(blockFooter,
			slack.NewTextBlockObject(slack.MarkdownType, footer, false, false),
		))
	}

	for i, row := range p.ButtonRows {
		elements := make([]slack.BlockElement, 0, len(row))
		for _, b := range row {
			elements = append(elements, buttonElement(b))
		}
		blocks = append(blocks, slack.NewActionBlock(fmt.Sprintf("%s%d", blockRowPrefix, i), elements...))
	}

	return slack.Attachment{
		Color:    fmt.Sprintf("#%06x", p.Color),
		Fallback: p.Title,
		Blocks:   slack.Blocks{BlockSet: blocks},
	}
}

// Options are the message options for posting or updating p
func (c *Codec) Options(p *entity.Payload) []slack.MsgOption {
	return []slack.MsgOption{
		slack.MsgOptionText(p.Title, false),
		slack.MsgOptionAttachments(c.Attachment(p)),
	}
}

// fieldBlocks groups consecutive inline fields into multi column sections and
// gives every other field a section of its own.
func fieldBlocks(fields []entity.Field) []slack.Block {
	var blocks []slack.Block
	var inline []*slack.TextBlockObject

	flush := func() {
		if len(inline) == 0 {
			return
		}
		blocks = append(blocks, slack.NewSectionBlock(nil, inline, nil,
			slack.SectionBlockOptionBlockID(fmt.Sprintf("%s%d", blockFieldPrefix, len(blocks)))))
		inline = nil
	}

	for _, f := range fields {
		text := fieldText(f)
		if text == "" {
			continue
		}
		obj := slack.NewTextBlockObject(slack.MarkdownType, text, false, false)
		if f.Inline {
			inline = append(inline, obj)
			if len(inline) == maxSectionFields {
				flush()
			}
			continue
		}
		flush()
		blocks = append(blocks, slack.NewSectionBlock(obj, nil, nil,
			slack.SectionBlockOptionBlockID(fmt.Sprintf("%s%d", blockFieldPrefix, len(blocks)))))
	}
	flush()

	return blocks
}

func fieldText(f entity.Field) string {
	switch {
	case f.Name == "":
		return f.Value
	case f.Value == "":
		return "*" + f.Name + "*"
	default:
		return "*" + f.Name + "*\n" + f.Value
	}
}

func parseFieldText(text string) entity.Field {
	first, rest, _ := strings.Cut(text, "\n")
	if len(first) > 2 && strings.HasPrefix(first, "*") && strings.HasSuffix(first, "*") {
		return entity.Field{Name: first[1 : len(first)-1], Value: rest}
	}
	return entity.Field{Value: text}
}

func footerText(p *entity.Payload) string {
	var parts []string
	if p.Footer != "" {
		parts = append(parts, p.Footer)
	}
	if !p.Timestamp.IsZero() {
		parts = append(parts, fmt.Sprintf("<!date^%d^{date_short} {time}|%s>",
			p.Timestamp.Unix(), p.Timestamp.UTC().Format("2006-01-02 15:04 UTC")))
	}
	return strings.Join(parts, " • ")
}

func buttonElement(b entity.Button) *slack.ButtonBlockElement {
	label := b.Label
	if b.Emoji != "" {
		label = b.Emoji + " " + label
	}

	value := enabledValue
	if b.Disabled {
		value = disabledValue
	}

	el := slack.NewButtonBlockElement(b.ControlID, value, slack.NewTextBlockObject(slack.PlainTextType, label, true, false))
	if b.Primary && !b.Disabled {
		el = el.WithStyle(slack.StylePrimary)
	}
	return el
}

// IsDisabledValue reports whether a clicked button value marks a disabled button
func IsDisabledValue(value string) bool {
	return value == disabledValue
}

// Decode recovers the payload of a posted message. The footer and timestamp
// are not recovered.
func (c *Codec) Decode(msg slack.Message) (*entity.Payload, error) {
	if len(msg.Attachments) == 0 {
		return nil, fmt.Errorf("message %s has no attachment", msg.Timestamp)
	}
	att := msg.Attachments[0]

	p := &entity.Payload{}
	if att.Color != "" {
		color, err := strconv.ParseInt(strings.TrimPrefix(att.Color, "#"), 16, 32)
		if err != nil {
			return nil, fmt.Errorf("failed to parse attachment color %q: %w", att.Color, err)
		}
		p.Color = int(color)
	}

	for _, block := range att.Blocks.BlockSet {
		switch b := block.(type) {
		case *slack.HeaderBlock:
			if b.Text != nil {
				p.Title = b.Text.Text
			}
		case *slack.SectionBlock:
			switch {
			case b.BlockID == blockDescription && b.Text != nil:
				p.Description = b.Text.Text
			case strings.HasPrefix(b.BlockID, blockFieldPrefix):
				if b.Text != nil {
					p.Fields = append(p.Fields, parseFieldText(b.Text.Text))
				}
				for _, f := range b.Fields {
					field := parseFieldText(f.Text)
					field.Inline = true
					p.Fields = append(p.Fields, field)
				}
			}
		case *slack.ImageBlock:
			if hour, locale, ok := ParseImagePath(b.ImageURL); ok {
				p.Image = &entity.ImageRequest{Hour: hour, Locale: locale}
			}
		case *slack.ActionBlock:
			if b.Elements == nil {
				continue
			}
			var row []entity.Button
			for _, el := range b.Elements.ElementSet {
				if btn, ok := el.(*slack.ButtonBlockElement); ok {
					row = append(row, decodeButton(btn))
				}
			}
			p.ButtonRows = append(p.ButtonRows, row)
		}
	}

	return p, nil
}

func decodeButton(btn *slack.ButtonBlockElement) entity.Button {
	b := entity.Button{
		ControlID: btn.ActionID,
		Primary:   btn.Style == slack.StylePrimary,
		Disabled:  btn.Value == disabledValue,
	}
	if btn.Text != nil {
		b.Label = btn.Text.Text
		if emoji, label, ok := strings.Cut(btn.Text.Text, " "); ok && len(emoji) > 2 &&
			strings.HasPrefix(emoji, ":") && strings.HasSuffix(emoji, ":") {
			b.Emoji, b.Label = emoji, label
		}
	}
	return b
}
