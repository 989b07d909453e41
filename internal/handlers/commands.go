package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/diegoclair/map-rotation-bot/internal/domain"
	"github.com/diegoclair/map-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/map-rotation-bot/internal/domain/entity"
	"github.com/diegoclair/map-rotation-bot/internal/obs"
	slackcmd "github.com/diegoclair/map-rotation-bot/internal/slack"
	log "github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	response := h.handleCommand(r.Context(), s.Text, &s)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.WithError(err).Error("failed to write command response")
	}
}

func (h *SlackHandler) handleCommand(ctx context.Context, text string, slashCmd *slack.SlashCommand) *slack.Msg {
	logger := obs.WithFuncName().WithFields(log.Fields{
		"destination_id": slashCmd.TeamID,
		"channel_id":     slashCmd.ChannelID,
		"user_id":        slashCmd.UserID,
	})

	// replies follow the workspace language once it is configured
	d, err := h.service.GetDestination(ctx, slashCmd.TeamID)
	if err != nil && !errors.Is(err, domain.ErrDestinationNotFound) {
		logger.WithError(err).Warn("failed to load destination")
	}
	t := h.translatorFor(d)

	cmd, err := slackcmd.ParseCommand(text)
	if err != nil {
		var usage *slackcmd.ErrUsage
		if errors.As(err, &usage) {
			return h.reply(h.helpText(t))
		}
		return h.reply(t.T("commands.unknown", nil))
	}

	switch cmd.Type {
	case slackcmd.CmdSetChannel:
		return h.handleSetChannel(ctx, slashCmd, t, logger)
	case slackcmd.CmdSettings:
		return h.handleSettings(ctx, cmd, slashCmd, t, logger)
	case slackcmd.CmdStatus:
		return h.handleStatus(d, t)
	case slackcmd.CmdPing:
		return h.reply(t.T("commands.pong", nil))
	case slackcmd.CmdRemove:
		if err := h.service.RemoveDestination(ctx, slashCmd.TeamID); err != nil {
			logger.WithError(err).Error("failed to remove destination")
			return h.reply(t.T("commands.failed", nil))
		}
		return h.reply(t.T("commands.removed", nil))
	default:
		return h.reply(h.helpText(t))
	}
}

func (h *SlackHandler) handleSetChannel(ctx context.Context, slashCmd *slack.SlashCommand, t contract.Translator, logger *log.Entry) *slack.Msg {
	d, err := h.service.ConfigureChannel(ctx, slashCmd.TeamID, slashCmd.ChannelID, slashCmd.ChannelName)
	if err != nil {
		logger.WithError(err).Error("failed to configure channel")
		return h.reply(t.T("commands.failed", nil))
	}
	return h.reply(t.T("commands.set_channel_ok", map[string]string{"channel": d.ChannelID}))
}

func (h *SlackHandler) handleSettings(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand,
	t contract.Translator, logger *log.Entry) *slack.Msg {

	setting, value := cmd.Args[0], cmd.Args[1]

	var (
		d   *entity.Destination
		err error
	)
	switch setting {
	case slackcmd.SettingMobile:
		d, err = h.service.SetMobileFriendly(ctx, slashCmd.TeamID, value == "on")
	case slackcmd.SettingLocale:
		d, err = h.service.SetLocale(ctx, slashCmd.TeamID, value)
	}

	switch {
	case errors.Is(err, domain.ErrDestinationNotFound):
		return h.reply(t.T("commands.not_configured", nil))
	case errors.Is(err, domain.ErrUnsupportedLocale):
		return h.reply(t.T("commands.locale_unsupported", map[string]string{
			"locale":  value,
			"locales": strings.Join(h.locales.Locales(), ", "),
		}))
	case err != nil:
		logger.WithError(err).WithField("setting", setting).Error("failed to update setting")
		return h.reply(t.T("commands.failed", nil))
	}

	if setting == slackcmd.SettingLocale {
		t = h.translatorFor(d)
		return h.reply(t.T("commands.locale_ok", map[string]string{"locale": d.Locale}))
	}
	if d.MobileFriendly {
		return h.reply(t.T("commands.mobile_on", nil))
	}
	return h.reply(t.T("commands.mobile_off", nil))
}

func (h *SlackHandler) handleStatus(d *entity.Destination, t contract.Translator) *slack.Msg {
	if d == nil {
		return h.reply(t.T("commands.not_configured", nil))
	}

	updated := t.T("commands.never", nil)
	if d.LastUpdatedAt != nil {
		updated = fmt.Sprintf("<!date^%d^{date_short_pretty} {time}|%s>",
			d.LastUpdatedAt.Unix(), d.LastUpdatedAt.UTC().Format("2006-01-02 15:04 UTC"))
	}

	mobile := t.T("commands.off", nil)
	if d.MobileFriendly {
		mobile = t.T("commands.on", nil)
	}

	return h.reply(t.T("commands.status", map[string]string{
		"channel": d.ChannelID,
		"mobile":  mobile,
		"locale":  t.Locale(),
		"updated": updated,
	}))
}

func (h *SlackHandler) translatorFor(d *entity.Destination) contract.Translator {
	if d == nil {
		return h.locales.For("")
	}
	return h.locales.For(d.Locale)
}

func (h *SlackHandler) helpText(t contract.Translator) string {
	return t.T("commands.help", map[string]string{"locales": strings.Join(h.locales.Locales(), ", ")})
}

func (h *SlackHandler) reply(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}
