package handlers

import (
	"sync"

	"github.com/diegoclair/map-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/map-rotation-bot/internal/i18n"
)

type SlackHandler struct {
	service       contract.BotService
	locales       *i18n.Bundle
	signingSecret string

	// async hands clicks to the service after the request is acked
	async   func(func())
	pending sync.WaitGroup
}

func New(service contract.BotService, locales *i18n.Bundle, signingSecret string) *SlackHandler {
	h := &SlackHandler{
		service:       service,
		locales:       locales,
		signingSecret: signingSecret,
	}
	h.async = h.track
	return h
}

func (h *SlackHandler) track(f func()) {
	h.pending.Add(1)
	go func() {
		defer h.pending.Done()
		f()
	}()
}

// Wait blocks until every acked click has been handled. Call it after the
// server stops accepting requests.
func (h *SlackHandler) Wait() {
	h.pending.Wait()
}
