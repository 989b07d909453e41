package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/map-rotation-bot/internal/domain"
	"github.com/diegoclair/map-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/map-rotation-bot/internal/domain/entity"
	"github.com/diegoclair/map-rotation-bot/internal/domain/imagecache"
	"github.com/diegoclair/map-rotation-bot/internal/domain/rotation"
	"github.com/diegoclair/map-rotation-bot/internal/domain/view"
	"github.com/diegoclair/map-rotation-bot/internal/obs"
)

// viewBuilder renders view states for a destination and keeps the map image
// of the current hour warm in the cache
type viewBuilder struct {
	localizer contract.Localizer
	renderer  contract.Renderer
	clock     contract.Clock
	withImage bool
	cache     *imagecache.Cache
}

func newViewBuilder(localizer contract.Localizer, renderer contract.Renderer, clock contract.Clock,
	withImage bool, metrics *obs.Metrics) *viewBuilder {

	vb := &viewBuilder{
		localizer: localizer,
		renderer:  renderer,
		clock:     clock,
		withImage: withImage,
	}
	vb.cache = imagecache.New(vb.renderImage, imagecache.WithMetrics(metrics))
	return vb
}

func (v *viewBuilder) translator(d *entity.Destination) contract.Translator {
	return v.localizer.For(d.Locale)
}

// build renders state for d. When images are enabled the map is rendered
// before the payload is returned so the URL resolves once Slack fetches it.
func (v *viewBuilder) build(ctx context.Context, d *entity.Destination, state view.State) (*entity.Payload, error) {
	payload := view.Render(state, view.Options{
		MobileFriendly: d.MobileFriendly,
		Now:            v.clock.Now(),
		Translator:     v.translator(d),
		WithImage:      v.withImage,
	})

	if payload.Image != nil {
		_, err := v.cache.Get(ctx, payload.Image.Hour, imagecache.Axis{Locale: payload.Image.Locale})
		if err != nil {
			return nil, fmt.Errorf("failed to render map image: %w", err)
		}
	}
	return payload, nil
}

func (v *viewBuilder) renderImage(ctx context.Context, hour int, axis imagecache.Axis) ([]byte, error) {
	return v.renderer.Render(ctx, contract.RenderInput{
		Now:        v.clock.Now(),
		Current:    rotation.Lookup(hour),
		Forecast:   rotation.Forecast(hour, domain.HomeForecastHours),
		Translator: v.localizer.For(axis.Locale),
	})
}

// image serves the map of the active hour only
func (v *viewBuilder) image(ctx context.Context, hour int, locale string) ([]byte, error) {
	norm, ok := v.localizer.Supported(locale)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedLocale, locale)
	}
	if current := rotation.Current(v.clock.Now()).Hour; hour != current {
		return nil, fmt.Errorf("%w: requested %d, active %d", domain.ErrStaleHour, hour, current)
	}
	return v.cache.Get(ctx, hour, imagecache.Axis{Locale: norm})
}
