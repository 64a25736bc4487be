// Package native adapts the in-house parser in pkg/useragent to the
// provider contract.
package native

import (
	"context"
	"errors"

	"github.com/dmitrymomot/uabench/pkg/provider"
	"github.com/dmitrymomot/uabench/pkg/useragent"
)

const Name = "native"

type Provider struct{}

func New() *Provider { return &Provider{} }

func (*Provider) Info() provider.Info {
	return provider.Info{
		Name:    Name,
		Package: "github.com/dmitrymomot/uabench/pkg/useragent",
		Detects: provider.Capabilities{
			Browser: true,
			Engine:  true,
			OS:      true,
			Device:  true,
			Bot:     true,
		},
	}
}

// Parse never fails for non-empty input. An unclassified device still
// carries whatever browser and OS were detected.
func (*Provider) Parse(_ context.Context, ua string) (provider.Result, error) {
	parsed, err := useragent.Parse(ua)
	switch {
	case errors.Is(err, useragent.ErrEmptyUserAgent), errors.Is(err, useragent.ErrMalformedUserAgent):
		return provider.Result{}, provider.ErrNoResult
	case err != nil && !errors.Is(err, useragent.ErrUnknownDevice):
		return provider.Result{}, err
	}

	browser, engine, osInfo := parsed.Browser(), parsed.Engine(), parsed.OS()
	device, bot := parsed.Device(), parsed.Bot()
	return provider.Result{
		Browser: provider.Browser{Name: browser.Name, Version: browser.Version},
		Engine:  provider.Engine{Name: engine.Name, Version: engine.Version},
		OS:      provider.OS{Name: osInfo.Name, Version: osInfo.Version},
		Device: provider.Device{
			Model:    device.Model,
			Brand:    device.Brand,
			Type:     device.Type,
			IsMobile: parsed.IsMobile(),
			IsTouch:  parsed.IsTouch(),
		},
		Bot: provider.Bot{
			IsBot: parsed.IsBot(),
			Name:  bot.Name,
			Type:  bot.Type,
		},
		Raw: parsed,
	}, nil
}
