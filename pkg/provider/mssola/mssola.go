// Package mssola adapts github.com/mssola/user_agent to the provider
// contract. The library reports browser, engine and OS; for bots the browser
// name is the bot name.
package mssola

import (
	"context"
	"strings"

	mssola "github.com/mssola/user_agent"

	"github.com/dmitrymomot/uabench/pkg/provider"
)

const (
	Name          = "mssola"
	libraryModule = "github.com/mssola/user_agent"
)

type Provider struct {
	version string
}

type Option func(*Provider)

// WithVersion records the library version shown in reports.
func WithVersion(v string) Option {
	return func(p *Provider) { p.version = v }
}

func New(opts ...Option) *Provider {
	p := &Provider{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) Info() provider.Info {
	return provider.Info{
		Name:     Name,
		Package:  libraryModule,
		Version:  p.version,
		Homepage: "https://" + libraryModule,
		Detects: provider.Capabilities{
			Browser: true,
			Engine:  true,
			OS:      true,
			Bot:     true,
		},
	}
}

func (p *Provider) Parse(_ context.Context, ua string) (provider.Result, error) {
	if strings.TrimSpace(ua) == "" {
		return provider.Result{}, provider.ErrNoResult
	}

	parsed := mssola.New(ua)
	browserName, browserVersion := parsed.Browser()
	engineName, engineVersion := parsed.Engine()
	osInfo := parsed.OSInfo()

	if browserName == "" && engineName == "" && osInfo.Name == "" {
		return provider.Result{}, provider.ErrNoResult
	}

	res := provider.Result{
		Engine: provider.Engine{Name: engineName, Version: engineVersion},
		OS:     provider.OS{Name: osInfo.Name, Version: osInfo.Version},
		Device: provider.Device{IsMobile: parsed.Mobile()},
		Raw:    parsed,
	}

	if parsed.Bot() {
		res.Bot = provider.Bot{IsBot: true, Name: browserName}
		return res, nil
	}

	res.Browser = provider.Browser{Name: browserName, Version: browserVersion}
	return res, nil
}
