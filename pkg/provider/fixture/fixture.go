// Package fixture implements a provider backed by expected results, such as
// the test suite of a parser library. Fixtures double as corpus sources: the
// user agents they know can be imported before a parse run.
//
// A fixture file is YAML:
//
//	name: matomo-fixtures
//	package: github.com/matomo-org/device-detector
//	version: "6.1"
//	detects: {browser: true, os: true, device: true, bot: true}
//	results:
//	  - user_agent: "Mozilla/5.0 (Linux; Android 11; Pixel 5) ..."
//	    browser: {name: Chrome Mobile, version: "91.0.4472.124"}
//	    os: {name: Android, version: "11"}
//	    device: {brand: Google, model: Pixel 5, type: smartphone}
package fixture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/uabench/pkg/provider"
)

var (
	ErrInvalidFixture     = errors.New("fixture: invalid fixture file")
	ErrMissingName        = errors.New("fixture: provider name is required")
	ErrDuplicateUserAgent = errors.New("fixture: user agent listed twice")
)

type entry struct {
	UserAgent       string `yaml:"user_agent"`
	provider.Result `yaml:",inline"`
}

type document struct {
	provider.Info `yaml:",inline"`
	Results       []entry `yaml:"results"`
}

// Provider answers with the stored result for known user agents and
// ErrNoResult for everything else.
type Provider struct {
	info    provider.Info
	order   []string
	results map[string]provider.Result
}

// New builds a provider from in-memory results. Iteration order of
// UserAgents follows uas.
func New(info provider.Info, uas []string, results map[string]provider.Result) (*Provider, error) {
	if strings.TrimSpace(info.Name) == "" {
		return nil, ErrMissingName
	}
	p := &Provider{
		info:    info,
		order:   make([]string, 0, len(uas)),
		results: make(map[string]provider.Result, len(results)),
	}
	for _, ua := range uas {
		if _, dup := p.results[ua]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateUserAgent, ua)
		}
		res, ok := results[ua]
		if !ok {
			continue
		}
		p.order = append(p.order, ua)
		p.results[ua] = res
	}
	return p, nil
}

// Load decodes a fixture document.
func Load(r io.Reader) (*Provider, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Join(ErrInvalidFixture, err)
	}

	uas := make([]string, 0, len(doc.Results))
	results := make(map[string]provider.Result, len(doc.Results))
	for _, e := range doc.Results {
		if _, dup := results[e.UserAgent]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateUserAgent, e.UserAgent)
		}
		uas = append(uas, e.UserAgent)
		results[e.UserAgent] = e.Result
	}

	return New(doc.Info, uas, results)
}

// Open loads the fixture file at path.
func Open(path string) (*Provider, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidFixture, err)
	}
	defer f.Close()

	p, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func (p *Provider) Info() provider.Info { return p.info }

func (p *Provider) Parse(ctx context.Context, ua string) (provider.Result, error) {
	if err := ctx.Err(); err != nil {
		return provider.Result{}, err
	}
	res, ok := p.results[ua]
	if !ok {
		return provider.Result{}, provider.ErrNoResult
	}
	return res, nil
}

// UserAgents lists the known user agents in file order.
func (p *Provider) UserAgents() []string {
	return append([]string(nil), p.order...)
}
