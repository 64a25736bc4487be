package main

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/dmitrymomot/uabench/pkg/provider"
	"github.com/dmitrymomot/uabench/pkg/provider/fixture"
	"github.com/dmitrymomot/uabench/pkg/provider/mssola"
	"github.com/dmitrymomot/uabench/pkg/provider/native"
)

// buildProviders instantiates the named built-in providers followed by one
// provider per fixture file. Fixture user agents are returned as an extra
// corpus.
func buildProviders(names, fixtures []string) ([]provider.Provider, []string, error) {
	providers := make([]provider.Provider, 0, len(names)+len(fixtures))
	for _, name := range names {
		switch strings.TrimSpace(name) {
		case "":
			continue
		case native.Name:
			providers = append(providers, native.New())
		case mssola.Name:
			providers = append(providers, mssola.New(mssola.WithVersion(moduleVersion("github.com/mssola/user_agent"))))
		default:
			return nil, nil, fmt.Errorf("unknown provider %q", name)
		}
	}

	var corpus []string
	for _, path := range fixtures {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		p, err := fixture.Open(path)
		if err != nil {
			return nil, nil, err
		}
		providers = append(providers, p)
		corpus = append(corpus, p.UserAgents()...)
	}
	return providers, corpus, nil
}

// moduleVersion reports the version of a dependency compiled into the binary.
func moduleVersion(path string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, dep := range info.Deps {
		if dep.Path == path {
			return dep.Version
		}
	}
	return ""
}
