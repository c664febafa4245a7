// SPDX-FileCopyrightText: Copyright 2026 The huawei-mcp-catalog Authors
// SPDX-License-Identifier: Apache-2.0

// Package source resolves and loads the registry document the catalog is
// parsed from. A source is either a local file path or an http(s) URL.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"

	"github.com/charr-Chen/huawei-mcp-catalog/env"
)

// EnvCatalogSource is the environment variable consulted when no source is
// given on the command line.
const EnvCatalogSource = "HWMCP_CATALOG_SOURCE"

const (
	appDirName      = "hwmcp"
	defaultFileName = "registry.md"

	defaultHTTPTimeout = 30 * time.Second
)

// DefaultCachePath returns the XDG data-dir location of the locally cached
// registry document, used when neither a flag nor the environment names a
// source.
func DefaultCachePath() string {
	return filepath.Join(xdg.DataHome, appDirName, defaultFileName)
}

// Loader loads registry documents from files or URLs.
type Loader struct {
	client *http.Client
	env    env.Reader
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient sets the HTTP client used for URL sources.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		l.client = c
	}
}

// WithEnvReader sets the environment reader used during source resolution.
func WithEnvReader(r env.Reader) Option {
	return func(l *Loader) {
		l.env = r
	}
}

// NewLoader returns a Loader with a default HTTP client and OS environment
// access.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		client: &http.Client{Timeout: defaultHTTPTimeout},
		env:    &env.OSReader{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Resolve picks the effective source: an explicit value wins, then the
// HWMCP_CATALOG_SOURCE environment variable, then the XDG cache path.
func (l *Loader) Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if fromEnv := l.env.Getenv(EnvCatalogSource); fromEnv != "" {
		return fromEnv
	}
	return DefaultCachePath()
}

// Load opens the source for reading. URL sources are fetched over HTTP with
// the given context; anything else is treated as a local file path.
// The caller closes the returned reader.
func (l *Loader) Load(ctx context.Context, src string) (io.ReadCloser, error) {
	if IsURL(src) {
		return l.fetch(ctx, src)
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog source: %w", err)
	}
	return f, nil
}

func (l *Loader) fetch(ctx context.Context, src string) (io.ReadCloser, error) {
	if err := ValidateSourceURL(src); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog source: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch catalog source: %s returned %s", src, resp.Status)
	}
	return resp.Body, nil
}

// IsURL reports whether the source is an http(s) URL rather than a file path.
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// ValidateSourceURL validates that a source URL is usable for fetching the
// registry document.
//
// A valid source URL must:
//   - Include an http or https scheme
//   - Include a host
//   - Not contain fragments
func ValidateSourceURL(src string) error {
	if src == "" {
		return fmt.Errorf("source URL cannot be empty")
	}

	parsed, err := url.Parse(src)
	if err != nil {
		return fmt.Errorf("invalid source URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("source URL must use http or https: %s", src)
	}

	if parsed.Host == "" {
		return fmt.Errorf("source URL must include a host: %s", src)
	}

	if parsed.Fragment != "" {
		return fmt.Errorf("source URL must not contain fragments (#): %s", src)
	}

	return nil
}
