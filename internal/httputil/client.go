// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across the pipelines.
package httputil

import (
	"net/http"

	"github.com/pdiddy/course-fetch/pkg/types"
)

// headerTransport stamps a User-Agent and any extra headers on every
// request before delegating to the wrapped RoundTripper.
type headerTransport struct {
	base      http.RoundTripper
	userAgent string
	headers   http.Header
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	for key, values := range t.headers {
		for _, v := range values {
			req.Header.Set(key, v)
		}
	}
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

// NewClient returns an HTTP client with the configured timeout and a
// transport that sets the User-Agent plus any extra headers (session
// cookies or bearer tokens for gated course pages) on every request.
func NewClient(cfg types.HTTPConfig, extra http.Header) *http.Client {
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &headerTransport{
			userAgent: cfg.UserAgent,
			headers:   extra,
		},
	}
}

// Probe issues a HEAD request and reports whether the URL answered with
// HTTP 200. Any transport error counts as unreachable.
func Probe(client *http.Client, url string) bool {
	req, err := http.NewRequest(http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
