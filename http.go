package opmark

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// URLRenderRequest configures RenderURL.
type URLRenderRequest struct {
	URL     string
	Client  *http.Client
	Writer  io.Writer
	Width   int
	Theme   Theme
	Page    int
	Options []RenderOption
}

// RenderURL fetches an opmark document over HTTP(S) and renders it.
func RenderURL(ctx context.Context, req URLRenderRequest) error {
	if req.URL == "" {
		return fmt.Errorf("render url: URL is required")
	}
	if req.Writer == nil {
		return fmt.Errorf("render url: Writer is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return fmt.Errorf("render url: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return fmt.Errorf("render url: unsupported scheme %q", httpReq.URL.Scheme)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("render url: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("render url: status %s", resp.Status)
	}
	return Render(RenderRequest{
		Reader:  resp.Body,
		Writer:  req.Writer,
		Width:   req.Width,
		Theme:   req.Theme,
		Page:    req.Page,
		Options: req.Options,
	})
}
