// Package images validates and normalizes property image URLs during
// seeding. Remote URLs are probed with a short HEAD request, local paths are
// checked against the web root, and anything broken is replaced with the
// configured fallback image.
package images

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"

	"real-estate-api/models"
)

type Checker struct {
	client  *http.Client
	webRoot string
}

func NewChecker(webRoot string, headTimeout time.Duration) *Checker {
	if headTimeout <= 0 {
		headTimeout = 2 * time.Second
	}
	return &Checker{
		client:  &http.Client{Timeout: headTimeout},
		webRoot: webRoot,
	}
}

// CleanURLs trims whitespace, drops empty entries and removes
// case-insensitive duplicates, keeping first occurrences in order.
func CleanURLs(urls []string) []string {
	cleaned := make([]string, 0, len(urls))
	seen := make(map[string]bool, len(urls))

	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		key := strings.ToLower(u)
		if seen[key] {
			continue
		}
		seen[key] = true
		cleaned = append(cleaned, u)
	}
	return cleaned
}

// Available reports whether a URL is usable: local paths must exist on disk
// under the web root, remote URLs must answer a HEAD request with a 2xx
// status. Network errors and timeouts count as unavailable.
func (c *Checker) Available(ctx context.Context, url string) bool {
	if !strings.HasPrefix(strings.ToLower(url), "http") {
		path := strings.TrimPrefix(url, "/")
		disk := filepath.Join(c.webRoot, filepath.FromSlash(path))
		info, err := os.Stat(disk)
		return err == nil && !info.IsDir()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// Normalize cleans a property's image list, keeps only available URLs and
// resolves the thumbnail: explicit thumbnail if available, else the first
// valid image, else the fallback.
func (c *Checker) Normalize(ctx context.Context, p *models.Property, fallback string) {
	valid := make([]string, 0)
	for _, url := range CleanURLs(p.ImageUrls) {
		if c.Available(ctx, url) {
			valid = append(valid, url)
		}
	}
	if len(valid) == 0 {
		valid = append(valid, fallback)
	}
	p.ImageUrls = valid

	thumb := strings.TrimSpace(p.ThumbnailUrl)
	if thumb != "" && c.Available(ctx, thumb) {
		p.ThumbnailUrl = thumb
		return
	}
	p.ThumbnailUrl = valid[0]
}

// NormalizeAll runs Normalize over a batch with at most maxParallel checks in
// flight. This only runs during seeding, never on the request path.
func (c *Checker) NormalizeAll(ctx context.Context, props []*models.Property, fallback string, maxParallel int64) {
	if maxParallel < 1 {
		maxParallel = 1
	}
	sem := semaphore.NewWeighted(maxParallel)

	for _, p := range props {
		if err := sem.Acquire(ctx, 1); err != nil {
			slog.Warn("Image validation batch interrupted", "error", err)
			return
		}
		go func(p *models.Property) {
			defer sem.Release(1)
			c.Normalize(ctx, p, fallback)
		}(p)
	}

	// wait for the stragglers
	if err := sem.Acquire(ctx, maxParallel); err != nil {
		slog.Warn("Image validation batch interrupted", "error", err)
		return
	}
	sem.Release(maxParallel)
}
