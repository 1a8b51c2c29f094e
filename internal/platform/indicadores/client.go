package indicadores

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Client fetches the daily UF and UTM values from the public indicator API.
// Values are cached; when a fetch fails the last known value is served, and
// before any successful fetch the configured fallback applies.
type Client struct {
	baseURL     string
	http        *http.Client
	fallbackUF  float64
	fallbackUTM float64

	mu        sync.RWMutex
	uf        float64
	utm       float64
	fetchedAt time.Time
}

func New(baseURL string, fallbackUF, fallbackUTM float64) *Client {
	return &Client{
		baseURL:     baseURL,
		http:        &http.Client{Timeout: 10 * time.Second},
		fallbackUF:  fallbackUF,
		fallbackUTM: fallbackUTM,
	}
}

type serieResponse struct {
	Serie []struct {
		Fecha time.Time `json:"fecha"`
		Valor float64   `json:"valor"`
	} `json:"serie"`
}

// Value returns the day's UF value. Never fails: a stale cache or the
// configured fallback stands in for an unreachable source.
func (c *Client) Value(ctx context.Context) float64 {
	c.mu.RLock()
	uf := c.uf
	fresh := sameDay(c.fetchedAt, time.Now())
	c.mu.RUnlock()
	if uf > 0 && fresh {
		return uf
	}

	if err := c.Refresh(ctx); err != nil {
		slog.Warn("UF value fetch failed", "err", err)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.uf > 0 {
		return c.uf
	}
	return c.fallbackUF
}

// UTM returns the month's UTM value with the same degradation rules.
func (c *Client) UTM(ctx context.Context) float64 {
	c.mu.RLock()
	utm := c.utm
	c.mu.RUnlock()
	if utm > 0 {
		return utm
	}

	if err := c.Refresh(ctx); err != nil {
		slog.Warn("UTM value fetch failed", "err", err)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.utm > 0 {
		return c.utm
	}
	return c.fallbackUTM
}

// Refresh fetches both indicators and updates the cache.
func (c *Client) Refresh(ctx context.Context) error {
	uf, err := c.fetch(ctx, "uf")
	if err != nil {
		return err
	}
	utm, err := c.fetch(ctx, "utm")
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.uf = uf
	c.utm = utm
	c.fetchedAt = time.Now()
	c.mu.Unlock()
	return nil
}

func (c *Client) fetch(ctx context.Context, indicator string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", c.baseURL, indicator), nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("indicator %s: unexpected status %d", indicator, resp.StatusCode)
	}

	var payload serieResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, err
	}
	if len(payload.Serie) == 0 || payload.Serie[0].Valor <= 0 {
		return 0, fmt.Errorf("indicator %s: empty series", indicator)
	}
	return payload.Serie[0].Valor, nil
}

// Start refreshes the cache on a fixed interval until ctx is done.
func (c *Client) Start(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := c.Refresh(ctx); err != nil {
					slog.Warn("indicator refresh failed", "err", err)
				}
			}
		}
	}()
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
