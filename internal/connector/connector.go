// Package connector fetches raw posts from social platforms. Each platform
// has a placeholder variant returning canned posts and a live HTTP variant.
package connector

import (
	"context"
	"errors"
	"time"

	"github.com/ggorockee/cookiemap/internal/apperr"
	"github.com/ggorockee/cookiemap/internal/config"
	"github.com/ggorockee/cookiemap/internal/logger"
	"github.com/ggorockee/cookiemap/internal/models"
)

// Connector read-only keyword search against one platform
type Connector interface {
	// Platform origin tag of the posts returned
	Platform() models.Platform
	// Search posts mentioning keywords
	Search(ctx context.Context, keywords []string) ([]models.RawPost, error)
}

// Registry one connector per discoverable platform
type Registry struct {
	connectors map[models.Platform]Connector
}

// NewRegistry registry over the given connectors, keyed by their platform
func NewRegistry(connectors ...Connector) *Registry {
	r := &Registry{connectors: make(map[models.Platform]Connector)}
	for _, c := range connectors {
		r.connectors[c.Platform()] = c
	}
	return r
}

// NewRegistryFromConfig live connectors where an API URL is configured,
// placeholders otherwise, all behind the configured timeout
func NewRegistryFromConfig(cfg *config.Config) *Registry {
	log := logger.GetLogger("connector")
	cc := cfg.Connector

	var tiktok, instagram Connector
	if cc.TikTokAPIURL != "" {
		log.Infof("TikTok: live connector %s", cc.TikTokAPIURL)
		tiktok = NewTikTokHTTP(cc.TikTokAPIURL, cc.APIKey, cc.Timeout)
	} else {
		tiktok = NewTikTokPlaceholder(cc.PlaceholderWait)
	}
	if cc.InstagramAPIURL != "" {
		log.Infof("Instagram: live connector %s", cc.InstagramAPIURL)
		instagram = NewInstagramHTTP(cc.InstagramAPIURL, cc.APIKey, cc.Timeout)
	} else {
		instagram = NewInstagramPlaceholder(cc.PlaceholderWait)
	}

	return NewRegistry(
		WithTimeout(tiktok, cc.Timeout),
		WithTimeout(instagram, cc.Timeout),
	)
}

// Get connector for platform
func (r *Registry) Get(p models.Platform) (Connector, bool) {
	c, ok := r.connectors[p]
	return c, ok
}

// Platforms registered platforms in dispatch order
func (r *Registry) Platforms() []models.Platform {
	var out []models.Platform
	for _, p := range models.DiscoveryPlatforms {
		if _, ok := r.connectors[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

// guarded bounds every search by a timeout and reports failures as connector errors
type guarded struct {
	inner   Connector
	timeout time.Duration
}

// WithTimeout wraps c so a hung search fails with a ConnectorError after d
func WithTimeout(c Connector, d time.Duration) Connector {
	return &guarded{inner: c, timeout: d}
}

func (g *guarded) Platform() models.Platform {
	return g.inner.Platform()
}

func (g *guarded) Search(ctx context.Context, keywords []string) ([]models.RawPost, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	posts, err := g.inner.Search(ctx, keywords)
	if err != nil {
		if errors.Is(err, apperr.ErrConnector) {
			return nil, err
		}
		return nil, apperr.Connector(string(g.inner.Platform()), err)
	}
	return posts, nil
}

// wait simulated network latency, cut short by ctx
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
