package connector

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ggorockee/cookiemap/internal/logger"
	"github.com/ggorockee/cookiemap/internal/models"
)

// InstagramPost Instagram-shaped post
type InstagramPost struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Caption      string `json:"caption"`
	Permalink    string `json:"permalink"`
	LocationName string `json:"locationName,omitempty"`
}

// Raw platform-neutral view
func (p InstagramPost) Raw() models.RawPost {
	return models.RawPost{
		ID:           p.ID,
		Caption:      p.Caption,
		Author:       p.Username,
		Permalink:    p.Permalink,
		LocationHint: p.LocationName,
	}
}

// InstagramResponse Graph-style search response
type InstagramResponse struct {
	Data []InstagramPost `json:"data"`
}

var instagramCanned = []InstagramPost{
	{
		ID:           "ig_placeholder_1",
		Username:     "gracestreet",
		Caption:      "Dubai chocolate chewy cookie 🍪 17 W 32nd St",
		Permalink:    "https://www.instagram.com/p/placeholder1/",
		LocationName: "New York, NY",
	},
	{
		ID:           "ig_placeholder_2",
		Username:     "beardonutinc",
		Caption:      "dubai cookie alert! 40 W 31st",
		Permalink:    "https://www.instagram.com/p/placeholder2/",
		LocationName: "New York, NY",
	},
}

// InstagramPlaceholder canned Instagram results; no network, no API key
type InstagramPlaceholder struct {
	delay time.Duration
}

// NewInstagramPlaceholder placeholder that answers after delay
func NewInstagramPlaceholder(delay time.Duration) *InstagramPlaceholder {
	return &InstagramPlaceholder{delay: delay}
}

// Platform instagram
func (c *InstagramPlaceholder) Platform() models.Platform {
	return models.PlatformInstagram
}

// Search returns the canned posts regardless of keywords
func (c *InstagramPlaceholder) Search(ctx context.Context, keywords []string) ([]models.RawPost, error) {
	log := logger.GetLogger("connector.instagram")

	if err := wait(ctx, c.delay); err != nil {
		return nil, err
	}

	posts := make([]models.RawPost, 0, len(instagramCanned))
	for _, p := range instagramCanned {
		posts = append(posts, p.Raw())
	}

	log.Infof("placeholder search %v: %d posts", keywords, len(posts))
	return posts, nil
}

// NewInstagramHTTP live Instagram connector against baseURL
func NewInstagramHTTP(baseURL, apiKey string, timeout time.Duration) *HTTPConnector {
	return newHTTPConnector(models.PlatformInstagram, baseURL, apiKey, timeout, decodeInstagram)
}

func decodeInstagram(body []byte) ([]models.RawPost, error) {
	var resp InstagramResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	posts := make([]models.RawPost, 0, len(resp.Data))
	for _, p := range resp.Data {
		posts = append(posts, p.Raw())
	}
	return posts, nil
}
