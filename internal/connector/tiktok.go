package connector

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ggorockee/cookiemap/internal/logger"
	"github.com/ggorockee/cookiemap/internal/models"
)

// TikTokPost TikTok-shaped post
type TikTokPost struct {
	ID           string `json:"id"`
	AuthorHandle string `json:"authorHandle"`
	Caption      string `json:"caption"`
	PostURL      string `json:"postUrl"`
	LocationName string `json:"locationName,omitempty"`
}

// Raw platform-neutral view
func (p TikTokPost) Raw() models.RawPost {
	return models.RawPost{
		ID:           p.ID,
		Caption:      p.Caption,
		Author:       p.AuthorHandle,
		Permalink:    p.PostURL,
		LocationHint: p.LocationName,
	}
}

// TikTokResponse search API response
type TikTokResponse struct {
	Posts []TikTokPost `json:"posts"`
}

var tiktokCanned = []TikTokPost{
	{
		ID:           "tiktok_placeholder_1",
		AuthorHandle: "@cookiehunter",
		Caption:      "Dubai chocolate chewy cookie at Grace Street in NYC 🍪",
		PostURL:      "https://www.tiktok.com/@cookiehunter/video/placeholder1",
		LocationName: "New York, NY",
	},
	{
		ID:           "tiktok_placeholder_2",
		AuthorHandle: "@dessertlover",
		Caption:      "Tried the dubai chewy cookie at Bear Donut midtown",
		PostURL:      "https://www.tiktok.com/@dessertlover/video/placeholder2",
		LocationName: "New York, NY",
	},
}

// TikTokPlaceholder canned TikTok results; no network, no API key
type TikTokPlaceholder struct {
	delay time.Duration
}

// NewTikTokPlaceholder placeholder that answers after delay
func NewTikTokPlaceholder(delay time.Duration) *TikTokPlaceholder {
	return &TikTokPlaceholder{delay: delay}
}

// Platform tiktok
func (c *TikTokPlaceholder) Platform() models.Platform {
	return models.PlatformTikTok
}

// Search returns the canned posts regardless of keywords
func (c *TikTokPlaceholder) Search(ctx context.Context, keywords []string) ([]models.RawPost, error) {
	log := logger.GetLogger("connector.tiktok")

	if err := wait(ctx, c.delay); err != nil {
		return nil, err
	}

	posts := make([]models.RawPost, 0, len(tiktokCanned))
	for _, p := range tiktokCanned {
		posts = append(posts, p.Raw())
	}

	log.Infof("placeholder search %v: %d posts", keywords, len(posts))
	return posts, nil
}

// NewTikTokHTTP live TikTok connector against baseURL
func NewTikTokHTTP(baseURL, apiKey string, timeout time.Duration) *HTTPConnector {
	return newHTTPConnector(models.PlatformTikTok, baseURL, apiKey, timeout, decodeTikTok)
}

func decodeTikTok(body []byte) ([]models.RawPost, error) {
	var resp TikTokResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	posts := make([]models.RawPost, 0, len(resp.Posts))
	for _, p := range resp.Posts {
		posts = append(posts, p.Raw())
	}
	return posts, nil
}
