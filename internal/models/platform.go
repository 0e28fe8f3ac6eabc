package models

import "strings"

// Platform discovery-origin tag
type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformManual    Platform = "manual"
)

// DiscoveryPlatforms platforms with a source connector, in dispatch order
var DiscoveryPlatforms = []Platform{PlatformTikTok, PlatformInstagram}

// ParseDiscoveryPlatform resolves a request tag to a discoverable platform
func ParseDiscoveryPlatform(s string) (Platform, bool) {
	p := Platform(strings.TrimSpace(s))
	for _, known := range DiscoveryPlatforms {
		if p == known {
			return p, true
		}
	}
	return "", false
}
