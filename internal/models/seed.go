package models

import "time"

// SeedStores verified NYC stores with fixed coordinates (no geocoding)
func SeedStores() []Store {
	return []Store{
		{
			Name:            "Grace Street Coffee & Desserts",
			Address:         "17 W 32nd St, New York, NY 10001, USA",
			Lat:             40.7484,
			Lng:             -73.987,
			Verified:        true,
			VerifiedSources: []string{"TikTok: @cookieenthusiast", "Instagram: @gracestreet"},
			DiscoveredFrom:  PlatformManual,
			DiscoveredAt:    time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			Name:            "Bear Donut",
			Address:         "40 W 31st St, New York, NY 10001, USA",
			Lat:             40.7472,
			Lng:             -73.9882,
			Verified:        true,
			VerifiedSources: []string{"Instagram: @beardonutinc"},
			DiscoveredFrom:  PlatformManual,
			DiscoveredAt:    time.Date(2026, 1, 22, 0, 0, 0, 0, time.UTC),
		},
		{
			Name:            "Seoul Sweets",
			Address:         "308 5th Ave, New York, NY 10001, USA",
			Lat:             40.7488,
			Lng:             -73.9854,
			Verified:        true,
			VerifiedSources: []string{"TikTok: @seoulsweetsnyc", "Instagram: @seoulsweetsnyc"},
			DiscoveredFrom:  PlatformManual,
			DiscoveredAt:    time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}
