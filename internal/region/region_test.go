package region

import "testing"

func TestIsInRegion(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		want     bool
	}{
		{"manhattan", 40.7484, -73.987, true},
		{"south-west corner", 24.5, -125, true},
		{"north-east corner", 49.5, -66, true},
		{"midpoint", 37.0, -95.5, true},
		{"just south", 24.4999, -80, false},
		{"just north", 49.5001, -100, false},
		{"just west", 40, -125.0001, false},
		{"just east", 40, -65.9999, false},
		{"honolulu", 21.3069, -157.8583, false},
		{"dubai", 25.2048, 55.2708, false},
		{"zero", 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsInRegion(tc.lat, tc.lng); got != tc.want {
				t.Errorf("IsInRegion(%v, %v) = %v, want %v", tc.lat, tc.lng, got, tc.want)
			}
		})
	}
}

func TestIsRegionCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"NY", true},
		{"ny", true},
		{" tx ", true},
		{"Dc", true},
		{"HI", true},
		{"AK", true},
		{"PR", false},
		{"GU", false},
		{"N", false},
		{"NYC", false},
		{"", false},
		{"   ", false},
		{"New York", false},
	}

	for _, tc := range tests {
		if got := IsRegionCode(tc.code); got != tc.want {
			t.Errorf("IsRegionCode(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestCodeSetSize(t *testing.T) {
	if Codes() != 51 {
		t.Errorf("expected 51 region codes, got %d", Codes())
	}
}

func TestMidpoint(t *testing.T) {
	lat, lng := US.Midpoint()
	if lat != 37.0 || lng != -95.5 {
		t.Errorf("expected (37, -95.5), got (%v, %v)", lat, lng)
	}
}
