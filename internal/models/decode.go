package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// timestampLayouts ISO-8601 forms accepted on read; zoneless values are UTC
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp reads a persisted discovery timestamp: RFC3339 with or
// without fraction, a zoneless date-time or a bare date
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// decodeTimestamp string timestamp, epoch milliseconds, or null/absent (zero time)
func decodeTimestamp(raw json.RawMessage) (time.Time, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return time.Time{}, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}, err
		}
		if s == "" {
			return time.Time{}, nil
		}
		return ParseTimestamp(s)
	}

	ms, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized timestamp %s", raw)
	}
	return time.UnixMilli(int64(ms)).UTC(), nil
}

// decodeID string or JSON-number identifier
func decodeID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("unrecognized id %s", raw)
	}
	return n.String(), nil
}

// UnmarshalJSON accepts the id and timestamp forms older files carry
func (s *Store) UnmarshalJSON(b []byte) error {
	type plain Store
	aux := struct {
		*plain
		ID           json.RawMessage `json:"id"`
		DiscoveredAt json.RawMessage `json:"discoveredAt"`
	}{plain: (*plain)(s)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	var err error
	if s.ID, err = decodeID(aux.ID); err != nil {
		return err
	}
	if s.DiscoveredAt, err = decodeTimestamp(aux.DiscoveredAt); err != nil {
		return err
	}
	return nil
}

// UnmarshalJSON accepts the id and timestamp forms older files carry
func (c *Candidate) UnmarshalJSON(b []byte) error {
	type plain Candidate
	aux := struct {
		*plain
		ID           json.RawMessage `json:"id"`
		DiscoveredAt json.RawMessage `json:"discoveredAt"`
	}{plain: (*plain)(c)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	var err error
	if c.ID, err = decodeID(aux.ID); err != nil {
		return err
	}
	if c.DiscoveredAt, err = decodeTimestamp(aux.DiscoveredAt); err != nil {
		return err
	}
	return nil
}
