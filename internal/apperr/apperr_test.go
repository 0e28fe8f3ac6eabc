package apperr

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestSentinels(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		err := fmt.Errorf("run: %w", Validation("keywords", "must not be empty"))
		if !errors.Is(err, ErrValidation) {
			t.Error("expected ErrValidation")
		}
		if err.Error() != "run: keywords: must not be empty" {
			t.Errorf("unexpected message: %s", err.Error())
		}
	})

	t.Run("not found", func(t *testing.T) {
		err := NotFound("candidate", "42")
		if !errors.Is(err, ErrNotFound) {
			t.Error("expected ErrNotFound")
		}
		var nf *NotFoundError
		if !errors.As(err, &nf) || nf.ID != "42" {
			t.Errorf("expected NotFoundError with id 42, got %v", err)
		}
	})

	t.Run("jurisdiction", func(t *testing.T) {
		err := &JurisdictionError{Name: "Dubai Mall", Lat: 25.2, Lng: 55.3}
		if !errors.Is(err, ErrOutOfRegion) {
			t.Error("expected ErrOutOfRegion")
		}
		if errors.Is(err, ErrNotFound) {
			t.Error("jurisdiction error must not look like not-found")
		}
	})

	t.Run("connector keeps cause", func(t *testing.T) {
		err := Connector("tiktok", context.DeadlineExceeded)
		if !errors.Is(err, ErrConnector) {
			t.Error("expected ErrConnector")
		}
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Error("expected cause to be visible")
		}
		var ce *ConnectorError
		if !errors.As(err, &ce) || ce.Platform != "tiktok" {
			t.Errorf("expected tiktok ConnectorError, got %v", err)
		}
	})
}
