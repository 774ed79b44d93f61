// Package geolocation models the device location provider consulted when the
// toilet store initializes and when an add-toilet flow begins.
package geolocation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/loofinder/internal/models"
)

// ErrLocationUnavailable is returned when the device denies or lacks geolocation.
var ErrLocationUnavailable = errors.New("location unavailable")

// DefaultCenter is used to seed the map when the user location is unknown (Colombo).
var DefaultCenter = models.Coordinate{Lat: 6.9271, Lng: 79.8612}

// DefaultTimeout bounds a single position lookup.
const DefaultTimeout = 5 * time.Second

// Locator resolves the current user position.
type Locator interface {
	CurrentPosition(ctx context.Context) (models.Coordinate, error)
}

// LocatorFunc adapts an ordinary function to the Locator interface.
type LocatorFunc func(ctx context.Context) (models.Coordinate, error)

// CurrentPosition calls f(ctx).
func (f LocatorFunc) CurrentPosition(ctx context.Context) (models.Coordinate, error) {
	return f(ctx)
}

// Static always reports the same position.
type Static struct {
	Position models.Coordinate
}

// NewStatic creates a locator fixed at the given position.
func NewStatic(lat, lng float64) *Static {
	return &Static{Position: models.Coordinate{Lat: lat, Lng: lng}}
}

// CurrentPosition returns the configured position.
func (s *Static) CurrentPosition(ctx context.Context) (models.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinate{}, err
	}
	return s.Position, nil
}

// Denied behaves like a device that refuses to share its location.
type Denied struct{}

// CurrentPosition always fails with ErrLocationUnavailable.
func (Denied) CurrentPosition(context.Context) (models.Coordinate, error) {
	return models.Coordinate{}, ErrLocationUnavailable
}

// Resolve performs a single position lookup bounded by timeout.
// Any failure, including a nil locator, a timeout or an out-of-range
// coordinate, is reported as ErrLocationUnavailable. There is no retry.
func Resolve(ctx context.Context, locator Locator, timeout time.Duration) (models.Coordinate, error) {
	if locator == nil {
		return models.Coordinate{}, ErrLocationUnavailable
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		pos models.Coordinate
		err error
	}
	done := make(chan result, 1)
	go func() {
		pos, err := locator.CurrentPosition(ctx)
		done <- result{pos: pos, err: err}
	}()

	select {
	case <-ctx.Done():
		return models.Coordinate{}, fmt.Errorf("%w: %v", ErrLocationUnavailable, ctx.Err())
	case r := <-done:
		if r.err != nil {
			if errors.Is(r.err, ErrLocationUnavailable) {
				return models.Coordinate{}, r.err
			}
			return models.Coordinate{}, fmt.Errorf("%w: %v", ErrLocationUnavailable, r.err)
		}
		if !r.pos.Valid() {
			return models.Coordinate{}, fmt.Errorf("%w: invalid coordinate %v", ErrLocationUnavailable, r.pos)
		}
		return r.pos, nil
	}
}

// PositionOrDefault resolves the user position, falling back to DefaultCenter.
// The boolean reports whether the position came from the locator.
func PositionOrDefault(ctx context.Context, locator Locator, timeout time.Duration) (models.Coordinate, bool) {
	pos, err := Resolve(ctx, locator, timeout)
	if err != nil {
		return DefaultCenter, false
	}
	return pos, true
}
