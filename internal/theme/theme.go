// Package theme switches between the light and dark palettes and keeps the
// choice in a durable store.
package theme

import (
	"context"
	"fmt"

	"github.com/handiism/album-catalog/internal/logger"
	"github.com/handiism/album-catalog/internal/storage"
)

// StorageKey is the store entry holding the chosen theme.
const StorageKey = "theme"

// Theme is a visual mode.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Default is used when nothing valid is stored.
const Default = Dark

// Parse maps a stored value to a Theme. Anything but "light" or "dark",
// including the empty string, is Default.
func Parse(s string) Theme {
	switch Theme(s) {
	case Light:
		return Light
	case Dark:
		return Dark
	default:
		return Default
	}
}

// ParseStrict is Parse for user input: unknown values are an error.
func ParseStrict(s string) (Theme, error) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("unknown theme %q (want light or dark)", s)
	}
}

// Other returns the opposite theme.
func (t Theme) Other() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// Icon is the indicator shown on the theme toggle: a sun in light mode and
// a moon in dark mode.
func (t Theme) Icon() string {
	if t == Light {
		return "☀"
	}
	return "☾"
}

func (t Theme) String() string {
	return string(t)
}

// Controller holds the current theme and persists changes.
type Controller struct {
	store   storage.Store
	log     *logger.Logger
	current Theme
}

// NewController creates a Controller starting at Default. Call Load to
// restore the saved choice.
func NewController(store storage.Store, log *logger.Logger) *Controller {
	return &Controller{store: store, log: log, current: Default}
}

// Current returns the active theme.
func (c *Controller) Current() Theme {
	return c.current
}

// Icon returns the indicator for the active theme.
func (c *Controller) Icon() string {
	return c.current.Icon()
}

// Load restores the saved theme. A missing or unrecognized value yields
// Default. Loading twice with the same stored value has the same result.
//
// A store read failure also yields Default and is returned for logging;
// the controller stays usable.
func (c *Controller) Load(ctx context.Context) (Theme, error) {
	value, _, err := c.store.Get(ctx, StorageKey)
	if err != nil {
		c.current = Default
		return c.current, fmt.Errorf("read theme: %w", err)
	}
	c.current = Parse(value)
	return c.current, nil
}

// Toggle flips the theme, persists it and returns the new value.
//
// The in-memory theme changes even when persisting fails; the error is
// logged and returned.
func (c *Controller) Toggle(ctx context.Context) (Theme, error) {
	return c.Set(ctx, c.current.Other())
}

// Set switches to t and persists it.
func (c *Controller) Set(ctx context.Context, t Theme) (Theme, error) {
	c.current = t
	if err := c.store.Set(ctx, StorageKey, string(t)); err != nil {
		c.log.Error(err, "failed to persist theme")
		return c.current, fmt.Errorf("save theme: %w", err)
	}
	c.log.Debug("theme set to " + string(t))
	return c.current, nil
}

// Reset forgets the saved theme and returns to Default.
func (c *Controller) Reset(ctx context.Context) (Theme, error) {
	c.current = Default
	if err := c.store.Delete(ctx, StorageKey); err != nil {
		c.log.Error(err, "failed to clear theme")
		return c.current, fmt.Errorf("clear theme: %w", err)
	}
	return c.current, nil
}
