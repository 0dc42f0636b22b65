// Package store owns the ordered task list, its single-level undo buffer
// and its JSON persistence.
package store

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Priority bounds. Higher is more urgent.
const (
	MinPriority = 1
	MaxPriority = 10
)

// Color is an RGBA color with unassociated alpha. It serializes as a
// four element JSON array in red, green, blue, alpha order.
type Color [4]uint8

// RGBA builds a Color from its channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{r, g, b, a}
}

// Hex returns the color as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

// ParseHex parses "#rrggbb" or "#rrggbbaa". The leading '#' is optional
// and alpha defaults to opaque.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	c := Color{b[0], b[1], b[2], 255}
	if len(b) == 4 {
		c[3] = b[3]
	}
	return c, nil
}

// Luminance returns the relative brightness of the color in [0, 1].
func (c Color) Luminance() float64 {
	return (0.299*float64(c[0]) + 0.587*float64(c[1]) + 0.114*float64(c[2])) / 255
}

// Named colors used for new tasks and the preset swatches.
var (
	White       = RGBA(255, 255, 255, 255)
	LightGreen  = RGBA(144, 238, 144, 255)
	LightYellow = RGBA(255, 255, 224, 255)
	LightRed    = RGBA(255, 128, 128, 255)
	LightBlue   = RGBA(140, 160, 255, 255)
	DarkRed     = RGBA(139, 0, 0, 255)
	DarkGreen   = RGBA(0, 100, 0, 255)
)

// Presets are the swatches offered for bulk recoloring, in display order.
var Presets = []Color{
	LightGreen,
	LightYellow,
	LightRed,
	LightBlue,
	White,
	DarkRed,
	DarkGreen,
}

// Task is a single to-do item.
type Task struct {
	// ID is assigned on creation and on load. It is never written to disk.
	ID       string `json:"-"`
	Text     string `json:"text"`
	Priority int    `json:"priority"`
	Color    Color  `json:"color"`
	Selected bool   `json:"selected"`
}

// NewTask creates an unselected task with a fresh ID. The text is trimmed
// and the priority clamped; an empty text yields ErrEmptyText.
func NewTask(text string, priority int, color Color) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, ErrEmptyText
	}
	return Task{
		ID:       uuid.NewString(),
		Text:     text,
		Priority: ClampPriority(priority),
		Color:    color,
	}, nil
}

// ClampPriority limits p to [MinPriority, MaxPriority].
func ClampPriority(p int) int {
	return clamp(p, MinPriority, MaxPriority)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
