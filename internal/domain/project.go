package domain

import (
	"fmt"
	"regexp"
	"time"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidColor reports whether s is a #RRGGBB hex string.
func ValidColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

type Project struct {
	ID        string
	UserID    string
	Name      string
	Color     string // hex color for display
	Order     *int   // manual sort position
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateColor checks that Color, when set, is a #RRGGBB hex string.
func (p *Project) ValidateColor() error {
	if p.Color == "" {
		return nil
	}
	if !hexColorPattern.MatchString(p.Color) {
		return fmt.Errorf("color %q must be a hex value like #4a90d9", p.Color)
	}
	return nil
}

type Category struct {
	ID        string
	UserID    string
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateColor checks that Color, when set, is a #RRGGBB hex string.
func (c *Category) ValidateColor() error {
	if c.Color == "" {
		return nil
	}
	if !hexColorPattern.MatchString(c.Color) {
		return fmt.Errorf("color %q must be a hex value like #4a90d9", c.Color)
	}
	return nil
}
