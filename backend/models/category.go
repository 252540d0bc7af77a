package models

import (
	"fmt"
	"strings"
)

// Category groups goals by life area.
type Category string

const (
	Health        Category = "Health"
	Finance       Category = "Finance"
	Skills        Category = "Skills"
	Relationships Category = "Relationships"
	Work          Category = "Work"
	Other         Category = "Other"

	// NoCategory stands in for the top category when there are no goals.
	NoCategory Category = "N/A"
)

// Categories lists the selectable goal categories in display order.
var Categories = []Category{Health, Finance, Skills, Relationships, Work, Other}

// CategoryLabels maps each category to its Spanish display label.
var CategoryLabels = map[Category]string{
	Health:        "Salud",
	Finance:       "Finanzas",
	Skills:        "Habilidades",
	Relationships: "Relaciones",
	Work:          "Trabajo",
	Other:         "Otro",
	NoCategory:    "N/A",
}

// Label returns the display label, or the raw value for unknown categories.
func (c Category) Label() string {
	if label, ok := CategoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// ParseCategory accepts either the enum name or its display label, ignoring case.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, c.Label()) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// UnmarshalText lets form and YAML decoders accept labels as well as enum names.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
