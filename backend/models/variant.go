package models

import (
	"fmt"
	"strings"
)

// Variant selects which flavour of the app is served.
type Variant string

const (
	VariantPersonal Variant = "personal"
	VariantAnnual   Variant = "annual"
	VariantGoals    Variant = "goals"
)

// ParseVariant parses a variant name, ignoring case and surrounding spaces.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantPersonal, VariantAnnual, VariantGoals:
		return v, nil
	default:
		return "", fmt.Errorf("unknown variant %q (want personal, annual or goals)", s)
	}
}

// ExportEnabled reports whether the variant offers the summary image download.
func (v Variant) ExportEnabled() bool {
	return v == VariantAnnual || v == VariantGoals
}

// ExportFilename is the download name of the summary image, empty when export is disabled.
func (v Variant) ExportFilename() string {
	switch v {
	case VariantAnnual:
		return "resumen_anual.png"
	case VariantGoals:
		return "resumen_metas.png"
	default:
		return ""
	}
}

// Title is the heading drawn at the top of the summary image.
func (v Variant) Title() string {
	if v == VariantGoals {
		return "Resumen de metas"
	}
	return "Resumen anual"
}
