// Package grids configures the picker for each catalog-backed collection on
// the sheet: weapons, armor, spells and talents.
package grids

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/vop-sheet/internal/catalog"
	"github.com/KirkDiggler/vop-sheet/internal/picker"
	"github.com/KirkDiggler/vop-sheet/internal/pkg/collation"
)

// Filter names shared by the adapters
const (
	FilterAvailability = "availability"
	FilterType         = "type"
	FilterAbility      = "ability"
	FilterDomain       = "domain"
)

// Availability choices
const (
	Starting    = "Starting"
	NonStarting = "Non-starting"
)

// Talent table choices
const (
	TableMain      = "Main"
	TableSecondary = "Secondary"
)

func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsTruthy reports whether a catalog flag reads as yes: "yes", "y", "true"
// or "1", ignoring case and space.
func IsTruthy(v string) bool {
	switch norm(v) {
	case "yes", "y", "true", "1":
		return true
	default:
		return false
	}
}

// HasToken reports whether the comma separated list raw contains wanted,
// ignoring case and space.
func HasToken(raw, wanted string) bool {
	want := norm(wanted)
	if want == "" {
		return false
	}
	for _, tok := range strings.Split(raw, ",") {
		if norm(tok) == want {
			return true
		}
	}
	return false
}

// TypeChoices collects the distinct comma separated tokens of every item's
// type, in collated order. Tokens differing only in case are merged.
func TypeChoices[I any](items []I, typeOf func(I) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range items {
		for _, tok := range strings.Split(typeOf(item), ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" || seen[norm(tok)] {
				continue
			}
			seen[norm(tok)] = true
			out = append(out, tok)
		}
	}
	slices.SortFunc(out, collation.Compare)
	return out
}

func availabilityFilter[I any](starting func(I) string) picker.Filter[I] {
	return picker.Filter[I]{
		Name:    FilterAvailability,
		Label:   "Availability",
		Default: Starting,
		Choices: []string{Starting, NonStarting},
		Match: func(item I, v picker.Values) bool {
			yes := IsTruthy(starting(item))
			if v.Get(FilterAvailability) == NonStarting {
				return !yes
			}
			return yes
		},
	}
}

func typeFilter[I any](items []I, typeOf func(I) string) picker.Filter[I] {
	return picker.Filter[I]{
		Name:    FilterType,
		Label:   "Type",
		Choices: append([]string{""}, TypeChoices(items, typeOf)...),
		Match: func(item I, v picker.Values) bool {
			want := v.Get(FilterType)
			if strings.TrimSpace(want) == "" {
				return true
			}
			return HasToken(typeOf(item), want)
		},
	}
}

// recordPreview shows the named record fields, labelled by field name
func recordPreview[I any](record func(I) catalog.Record, fields ...string) []picker.PreviewField[I] {
	out := make([]picker.PreviewField[I], 0, len(fields))
	for _, f := range fields {
		f := f
		out = append(out, picker.PreviewField[I]{
			Label: f,
			Value: func(item I) (string, bool) { return record(item).Lookup(f) },
		})
	}
	return out
}
