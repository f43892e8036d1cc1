package catalog

import (
	"strings"

	"github.com/KirkDiggler/vop-sheet/internal/errors"
)

// IndexByName maps each item's name to the item. When names repeat the first
// occurrence is kept, and an AlreadyExists error listing the repeated names is
// returned together with the complete index.
func IndexByName[T any](items []T, name func(T) string) (map[string]T, error) {
	index := make(map[string]T, len(items))
	var dups []string
	seen := make(map[string]bool)

	for _, item := range items {
		key := strings.TrimSpace(name(item))
		if key == "" {
			continue
		}
		if _, ok := index[key]; ok {
			if !seen[key] {
				dups = append(dups, key)
				seen[key] = true
			}
			continue
		}
		index[key] = item
	}

	if len(dups) > 0 {
		return index, errors.AlreadyExistsf("duplicate catalog names: %s", strings.Join(dups, ", ")).
			WithMeta("duplicates", dups)
	}
	return index, nil
}

func duplicates(names []string) []string {
	_, err := IndexByName(names, func(s string) string { return s })
	if err == nil {
		return nil
	}
	dups, _ := errors.GetMeta(err)["duplicates"].([]string)
	return dups
}
