package equip

import (
	"sort"
	"strings"
)

// KnownModifiers returns every property name appearing on any item,
// lower-cased, de-duplicated and sorted.
func KnownModifiers(items []Item) []string {
	seen := make(map[string]struct{})
	for i := range items {
		for name := range items[i].Properties {
			seen[strings.ToLower(name)] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
