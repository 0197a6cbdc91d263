package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/termdesk/internal/menu"
)

// FilterItems keeps the items whose label fuzzy-matches query, falling back
// to a substring match on label or id. Order is preserved.
func FilterItems(items []menu.Item, query string) []menu.Item {
	q := strings.TrimSpace(query)
	if q == "" {
		return cloneItems(items)
	}
	ranks := fuzzy.RankFindNormalizedFold(q, labels(items))
	if len(ranks) > 0 {
		hit := make(map[int]bool, len(ranks))
		for _, r := range ranks {
			hit[r.OriginalIndex] = true
		}
		out := make([]menu.Item, 0, len(hit))
		for i, item := range items {
			if hit[i] {
				out = append(out, item)
			}
		}
		return out
	}
	lower := strings.ToLower(q)
	out := make([]menu.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), lower) || strings.Contains(strings.ToLower(item.ID), lower) {
			out = append(out, item)
		}
	}
	return out
}

// BestMatchIndex picks the row to highlight for query: an exact label or id
// match, then a label prefix, then the closest fuzzy match.
func BestMatchIndex(items []menu.Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	q := strings.TrimSpace(query)
	if q == "" {
		return 0
	}
	lower := strings.ToLower(q)
	for i, item := range items {
		if strings.EqualFold(item.Label, q) || strings.EqualFold(item.ID, q) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), lower) || strings.HasPrefix(strings.ToLower(item.ID), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(q, labels(items))
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance || (r.Distance == best.Distance && r.OriginalIndex < best.OriginalIndex) {
			best = r
		}
	}
	return best.OriginalIndex
}

func labels(items []menu.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}
