package match

import (
	"sort"
	"strings"
)

// Suggest returns up to limit candidates closest to name. A candidate
// qualifies when it differs only by case or its edit distance is at most
// half the longer of the two lengths. Ties keep candidate order.
func Suggest(name string, candidates []string, limit int) []string {
	if limit <= 0 || name == "" {
		return nil
	}

	type scored struct {
		key  string
		dist int
	}

	var hits []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		if strings.EqualFold(c, name) {
			hits = append(hits, scored{key: c, dist: 0})
			continue
		}

		d := Levenshtein(name, c)
		if d*2 <= max(len([]rune(name)), len([]rune(c))) {
			hits = append(hits, scored{key: c, dist: d})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].dist < hits[j].dist })

	if len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.key)
	}

	return out
}
