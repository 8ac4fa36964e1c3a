// Package library searches the country reference table.
package library

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/abhisek/vexillo/internal/country"
)

// AllContinents is the continent filter that matches every country.
const AllContinents = "All"

// Continents returns AllContinents followed by each distinct continent in
// table order.
func Continents(table *country.Table) []string {
	out := []string{AllContinents}
	seen := make(map[string]bool)
	for _, c := range table.All() {
		if !seen[c.Continent] {
			seen[c.Continent] = true
			out = append(out, c.Continent)
		}
	}
	return out
}

// Search returns the countries whose primary name or capital contains query
// under case folding, or whose Khmer name or capital contains query as
// typed. An empty query matches everything. Results keep table order.
func Search(table *country.Table, query, continent string) []country.Country {
	fold := cases.Fold()
	q := strings.TrimSpace(query)
	folded := fold.String(q)

	var out []country.Country
	for _, c := range table.All() {
		if continent != "" && continent != AllContinents && c.Continent != continent {
			continue
		}
		if q == "" || matches(fold, c, q, folded) {
			out = append(out, c)
		}
	}
	return out
}

func matches(fold cases.Caser, c country.Country, raw, folded string) bool {
	return strings.Contains(fold.String(c.Name), folded) ||
		strings.Contains(fold.String(c.Capital), folded) ||
		strings.Contains(c.NameKm, raw) ||
		strings.Contains(c.CapitalKm, raw)
}
