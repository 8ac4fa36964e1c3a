package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vexillo/internal/country"
)

func codes(cs []country.Country) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Code
	}
	return out
}

func defaultTable(t *testing.T) *country.Table {
	t.Helper()
	tbl, err := country.Default()
	require.NoError(t, err)
	return tbl
}

func TestContinents(t *testing.T) {
	got := Continents(defaultTable(t))
	assert.Equal(t, []string{"All", "Asia", "Europe", "Africa", "North America", "South America", "Oceania"}, got)
}

func TestContinents_TableOrder(t *testing.T) {
	tbl := country.NewTable([]country.Country{
		{Code: "BR", Continent: "South America"},
		{Code: "KH", Continent: "Asia"},
		{Code: "AR", Continent: "South America"},
	})
	assert.Equal(t, []string{"All", "South America", "Asia"}, Continents(tbl))
}

func TestSearch(t *testing.T) {
	tbl := defaultTable(t)

	tests := []struct {
		name      string
		query     string
		continent string
		want      []string
	}{
		{"capital exact", "Phnom Penh", "All", []string{"KH"}},
		{"capital lowercase", "phnom penh", AllContinents, []string{"KH"}},
		{"name uppercase", "CAMBODIA", "", []string{"KH"}},
		{"khmer name", "កម្ពុជា", "All", []string{"KH"}},
		{"khmer capital", "ភ្នំពេញ", "All", []string{"KH"}},
		{"continent filter excludes", "Phnom Penh", "Europe", nil},
		{"no match", "Atlantis", "All", nil},
		{"substring of name", "land", "Europe", []string{"CH", "PL"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := codes(Search(tbl, tt.query, tt.continent))
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	tbl := defaultTable(t)

	all := Search(tbl, "", AllContinents)
	assert.Len(t, all, tbl.Len())

	oceania := Search(tbl, "   ", "Oceania")
	assert.Equal(t, []string{"AU", "NZ", "FJ"}, codes(oceania))
	for _, c := range oceania {
		assert.Equal(t, "Oceania", c.Continent)
	}
}

func TestSearch_ContinentOnlyResultsMatchFilter(t *testing.T) {
	tbl := defaultTable(t)
	for _, cont := range Continents(tbl)[1:] {
		for _, c := range Search(tbl, "a", cont) {
			assert.Equal(t, cont, c.Continent)
		}
	}
}
