package country

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed data/countries.json
var defaultData []byte

// ErrEmptyTable is returned when the reference table has no records.
var ErrEmptyTable = errors.New("empty reference table")

// IntegrityError reports a malformed reference table.
type IntegrityError struct {
	Code   string // offending record, empty for table-level problems
	Reason string
	Err    error
}

func (e *IntegrityError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("reference table: record %q: %s", e.Code, e.Reason)
	}
	return fmt.Sprintf("reference table: %s", e.Reason)
}

func (e *IntegrityError) Unwrap() error { return e.Err }

// Table is the read-only, ordered collection of country records.
type Table struct {
	countries []Country
	byCode    map[string]int
}

// NewTable builds a Table from records. The slice is copied.
func NewTable(countries []Country) *Table {
	t := &Table{
		countries: make([]Country, len(countries)),
		byCode:    make(map[string]int, len(countries)),
	}
	copy(t.countries, countries)
	for i, c := range t.countries {
		if _, dup := t.byCode[c.Code]; !dup {
			t.byCode[c.Code] = i
		}
	}
	return t
}

// Load decodes a JSON array of records and validates the result.
func Load(r io.Reader) (*Table, error) {
	var countries []Country
	if err := json.NewDecoder(r).Decode(&countries); err != nil {
		return nil, &IntegrityError{Reason: "decode", Err: err}
	}
	t := NewTable(countries)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadFile loads a reference table from a JSON file on disk.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference table: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the embedded reference table.
func Default() (*Table, error) {
	return Load(bytes.NewReader(defaultData))
}

// Validate checks the table invariants: at least one record, unique codes,
// and non-empty name, capital and currency in every supported language.
func (t *Table) Validate() error {
	if t == nil || len(t.countries) == 0 {
		return &IntegrityError{Reason: "no countries", Err: ErrEmptyTable}
	}

	seen := make(map[string]bool, len(t.countries))
	for i, c := range t.countries {
		if strings.TrimSpace(c.Code) == "" {
			return &IntegrityError{Reason: fmt.Sprintf("record %d has no code", i)}
		}
		if seen[c.Code] {
			return &IntegrityError{Code: c.Code, Reason: "duplicate code"}
		}
		seen[c.Code] = true

		for _, f := range []struct {
			name, value string
		}{
			{"name", c.Name},
			{"nameKm", c.NameKm},
			{"capital", c.Capital},
			{"capitalKm", c.CapitalKm},
			{"currency", c.Currency},
			{"currencyKm", c.CurrencyKm},
		} {
			if strings.TrimSpace(f.value) == "" {
				return &IntegrityError{Code: c.Code, Reason: "missing " + f.name}
			}
		}
	}
	return nil
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.countries)
}

// At returns the record at index i.
func (t *Table) At(i int) Country {
	return t.countries[i]
}

// All returns a copy of every record in table order.
func (t *Table) All() []Country {
	if t == nil {
		return nil
	}
	out := make([]Country, len(t.countries))
	copy(out, t.countries)
	return out
}

// ByCode looks up a record by its code.
func (t *Table) ByCode(code string) (Country, bool) {
	if t == nil {
		return Country{}, false
	}
	i, ok := t.byCode[code]
	if !ok {
		return Country{}, false
	}
	return t.countries[i], true
}
