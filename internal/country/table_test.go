package country

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableIsValid(t *testing.T) {
	tbl, err := Default()
	require.NoError(t, err)
	assert.Greater(t, tbl.Len(), 4)

	kh, ok := tbl.ByCode("KH")
	require.True(t, ok)
	assert.Equal(t, "Phnom Penh", kh.Capital)
	assert.Equal(t, "Asia", kh.Continent)
}

func TestDefaultTableFieldsUnique(t *testing.T) {
	tbl, err := Default()
	require.NoError(t, err)

	for _, lang := range []Lang{LangEnglish, LangKhmer} {
		names := map[string]string{}
		capitals := map[string]string{}
		currencies := map[string]string{}
		for _, c := range tbl.All() {
			for _, f := range []struct {
				seen  map[string]string
				value string
			}{
				{names, c.LocalName(lang)},
				{capitals, c.LocalCapital(lang)},
				{currencies, c.LocalCurrency(lang)},
			} {
				if prev, dup := f.seen[f.value]; dup {
					t.Errorf("lang %s: %q shared by %s and %s", lang, f.value, prev, c.Code)
				}
				f.seen[f.value] = c.Code
			}
		}
	}
}

func TestLoadEmptyTable(t *testing.T) {
	_, err := Load(strings.NewReader(`[]`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyTable))

	var ie *IntegrityError
	assert.True(t, errors.As(err, &ie))
}

func TestValidate(t *testing.T) {
	good := Country{
		Code: "AA", Name: "A", NameKm: "ក", Capital: "Ac", CapitalKm: "កក",
		Currency: "Acu", CurrencyKm: "កកក",
	}

	tests := []struct {
		name      string
		countries []Country
		wantCode  string
	}{
		{"duplicate code", []Country{good, good}, "AA"},
		{"missing capital", []Country{func() Country { c := good; c.Capital = " "; return c }()}, "AA"},
		{"missing khmer currency", []Country{func() Country { c := good; c.CurrencyKm = ""; return c }()}, "AA"},
		{"missing code", []Country{func() Country { c := good; c.Code = ""; return c }()}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewTable(tt.countries).Validate()
			var ie *IntegrityError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tt.wantCode, ie.Code)
		})
	}

	require.NoError(t, NewTable([]Country{good}).Validate())
}

func TestLoadMalformedJSON(t *testing.T) {
	_, err := Load(strings.NewReader(`{"code":`))
	var ie *IntegrityError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "decode", ie.Reason)
}

func TestAllReturnsCopy(t *testing.T) {
	tbl := NewTable([]Country{{Code: "AA", Name: "A"}})
	all := tbl.All()
	all[0].Name = "changed"
	assert.Equal(t, "A", tbl.At(0).Name)
}

func TestLocalizedFields(t *testing.T) {
	c := Country{Name: "Cambodia", NameKm: "កម្ពុជា", Capital: "Phnom Penh", CapitalKm: "ភ្នំពេញ", Currency: "Riel", CurrencyKm: "រៀល"}
	assert.Equal(t, "Cambodia", c.LocalName(LangEnglish))
	assert.Equal(t, "កម្ពុជា", c.LocalName(LangKhmer))
	assert.Equal(t, "ភ្នំពេញ", c.LocalCapital(LangKhmer))
	assert.Equal(t, "Riel", c.LocalCurrency(LangEnglish))
}

func TestFlag(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"KH", "\U0001F1F0\U0001F1ED"},
		{"fr", "\U0001F1EB\U0001F1F7"},
		{"GBR", "GBR"},
		{"1A", "1A"},
	}
	for _, tt := range tests {
		got := Country{Code: tt.code}.Flag()
		if got != tt.want {
			t.Errorf("Flag(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestParseLang(t *testing.T) {
	for in, want := range map[string]Lang{"en": LangEnglish, "English": LangEnglish, "km": LangKhmer, " khmer ": LangKhmer} {
		got, err := ParseLang(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseLang("fr")
	assert.Error(t, err)

	assert.Equal(t, LangKhmer, LangEnglish.Toggle())
	assert.Equal(t, LangEnglish, LangKhmer.Toggle())
}
