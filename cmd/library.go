package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vexillo/internal/country"
	"github.com/abhisek/vexillo/internal/i18n"
	lib "github.com/abhisek/vexillo/internal/library"
	"github.com/abhisek/vexillo/internal/logger"
)

var libraryCmd = &cobra.Command{
	Use:   "library [query]",
	Short: "Search the country reference table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		tbl, err := loadTable(cfg, logger.Nop())
		if err != nil {
			return err
		}

		continent, _ := cmd.Flags().GetString("continent")
		if continent != "" && !knownContinent(tbl, continent) {
			return fmt.Errorf("unknown continent %q (have: %s)", continent, strings.Join(lib.Continents(tbl), ", "))
		}

		var query string
		if len(args) == 1 {
			query = args[0]
		}
		printCountries(cmd.OutOrStdout(), lib.Search(tbl, query, continent), cfg.Lang())
		return nil
	},
}

func knownContinent(tbl *country.Table, name string) bool {
	for _, c := range lib.Continents(tbl) {
		if c == name {
			return true
		}
	}
	return false
}

func printCountries(w io.Writer, countries []country.Country, lang country.Lang) {
	if len(countries) == 0 {
		fmt.Fprintln(w, i18n.T(lang, i18n.NoResults))
		return
	}
	for _, c := range countries {
		fmt.Fprintf(w, "%s  %-3s %-28s %-22s %s (%s)\n",
			c.Flag(), c.Code,
			truncate(c.LocalName(lang), 28),
			truncate(c.LocalCapital(lang), 22),
			c.LocalCurrency(lang), c.CurrencySymbol)
	}
}

func init() {
	libraryCmd.Flags().StringP("continent", "c", "", "Only list countries in this region (e.g. Asia)")
}
