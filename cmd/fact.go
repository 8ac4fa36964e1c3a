package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"

	"github.com/abhisek/vexillo/internal/country"
	"github.com/abhisek/vexillo/internal/facts"
)

var factCmd = &cobra.Command{
	Use:   "fact <country>",
	Short: "Print a fun fact about a country",
	Long:  "Looks up one fun fact through the configured LLM provider. The country may be\ngiven by its two-letter code or its name in either language.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log := newLogger(cmd, cfg)
		defer func() { _ = log.Sync() }()

		tbl, err := loadTable(cfg, log)
		if err != nil {
			return err
		}
		c, ok := findCountry(tbl, args[0])
		if !ok {
			return fmt.Errorf("no country matches %q", args[0])
		}

		repo, closeRepo := openDiagnostics(cfg, log)
		defer closeRepo()

		client, err := factClient(cmd.Context(), cfg, repo, log)
		if err != nil {
			return err
		}

		lang := cfg.Lang()
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", c.Flag(), c.LocalName(lang))
		fmt.Fprintln(cmd.OutOrStdout(), facts.Lookup(cmd.Context(), client, c.Name, lang, log))
		return nil
	},
}

// findCountry matches a code, an English name under case folding, or a
// Khmer name as typed.
func findCountry(tbl *country.Table, arg string) (country.Country, bool) {
	arg = strings.TrimSpace(arg)
	if c, ok := tbl.ByCode(strings.ToUpper(arg)); ok {
		return c, true
	}
	fold := cases.Fold()
	want := fold.String(arg)
	for _, c := range tbl.All() {
		if fold.String(c.Name) == want || c.NameKm == arg {
			return c, true
		}
	}
	return country.Country{}, false
}
