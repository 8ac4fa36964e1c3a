package quiz

// Config controls tier selection. Harder tiers unlock at higher levels;
// each threshold is compared against a single uniform draw r in [0,1).
type Config struct {
	// CapitalLevel is the first level that may ask for capitals.
	CapitalLevel int

	// CurrencyLevel is the first level that may ask for currencies.
	CurrencyLevel int

	// MidCapitalAbove: between CapitalLevel and CurrencyLevel,
	// r > MidCapitalAbove asks for the capital.
	MidCapitalAbove float64

	// HighCurrencyAbove: from CurrencyLevel on, r > HighCurrencyAbove asks
	// for the currency.
	HighCurrencyAbove float64

	// HighCapitalAbove: from CurrencyLevel on, otherwise r > HighCapitalAbove
	// asks for the capital.
	HighCapitalAbove float64
}

// DefaultConfig returns the standard tier thresholds.
func DefaultConfig() Config {
	return Config{
		CapitalLevel:      4,
		CurrencyLevel:     7,
		MidCapitalAbove:   0.5,
		HighCurrencyAbove: 0.6,
		HighCapitalAbove:  0.3,
	}
}

// PickTier maps a level and a uniform draw r to a tier.
func (c Config) PickTier(level int, r float64) Tier {
	switch {
	case level >= c.CurrencyLevel:
		if r > c.HighCurrencyAbove {
			return TierCurrency
		}
		if r > c.HighCapitalAbove {
			return TierCapital
		}
	case level >= c.CapitalLevel:
		if r > c.MidCapitalAbove {
			return TierCapital
		}
	}
	return TierName
}
