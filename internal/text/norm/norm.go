// Package norm rewrites literal values into speakable words ahead of
// synthesis. Currently that means USD currency amounts; plain numbers and
// everything inside bracket tokens are left alone.
package norm

// Options selects which normalization passes run.
type Options struct {
	Currency         bool
	CurrencyMaxValue int
}

// Normalize runs the enabled normalization passes over text.
func Normalize(text string, opts Options) string {
	if opts.Currency {
		text = CurrencyUSD(text, opts.CurrencyMaxValue)
	}
	return text
}
