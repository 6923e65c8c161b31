package norm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"voxprep/internal/text/spans"
)

// MaxWordsValue is the largest integer IntToWordsUS accepts.
const MaxWordsValue = 999_999_999

var currencyPattern = regexp.MustCompile(`\$((?:\d{1,3}(?:,\d{3})+)|\d+)(?:\.(\d{1,2}))?`)

var ones = []string{
	"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine",
}

var teens = []string{
	"ten", "eleven", "twelve", "thirteen", "fourteen",
	"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
}

var tens = []string{
	"", "", "twenty", "thirty", "forty",
	"fifty", "sixty", "seventy", "eighty", "ninety",
}

// IntToWordsUS converts n to its U.S. English words representation.
//
//	0     -> "zero"
//	657   -> "six hundred, fifty seven"
//	15348 -> "fifteen thousand, three hundred, forty eight"
//
// Values outside 0..999,999,999 are a contract violation and return an error.
func IntToWordsUS(n int) (string, error) {
	if n < 0 || n > MaxWordsValue {
		return "", fmt.Errorf("int to words supports values from 0 to 999,999,999, got %d", n)
	}
	if n == 0 {
		return "zero", nil
	}

	millions := n / 1_000_000
	remainder := n % 1_000_000
	thousands := remainder / 1000
	belowThousand := remainder % 1000

	var parts []string
	if millions > 0 {
		parts = append(parts, threeDigitWords(millions)+" million")
	}
	if thousands > 0 {
		parts = append(parts, threeDigitWords(thousands)+" thousand")
	}
	if belowThousand > 0 || len(parts) == 0 {
		parts = append(parts, threeDigitWords(belowThousand))
	}
	return strings.Join(parts, ", "), nil
}

func twoDigitWords(n int) string {
	switch {
	case n < 10:
		return ones[n]
	case n < 20:
		return teens[n-10]
	}
	if n%10 == 0 {
		return tens[n/10]
	}
	return tens[n/10] + " " + ones[n%10]
}

func threeDigitWords(n int) string {
	hundreds := n / 100
	rem := n % 100

	if hundreds == 0 {
		if rem == 0 {
			return "zero"
		}
		return twoDigitWords(rem)
	}
	if rem == 0 {
		return ones[hundreds] + " hundred"
	}
	return ones[hundreds] + " hundred, " + twoDigitWords(rem)
}

// CurrencyUSD expands $-amounts in text into spoken words, leaving bracket
// tokens and any amount above maxValue untouched. A single cent digit is read
// as tens of cents ($0.6 is sixty cents).
func CurrencyUSD(text string, maxValue int) string {
	if maxValue <= 0 {
		maxValue = MaxWordsValue
	}

	var out strings.Builder
	for _, chunk := range spans.SplitProtected(text) {
		if chunk.Protected {
			out.WriteString(chunk.Text)
			continue
		}
		out.WriteString(expandCurrency(chunk.Text, maxValue))
	}
	return out.String()
}

func expandCurrency(segment string, maxValue int) string {
	return currencyPattern.ReplaceAllStringFunc(segment, func(match string) string {
		groups := currencyPattern.FindStringSubmatch(match)
		dollars, err := strconv.Atoi(strings.ReplaceAll(groups[1], ",", ""))
		if err != nil || dollars > maxValue {
			// Over the ceiling (or unparseable): bypass, not an error.
			return match
		}

		cents := 0
		if groups[2] != "" {
			cents, _ = strconv.Atoi(groups[2])
			if len(groups[2]) == 1 {
				cents *= 10
			}
		}
		return speakAmount(dollars, cents, match)
	})
}

func speakAmount(dollars, cents int, literal string) string {
	centsWords, err := IntToWordsUS(cents)
	if err != nil {
		return literal
	}
	dollarsWords, err := IntToWordsUS(dollars)
	if err != nil {
		return literal
	}

	centLabel := "cents"
	if cents == 1 {
		centLabel = "cent"
	}
	dollarLabel := "dollars"
	if dollars == 1 {
		dollarLabel = "dollar"
	}

	switch {
	case dollars == 0 && cents > 0:
		return centsWords + " " + centLabel
	case dollars == 0 && cents == 0:
		return "zero dollars"
	case cents == 0:
		return dollarsWords + " " + dollarLabel
	}
	return dollarsWords + " " + dollarLabel + " and " + centsWords + " " + centLabel
}
