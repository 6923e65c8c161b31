package norm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntToWordsUS(t *testing.T) {
	tests := []struct {
		n        int
		expected string
	}{
		{0, "zero"},
		{1, "one"},
		{13, "thirteen"},
		{40, "forty"},
		{57, "fifty seven"},
		{100, "one hundred"},
		{657, "six hundred, fifty seven"},
		{15348, "fifteen thousand, three hundred, forty eight"},
		{1_000_000, "one million"},
		{2_000_001, "two million, one"},
		{999_999_999, "nine hundred, ninety nine million, nine hundred, ninety nine thousand, nine hundred, ninety nine"},
	}

	for _, tc := range tests {
		got, err := IntToWordsUS(tc.n)
		require.NoError(t, err, "value %d", tc.n)
		assert.Equal(t, tc.expected, got, "value %d", tc.n)
	}
}

func TestIntToWordsUSRejectsOutOfRange(t *testing.T) {
	_, err := IntToWordsUS(-1)
	assert.Error(t, err)

	_, err = IntToWordsUS(1_000_000_000)
	assert.Error(t, err)
}

func TestCurrencyUSD(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "dollars and cents",
			input:    "$657.62",
			expected: "six hundred, fifty seven dollars and sixty two cents",
		},
		{
			name:     "comma grouped",
			input:    "$15,348.92",
			expected: "fifteen thousand, three hundred, forty eight dollars and ninety two cents",
		},
		{
			name:     "singular dollar and cent",
			input:    "$1.01",
			expected: "one dollar and one cent",
		},
		{
			name:     "singular dollar plural cents",
			input:    "$1.10",
			expected: "one dollar and ten cents",
		},
		{
			name:     "whole dollars",
			input:    "$657",
			expected: "six hundred, fifty seven dollars",
		},
		{
			name:     "single cent digit scales by ten",
			input:    "$657.6",
			expected: "six hundred, fifty seven dollars and sixty cents",
		},
		{
			name:     "cents only",
			input:    "$0.05",
			expected: "five cents",
		},
		{
			name:     "fifty cents",
			input:    "$0.50",
			expected: "fifty cents",
		},
		{
			name:     "zero dollars zero cents",
			input:    "$0.00",
			expected: "zero dollars",
		},
		{
			name:     "tag before amount",
			input:    "[laugh] $657.62",
			expected: "[laugh] six hundred, fifty seven dollars and sixty two cents",
		},
		{
			name:     "amount inside tag is preserved",
			input:    "Hello[laugh $657.62]world",
			expected: "Hello[laugh $657.62]world",
		},
		{
			name:     "plain number untouched",
			input:    "657.62",
			expected: "657.62",
		},
		{
			name:     "trailing dot kept as punctuation",
			input:    "$12.",
			expected: "twelve dollars.",
		},
		{
			name:     "closing paren kept",
			input:    "$0.05)",
			expected: "five cents)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CurrencyUSD(tc.input, 0))
		})
	}
}

func TestCurrencyUSDBypassesExcessiveValues(t *testing.T) {
	assert.Equal(t, "$1000000000", CurrencyUSD("$1000000000", 999_999_999))
	assert.Equal(t, "it costs $900", CurrencyUSD("it costs $900", 500))
}

func TestNormalize(t *testing.T) {
	opts := Options{Currency: true}
	assert.Equal(t, "five cents", Normalize("$0.05", opts))
	assert.Equal(t, "$0.05", Normalize("$0.05", Options{}))
}
