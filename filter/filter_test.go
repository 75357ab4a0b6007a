package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlnsaoadc/go-coingecko/coingecko"
)

var testMarkets = []coingecko.CoinMarket{
	{
		ID:                       "bitcoin",
		Symbol:                   "btc",
		Name:                     "Bitcoin",
		CurrentPrice:             50000,
		MarketCap:                950e9,
		MarketCapRank:            1,
		PriceChangePercentage24h: -2.5,
	},
	{
		ID:                       "ethereum",
		Symbol:                   "eth",
		Name:                     "Ethereum",
		CurrentPrice:             4000,
		MarketCap:                470e9,
		MarketCapRank:            2,
		PriceChangePercentage24h: 1.2,
	},
	{
		ID:                       "dogecoin",
		Symbol:                   "doge",
		Name:                     "Dogecoin",
		CurrentPrice:             0.2,
		MarketCap:                26e9,
		MarketCapRank:            12,
		PriceChangePercentage24h: -8.0,
	},
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{name: "numeric comparison", expression: "MarketCap > 1e9"},
		{name: "boolean combination", expression: "MarketCapRank <= 10 && CurrentPrice < 10000"},
		{name: "helper function", expression: `contains(Name, "coin")`},
		{name: "empty expression", expression: "   ", wantErr: true},
		{name: "syntax error", expression: "MarketCap >", wantErr: true},
		{name: "non-boolean result", expression: "MarketCap + 1", wantErr: true},
		{name: "unknown field", expression: "Nope > 1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.expression)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		expected   []string
	}{
		{
			name:       "by market cap",
			expression: "MarketCap > 100e9",
			expected:   []string{"bitcoin", "ethereum"},
		},
		{
			name:       "losers",
			expression: "PriceChangePercentage24h < -5",
			expected:   []string{"dogecoin"},
		},
		{
			name:       "name contains",
			expression: `contains(Name, "COIN")`,
			expected:   []string{"bitcoin", "dogecoin"},
		},
		{
			name:       "symbol equality",
			expression: `Symbol == "eth"`,
			expected:   []string{"ethereum"},
		},
		{
			name:       "abs helper",
			expression: "abs(PriceChangePercentage24h) > 2",
			expected:   []string{"bitcoin", "dogecoin"},
		},
		{
			name:       "no match",
			expression: "MarketCapRank > 100",
			expected:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			matched, err := f.Apply(testMarkets)
			require.NoError(t, err)

			var ids []string
			for _, m := range matched {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestString(t *testing.T) {
	f, err := Compile("MarketCap > 1e9")
	require.NoError(t, err)
	assert.Equal(t, "MarketCap > 1e9", f.String())
}
