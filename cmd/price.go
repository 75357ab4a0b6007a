package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nlnsaoadc/go-coingecko/coingecko"
)

var (
	priceCurrencies []string
	includeChange   bool
)

// priceCmd represents the price command
var priceCmd = &cobra.Command{
	Use:   "price <coin-id> [coin-id...]",
	Short: "Get current prices for one or more coins",
	Long: `Get the current price of coins by their CoinGecko id, e.g.:

  coingecko price bitcoin ethereum --currency usd --currency eur`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPrice,
}

func init() {
	rootCmd.AddCommand(priceCmd)

	priceCmd.Flags().StringSliceVarP(&priceCurrencies, "currency", "c", nil, "vs currency (repeatable, default from config)")
	priceCmd.Flags().BoolVar(&includeChange, "change", false, "include 24h change")
}

func runPrice(cmd *cobra.Command, args []string) error {
	currencies := priceCurrencies
	if len(currencies) == 0 {
		currencies = []string{cfg.Display.Currency}
	}

	var opts *coingecko.SimplePriceOptions
	if includeChange {
		opts = &coingecko.SimplePriceOptions{
			Include24hrChange: coingecko.Bool(true),
		}
	}

	prices, err := client.SimplePrice(context.Background(), args, currencies, opts)
	if err != nil {
		return err
	}
	if prices == nil {
		fmt.Println("No price data returned.")
		return nil
	}

	// Stable output order regardless of map iteration.
	ids := make([]string, 0, len(prices))
	for id := range prices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		fmt.Printf("%s:\n", id)
		for _, currency := range currencies {
			value, ok := prices[id][currency]
			if !ok {
				continue
			}
			fmt.Printf("  %s %s", formatAmount(value), strings.ToUpper(currency))
			if includeChange {
				if change, ok := prices[id][currency+"_24h_change"]; ok {
					fmt.Printf(" (%+.2f%%)", change)
				}
			}
			fmt.Println()
		}
	}

	return nil
}

// formatAmount renders a price with a precision fitting its magnitude.
func formatAmount(value float64) string {
	switch {
	case value >= 1000:
		return fmt.Sprintf("%.0f", value)
	case value >= 1:
		return fmt.Sprintf("%.2f", value)
	default:
		return fmt.Sprintf("%.6f", value)
	}
}
