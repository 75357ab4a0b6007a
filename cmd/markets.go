package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nlnsaoadc/go-coingecko/coingecko"
	"github.com/nlnsaoadc/go-coingecko/filter"
)

var (
	filterExpr     string
	preset         string
	marketsPerPage int
	marketsPage    int
)

// marketsCmd represents the markets command
var marketsCmd = &cobra.Command{
	Use:   "markets",
	Short: "List coins with market data, optionally filtered",
	Long: `List coins ordered by market cap with price, market cap and 24h change.

Rows can be filtered with an expression over the market fields:

  coingecko markets --filter 'MarketCap > 1e9 && PriceChangePercentage24h < -5'
  coingecko markets --preset losers

Presets are named expressions from the "filters" section of the config file.`,
	RunE: runMarkets,
}

func init() {
	rootCmd.AddCommand(marketsCmd)

	marketsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	marketsCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	marketsCmd.Flags().IntVar(&marketsPerPage, "per-page", 0, "page size, 1-250 (default from config)")
	marketsCmd.Flags().IntVar(&marketsPage, "page", 1, "page number")
}

// getFilterExpression resolves the --filter/--preset flags to an expression.
func getFilterExpression() (string, error) {
	if filterExpr != "" && preset != "" {
		return "", fmt.Errorf("--filter and --preset are mutually exclusive")
	}
	if preset != "" {
		expression, ok := cfg.Filters[preset]
		if !ok {
			return "", fmt.Errorf("unknown filter preset: %s", preset)
		}
		return expression, nil
	}
	return filterExpr, nil
}

func runMarkets(cmd *cobra.Command, args []string) error {
	expression, err := getFilterExpression()
	if err != nil {
		return err
	}

	perPage := marketsPerPage
	if perPage == 0 {
		perPage = cfg.Display.PerPage
	}

	markets, err := client.CoinsMarkets(context.Background(), cfg.Display.Currency,
		&coingecko.CoinsMarketsOptions{
			Order:   coingecko.String("market_cap_desc"),
			PerPage: coingecko.Int(perPage),
			Page:    coingecko.Int(marketsPage),
		})
	if err != nil {
		return err
	}

	if expression != "" {
		marketFilter, err := filter.Compile(expression)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}

		logger.Debug().Str("filter", marketFilter.String()).Msg("Filtering markets")
		markets, err = marketFilter.Apply(markets)
		if err != nil {
			return err
		}
	}

	if len(markets) == 0 {
		fmt.Println("No coins matched.")
		return nil
	}

	currency := strings.ToUpper(cfg.Display.Currency)
	fmt.Printf("%-5s %-25s %-8s %15s %18s %9s\n", "RANK", "NAME", "SYMBOL", "PRICE "+currency, "MARKET CAP", "24H")
	fmt.Println(strings.Repeat("-", 85))
	for _, market := range markets {
		fmt.Printf("%-5d %-25s %-8s %15s %18.0f %+8.2f%%\n",
			market.MarketCapRank,
			truncate(market.Name, 25),
			strings.ToUpper(market.Symbol),
			formatAmount(market.CurrentPrice),
			market.MarketCap,
			market.PriceChangePercentage24h,
		)
	}

	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
