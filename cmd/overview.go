package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nlnsaoadc/go-coingecko/coingecko"
)

// overviewCmd represents the overview command
var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show global market statistics and trending coins",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(cmd *cobra.Command, args []string) error {
	var (
		global   *coingecko.Global
		defi     *coingecko.GlobalDefi
		trending *coingecko.Trending
	)

	// The three endpoints are independent; fetch them concurrently.
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		var err error
		global, err = client.Global(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		defi, err = client.GlobalDefi(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		trending, err = client.SearchTrending(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	currency := strings.ToLower(cfg.Display.Currency)

	if global != nil {
		data := global.Data
		fmt.Println("Global market")
		fmt.Println(strings.Repeat("-", 40))
		fmt.Printf("  Active cryptocurrencies: %d\n", data.ActiveCryptocurrencies)
		fmt.Printf("  Markets:                 %d\n", data.Markets)
		if marketCap, ok := data.TotalMarketCap[currency]; ok {
			fmt.Printf("  Total market cap:        %.0f %s\n", marketCap, strings.ToUpper(currency))
		}
		if volume, ok := data.TotalVolume[currency]; ok {
			fmt.Printf("  Total volume:            %.0f %s\n", volume, strings.ToUpper(currency))
		}
		fmt.Printf("  24h market cap change:   %+.2f%%\n", data.MarketCapChangePercentage24hUSD)
		if btc, ok := data.MarketCapPercentage["btc"]; ok {
			fmt.Printf("  BTC dominance:           %.1f%%\n", btc)
		}
		fmt.Println()
	}

	if defi != nil {
		fmt.Println("DeFi")
		fmt.Println(strings.Repeat("-", 40))
		fmt.Printf("  Market cap:  %s\n", defi.Data.DefiMarketCap)
		fmt.Printf("  Dominance:   %s%%\n", defi.Data.DefiDominance)
		fmt.Printf("  Top coin:    %s\n", defi.Data.TopCoinName)
		fmt.Println()
	}

	if trending != nil {
		fmt.Println("Trending searches (24h)")
		fmt.Println(strings.Repeat("-", 40))
		for i, coin := range trending.Coins {
			fmt.Printf("  %d. %s (%s), rank #%d\n",
				i+1, coin.Item.Name, strings.ToUpper(coin.Item.Symbol), coin.Item.MarketCapRank)
		}
	}

	return nil
}
