package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinsList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/list", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("include_platform"))

		w.Write([]byte(`[
			{"id":"bitcoin","symbol":"btc","name":"Bitcoin","platforms":{}},
			{"id":"tether","symbol":"usdt","name":"Tether","platforms":{"ethereum":"0xdac17f958d2ee523a2206206994597c13d831ec7"}}
		]`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	coins, err := client.CoinsList(context.Background(), &CoinsListOptions{IncludePlatform: Bool(true)})
	require.NoError(t, err)
	require.Len(t, coins, 2)
	assert.Equal(t, "bitcoin", coins[0].ID)
	assert.Equal(t, "0xdac17f958d2ee523a2206206994597c13d831ec7", coins[1].Platforms["ethereum"])
}

func TestCoinsListOmitsAbsentOption(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("include_platform"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	_, err := client.CoinsList(context.Background(), nil)
	require.NoError(t, err)
}

func TestCoinsMarkets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/markets", r.URL.Path)

		query := r.URL.Query()
		assert.Equal(t, "usd", query.Get("vs_currency"))
		assert.Equal(t, "market_cap_desc", query.Get("order"))
		assert.Equal(t, "50", query.Get("per_page"))
		assert.Equal(t, "2", query.Get("page"))
		assert.Equal(t, "1h,24h,7d", query.Get("price_change_percentage"))
		assert.False(t, query.Has("ids"))
		assert.False(t, query.Has("category"))
		assert.False(t, query.Has("sparkline"))

		w.Write([]byte(`[{
			"id":"bitcoin","symbol":"btc","name":"Bitcoin",
			"current_price":50000.1,"market_cap":950000000000,"market_cap_rank":1,
			"total_volume":30000000000,"high_24h":51000,"low_24h":49000,
			"price_change_percentage_24h":-1.5,
			"ath":69000,"ath_date":"2021-11-10T14:24:11.849Z",
			"last_updated":"2021-12-01T00:00:00.000Z"
		}]`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	markets, err := client.CoinsMarkets(context.Background(), "usd", &CoinsMarketsOptions{
		Order:                 String("market_cap_desc"),
		PerPage:               Int(50),
		Page:                  Int(2),
		PriceChangePercentage: []string{"1h", "24h", "7d"},
	})
	require.NoError(t, err)
	require.Len(t, markets, 1)

	btc := markets[0]
	assert.Equal(t, "bitcoin", btc.ID)
	assert.Equal(t, 1, btc.MarketCapRank)
	assert.Equal(t, 50000.1, btc.CurrentPrice)
	assert.Equal(t, -1.5, btc.PriceChangePercentage24h)
	assert.Equal(t, 2021, btc.ATHDate.Year())
	assert.Nil(t, btc.Sparkline)
}

func TestCoinPathSubstitution(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"id":"bitcoin","symbol":"btc","name":"Bitcoin"}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))

	coin, err := client.Coin(context.Background(), "bitcoin", nil)
	require.NoError(t, err)
	assert.Equal(t, "/coins/bitcoin", gotPath)
	assert.Equal(t, "Bitcoin", coin.Name)

	// Ids never contain slashes in practice, but a hostile one must not
	// escape into a different route.
	_, err = client.Coin(context.Background(), "a/b", nil)
	require.NoError(t, err)
	assert.Equal(t, "/coins/a%2Fb", gotPath)
}

func TestCoinTickers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/bitcoin/tickers", r.URL.Path)
		assert.Equal(t, "binance", r.URL.Query().Get("exchange_ids"))

		w.Write([]byte(`{"name":"Bitcoin","tickers":[{
			"base":"BTC","target":"USDT",
			"market":{"name":"Binance","identifier":"binance","has_trading_incentive":false},
			"last":50000.5,"volume":12345.6,"trust_score":"green",
			"is_anomaly":false,"is_stale":false
		}]}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	page, err := client.CoinTickers(context.Background(), "bitcoin", &CoinTickersOptions{
		ExchangeIDs: String("binance"),
	})
	require.NoError(t, err)
	require.Len(t, page.Tickers, 1)
	assert.Equal(t, "binance", page.Tickers[0].Market.Identifier)
	assert.Equal(t, "green", page.Tickers[0].TrustScore)
}

func TestCoinHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/bitcoin/history", r.URL.Path)
		assert.Equal(t, "30-12-2017", r.URL.Query().Get("date"))

		w.Write([]byte(`{
			"id":"bitcoin","symbol":"btc","name":"Bitcoin",
			"market_data":{"current_price":{"usd":13620.36}}
		}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	history, err := client.CoinHistory(context.Background(), "bitcoin", "30-12-2017", nil)
	require.NoError(t, err)
	require.NotNil(t, history.MarketData)
	assert.Equal(t, 13620.36, history.MarketData.CurrentPrice["usd"])
}

func TestCoinMarketChart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/bitcoin/market_chart", r.URL.Path)
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currency"))
		assert.Equal(t, "1", r.URL.Query().Get("days"))

		w.Write([]byte(`{
			"prices":[[1638316800000,57000.1],[1638320400000,57500.2]],
			"market_caps":[[1638316800000,1070000000000]],
			"total_volumes":[[1638316800000,31000000000]]
		}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	chart, err := client.CoinMarketChart(context.Background(), "bitcoin", "usd", "1", nil)
	require.NoError(t, err)
	require.Len(t, chart.Prices, 2)

	first := chart.Prices[0]
	assert.Equal(t, 57000.1, first.Value())
	assert.Equal(t, time.UnixMilli(1638316800000), first.Time())
}

func TestCoinMarketChartRange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/bitcoin/market_chart/range", r.URL.Path)
		assert.Equal(t, "1392577232", r.URL.Query().Get("from"))
		assert.Equal(t, "1422577232", r.URL.Query().Get("to"))
		w.Write([]byte(`{"prices":[],"market_caps":[],"total_volumes":[]}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	_, err := client.CoinMarketChartRange(context.Background(), "bitcoin", "usd", 1392577232, 1422577232)
	require.NoError(t, err)
}

func TestCoinStatusUpdates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/bitcoin/status_updates", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))

		w.Write([]byte(`{"status_updates":[{
			"description":"Release","category":"release",
			"created_at":"2021-01-01T00:00:00.000Z","user":"dev","pin":false
		}]}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	page, err := client.CoinStatusUpdates(context.Background(), "bitcoin", &PageOptions{PerPage: Int(10)})
	require.NoError(t, err)
	require.Len(t, page.StatusUpdates, 1)
	assert.Equal(t, "release", page.StatusUpdates[0].Category)
}

func TestCoinOHLC(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/bitcoin/ohlc", r.URL.Path)
		w.Write([]byte(`[[1638316800000,57000,57500,56800,57200]]`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	candles, err := client.CoinOHLC(context.Background(), "bitcoin", "usd", "1")
	require.NoError(t, err)
	require.Len(t, candles, 1)

	candle := candles[0]
	assert.Equal(t, time.UnixMilli(1638316800000), candle.Time())
	assert.Equal(t, float64(57000), candle.Open())
	assert.Equal(t, float64(57500), candle.High())
	assert.Equal(t, float64(56800), candle.Low())
	assert.Equal(t, float64(57200), candle.Close())
}

func TestCoinContract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/ethereum/contract/0xdac17f958d2ee523a2206206994597c13d831ec7", r.URL.Path)
		w.Write([]byte(`{"id":"tether","symbol":"usdt","name":"Tether"}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	coin, err := client.CoinContract(context.Background(), "ethereum", "0xdac17f958d2ee523a2206206994597c13d831ec7")
	require.NoError(t, err)
	assert.Equal(t, "tether", coin.ID)
}

func TestCoinContractMarketChartRange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/ethereum/contract/0xdead/market_chart/range", r.URL.Path)
		w.Write([]byte(`{"prices":[],"market_caps":[],"total_volumes":[]}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	_, err := client.CoinContractMarketChartRange(context.Background(), "ethereum", "0xdead", "usd", 1, 2)
	require.NoError(t, err)
}

func TestAssetPlatforms(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/asset_platforms", r.URL.Path)
		w.Write([]byte(`[
			{"id":"ethereum","chain_identifier":1,"name":"Ethereum","shortname":"eth"},
			{"id":"solana","chain_identifier":null,"name":"Solana","shortname":""}
		]`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	platforms, err := client.AssetPlatforms(context.Background())
	require.NoError(t, err)
	require.Len(t, platforms, 2)
	require.NotNil(t, platforms[0].ChainIdentifier)
	assert.Equal(t, int64(1), *platforms[0].ChainIdentifier)
	assert.Nil(t, platforms[1].ChainIdentifier)
}

func TestCoinCategories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/categories", r.URL.Path)
		w.Write([]byte(`[{"id":"defi","name":"DeFi","market_cap":100000000000,"top_3_coins":["a","b","c"]}]`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	categories, err := client.CoinCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "defi", categories[0].ID)
	assert.Len(t, categories[0].Top3Coins, 3)
}
