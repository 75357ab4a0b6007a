package coingecko

import (
	"context"
	"fmt"
	"net/url"
)

// CoinsListOptions are the optional parameters for CoinsList.
type CoinsListOptions struct {
	// IncludePlatform includes platform contract addresses per coin.
	IncludePlatform *bool
}

// CoinsList lists all supported coins with id, name and symbol. Use the ids
// from this list for the other coin endpoints.
func (c *Client) CoinsList(ctx context.Context, opts *CoinsListOptions) ([]CoinsListItem, error) {
	params := Params{}
	if opts != nil {
		params["include_platform"] = opts.IncludePlatform
	}

	var out []CoinsListItem
	err := c.get(ctx, "coins/list", params, &out)
	return out, err
}

// CoinsMarketsOptions are the optional parameters for CoinsMarkets.
type CoinsMarketsOptions struct {
	// IDs restricts the listing to the given coin ids.
	IDs []string
	// Category filters by coin category.
	Category *string
	// Order is the sort order, e.g. "market_cap_desc" or "volume_asc".
	Order *string
	// PerPage is the page size, 1..250.
	PerPage *int
	// Page is the 1-based page number.
	Page *int
	// Sparkline includes 7d sparkline data.
	Sparkline *bool
	// PriceChangePercentage adds price change columns for the given
	// windows, e.g. "1h", "24h", "7d".
	PriceChangePercentage []string
}

// CoinsMarkets lists coins with price, market cap, volume and related
// market data, paginated.
func (c *Client) CoinsMarkets(ctx context.Context, vsCurrency string, opts *CoinsMarketsOptions) ([]CoinMarket, error) {
	params := Params{"vs_currency": vsCurrency}
	if opts != nil {
		params["ids"] = opts.IDs
		params["category"] = opts.Category
		params["order"] = opts.Order
		params["per_page"] = opts.PerPage
		params["page"] = opts.Page
		params["sparkline"] = opts.Sparkline
		params["price_change_percentage"] = opts.PriceChangePercentage
	}

	var out []CoinMarket
	err := c.get(ctx, "coins/markets", params, &out)
	return out, err
}

// CoinOptions are the optional parameters for Coin.
type CoinOptions struct {
	Localization  *bool
	Tickers       *bool
	MarketData    *bool
	CommunityData *bool
	DeveloperData *bool
	Sparkline     *bool
}

// Coin gets current data for a coin: name, price, market data and the
// requested extra sections.
func (c *Client) Coin(ctx context.Context, id string, opts *CoinOptions) (*Coin, error) {
	params := Params{}
	if opts != nil {
		params["localization"] = opts.Localization
		params["tickers"] = opts.Tickers
		params["market_data"] = opts.MarketData
		params["community_data"] = opts.CommunityData
		params["developer_data"] = opts.DeveloperData
		params["sparkline"] = opts.Sparkline
	}

	var out *Coin
	err := c.get(ctx, fmt.Sprintf("coins/%s", url.PathEscape(id)), params, &out)
	return out, err
}

// CoinTickersOptions are the optional parameters for CoinTickers.
type CoinTickersOptions struct {
	// ExchangeIDs filters tickers to the given exchanges.
	ExchangeIDs *string
	// IncludeExchangeLogo adds exchange logo URLs.
	IncludeExchangeLogo *string
	// Page is the 1-based page number; tickers are paginated by 100.
	Page *int
	// Order is "trust_score_desc", "trust_score_asc" or "volume_desc".
	Order *string
	// Depth adds 2% orderbook depth columns.
	Depth *string
}

// CoinTickers gets a coin's tickers, paginated by 100.
func (c *Client) CoinTickers(ctx context.Context, id string, opts *CoinTickersOptions) (*CoinTickersPage, error) {
	params := Params{}
	if opts != nil {
		params["exchange_ids"] = opts.ExchangeIDs
		params["include_exchange_logo"] = opts.IncludeExchangeLogo
		params["page"] = opts.Page
		params["order"] = opts.Order
		params["depth"] = opts.Depth
	}

	var out *CoinTickersPage
	err := c.get(ctx, fmt.Sprintf("coins/%s/tickers", url.PathEscape(id)), params, &out)
	return out, err
}

// CoinHistoryOptions are the optional parameters for CoinHistory.
type CoinHistoryOptions struct {
	// Localization includes localized names; "true" or "false".
	Localization *string
}

// CoinHistory gets historical data for a coin at a given date. The date
// format is dd-mm-yyyy, e.g. "30-12-2017".
func (c *Client) CoinHistory(ctx context.Context, id, date string, opts *CoinHistoryOptions) (*CoinHistory, error) {
	params := Params{"date": date}
	if opts != nil {
		params["localization"] = opts.Localization
	}

	var out *CoinHistory
	err := c.get(ctx, fmt.Sprintf("coins/%s/history", url.PathEscape(id)), params, &out)
	return out, err
}

// CoinMarketChartOptions are the optional parameters for CoinMarketChart.
type CoinMarketChartOptions struct {
	// Interval is the data interval, e.g. "daily". Left absent the API
	// picks a granularity from the days range.
	Interval *string
}

// CoinMarketChart gets historical market data (price, market cap, volume).
// Days may be a number of days or "max".
func (c *Client) CoinMarketChart(ctx context.Context, id, vsCurrency, days string, opts *CoinMarketChartOptions) (*MarketChart, error) {
	params := Params{
		"vs_currency": vsCurrency,
		"days":        days,
	}
	if opts != nil {
		params["interval"] = opts.Interval
	}

	var out *MarketChart
	err := c.get(ctx, fmt.Sprintf("coins/%s/market_chart", url.PathEscape(id)), params, &out)
	return out, err
}

// CoinMarketChartRange gets historical market data within a time range
// given as unix timestamps.
func (c *Client) CoinMarketChartRange(ctx context.Context, id, vsCurrency string, from, to int64) (*MarketChart, error) {
	params := Params{
		"vs_currency": vsCurrency,
		"from":        fmt.Sprint(from),
		"to":          fmt.Sprint(to),
	}

	var out *MarketChart
	err := c.get(ctx, fmt.Sprintf("coins/%s/market_chart/range", url.PathEscape(id)), params, &out)
	return out, err
}

// PageOptions are the shared pagination parameters.
type PageOptions struct {
	PerPage *int
	Page    *int
}

func (o *PageOptions) apply(p Params) {
	if o == nil {
		return
	}
	p["per_page"] = o.PerPage
	p["page"] = o.Page
}

// CoinStatusUpdates gets status updates for a coin, paginated.
func (c *Client) CoinStatusUpdates(ctx context.Context, id string, opts *PageOptions) (*StatusUpdatesPage, error) {
	params := Params{}
	opts.apply(params)

	var out *StatusUpdatesPage
	err := c.get(ctx, fmt.Sprintf("coins/%s/status_updates", url.PathEscape(id)), params, &out)
	return out, err
}

// CoinOHLC gets a coin's OHLC candles. Days must be one of 1, 7, 14, 30,
// 90, 180, 365 or "max"; candle granularity follows from the range.
func (c *Client) CoinOHLC(ctx context.Context, id, vsCurrency, days string) ([]OHLC, error) {
	params := Params{
		"vs_currency": vsCurrency,
		"days":        days,
	}

	var out []OHLC
	err := c.get(ctx, fmt.Sprintf("coins/%s/ohlc", url.PathEscape(id)), params, &out)
	return out, err
}

// CoinContract gets coin info from a platform id and contract address.
func (c *Client) CoinContract(ctx context.Context, id, contractAddress string) (*Coin, error) {
	path := fmt.Sprintf("coins/%s/contract/%s", url.PathEscape(id), url.PathEscape(contractAddress))

	var out *Coin
	err := c.get(ctx, path, nil, &out)
	return out, err
}

// CoinContractMarketChart gets historical market data for a token by
// contract address.
func (c *Client) CoinContractMarketChart(ctx context.Context, id, contractAddress, vsCurrency, days string) (*MarketChart, error) {
	params := Params{
		"vs_currency": vsCurrency,
		"days":        days,
	}
	path := fmt.Sprintf("coins/%s/contract/%s/market_chart", url.PathEscape(id), url.PathEscape(contractAddress))

	var out *MarketChart
	err := c.get(ctx, path, params, &out)
	return out, err
}

// CoinContractMarketChartRange gets historical market data for a token by
// contract address within a time range given as unix timestamps.
func (c *Client) CoinContractMarketChartRange(ctx context.Context, id, contractAddress, vsCurrency string, from, to int64) (*MarketChart, error) {
	params := Params{
		"vs_currency": vsCurrency,
		"from":        fmt.Sprint(from),
		"to":          fmt.Sprint(to),
	}
	path := fmt.Sprintf("coins/%s/contract/%s/market_chart/range", url.PathEscape(id), url.PathEscape(contractAddress))

	var out *MarketChart
	err := c.get(ctx, path, params, &out)
	return out, err
}

// AssetPlatforms lists all asset platforms (blockchain networks).
func (c *Client) AssetPlatforms(ctx context.Context) ([]AssetPlatform, error) {
	var out []AssetPlatform
	err := c.get(ctx, "asset_platforms", nil, &out)
	return out, err
}

// CoinCategoriesList lists all coin categories.
func (c *Client) CoinCategoriesList(ctx context.Context) ([]CategoriesListItem, error) {
	var out []CategoriesListItem
	err := c.get(ctx, "coins/categories/list", nil, &out)
	return out, err
}

// CoinCategories lists all coin categories with market data.
func (c *Client) CoinCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	err := c.get(ctx, "coins/categories", nil, &out)
	return out, err
}
