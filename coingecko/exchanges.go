package coingecko

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Exchanges lists all exchanges with market data, paginated by 100.
func (c *Client) Exchanges(ctx context.Context) ([]Exchange, error) {
	var out []Exchange
	err := c.get(ctx, "exchanges", nil, &out)
	return out, err
}

// ExchangesList lists all supported exchange ids and names.
func (c *Client) ExchangesList(ctx context.Context) ([]ExchangesListItem, error) {
	var out []ExchangesListItem
	err := c.get(ctx, "exchanges/list", nil, &out)
	return out, err
}

// Exchange gets an exchange's volume in BTC and its top 100 tickers.
func (c *Client) Exchange(ctx context.Context, id string) (*ExchangeDetail, error) {
	var out *ExchangeDetail
	err := c.get(ctx, fmt.Sprintf("exchanges/%s", url.PathEscape(id)), nil, &out)
	return out, err
}

// ExchangeTickersOptions are the optional parameters for ExchangeTickers.
type ExchangeTickersOptions struct {
	// CoinIDs filters tickers to the given coins.
	CoinIDs []string
	// IncludeExchangeLogo adds exchange logo URLs.
	IncludeExchangeLogo *string
	// Page is the 1-based page number; tickers are paginated by 100.
	Page *int
	// Depth adds 2% orderbook depth columns.
	Depth *string
	// Order is "trust_score_desc", "trust_score_asc" or "volume_desc".
	Order *string
}

// ExchangeTickers gets an exchange's tickers, paginated by 100.
func (c *Client) ExchangeTickers(ctx context.Context, id string, opts *ExchangeTickersOptions) (*CoinTickersPage, error) {
	params := Params{}
	if opts != nil {
		params["coin_ids"] = opts.CoinIDs
		params["include_exchange_logo"] = opts.IncludeExchangeLogo
		params["page"] = opts.Page
		params["depth"] = opts.Depth
		params["order"] = opts.Order
	}

	var out *CoinTickersPage
	err := c.get(ctx, fmt.Sprintf("exchanges/%s/tickers", url.PathEscape(id)), params, &out)
	return out, err
}

// ExchangeStatusUpdates gets status updates for an exchange, paginated.
func (c *Client) ExchangeStatusUpdates(ctx context.Context, id string, opts *PageOptions) (*StatusUpdatesPage, error) {
	params := Params{}
	opts.apply(params)

	var out *StatusUpdatesPage
	err := c.get(ctx, fmt.Sprintf("exchanges/%s/status_updates", url.PathEscape(id)), params, &out)
	return out, err
}

// ExchangeVolumeChart gets an exchange's volume chart for the last n days.
func (c *Client) ExchangeVolumeChart(ctx context.Context, id string, days int) ([]VolumeChartPoint, error) {
	params := Params{"days": strconv.Itoa(days)}

	var out []VolumeChartPoint
	err := c.get(ctx, fmt.Sprintf("exchanges/%s/volume_chart", url.PathEscape(id)), params, &out)
	return out, err
}

// ExchangeRates gets BTC-to-currency exchange rates.
func (c *Client) ExchangeRates(ctx context.Context) (*ExchangeRates, error) {
	var out *ExchangeRates
	err := c.get(ctx, "exchange_rates", nil, &out)
	return out, err
}
