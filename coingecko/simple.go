package coingecko

import (
	"context"
	"fmt"
	"net/url"
)

// Ping checks API server status.
func (c *Client) Ping(ctx context.Context) (*Ping, error) {
	var out *Ping
	err := c.get(ctx, "ping", nil, &out)
	return out, err
}

// SimplePriceOptions are the optional parameters for SimplePrice and
// SimpleTokenPrice.
type SimplePriceOptions struct {
	IncludeMarketCap     *bool
	Include24hrVol       *bool
	Include24hrChange    *bool
	IncludeLastUpdatedAt *bool
}

func (o *SimplePriceOptions) apply(p Params) {
	if o == nil {
		return
	}
	p["include_market_cap"] = o.IncludeMarketCap
	p["include_24hr_vol"] = o.Include24hrVol
	p["include_24hr_change"] = o.Include24hrChange
	p["include_last_updated_at"] = o.IncludeLastUpdatedAt
}

// SimplePrice gets the current price of any coins in any supported
// currencies.
func (c *Client) SimplePrice(ctx context.Context, ids, vsCurrencies []string, opts *SimplePriceOptions) (SimplePrice, error) {
	params := Params{
		"ids":           ids,
		"vs_currencies": vsCurrencies,
	}
	opts.apply(params)

	var out SimplePrice
	err := c.get(ctx, "simple/price", params, &out)
	return out, err
}

// SimpleTokenPrice gets the current price of tokens on the given asset
// platform by contract address.
func (c *Client) SimpleTokenPrice(ctx context.Context, id string, contractAddresses, vsCurrencies []string, opts *SimplePriceOptions) (SimplePrice, error) {
	params := Params{
		"contract_addresses": contractAddresses,
		"vs_currencies":      vsCurrencies,
	}
	opts.apply(params)

	var out SimplePrice
	err := c.get(ctx, fmt.Sprintf("simple/token_price/%s", url.PathEscape(id)), params, &out)
	return out, err
}

// SimpleSupportedVsCurrencies gets the list of supported vs currencies.
func (c *Client) SimpleSupportedVsCurrencies(ctx context.Context) ([]string, error) {
	var out []string
	err := c.get(ctx, "simple/supported_vs_currencies", nil, &out)
	return out, err
}
