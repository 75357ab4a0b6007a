package coingecko

import (
	"context"
	"fmt"
	"net/url"
)

// FinancePlatforms lists all finance platforms, paginated.
func (c *Client) FinancePlatforms(ctx context.Context, opts *PageOptions) ([]FinancePlatform, error) {
	params := Params{}
	opts.apply(params)

	var out []FinancePlatform
	err := c.get(ctx, "finance_platforms", params, &out)
	return out, err
}

// FinanceProductsOptions are the optional parameters for FinanceProducts.
type FinanceProductsOptions struct {
	PerPage *int
	Page    *int
	StartAt *string
	EndAt   *string
}

// FinanceProducts lists all finance products, paginated.
func (c *Client) FinanceProducts(ctx context.Context, opts *FinanceProductsOptions) ([]FinanceProduct, error) {
	params := Params{}
	if opts != nil {
		params["per_page"] = opts.PerPage
		params["page"] = opts.Page
		params["start_at"] = opts.StartAt
		params["end_at"] = opts.EndAt
	}

	var out []FinanceProduct
	err := c.get(ctx, "finance_products", params, &out)
	return out, err
}

// Indexes lists all market indexes.
func (c *Client) Indexes(ctx context.Context) ([]Index, error) {
	var out []Index
	err := c.get(ctx, "indexes", nil, &out)
	return out, err
}

// IndexByMarketID gets a market index by market id and index id.
func (c *Client) IndexByMarketID(ctx context.Context, marketID, id string) (*Index, error) {
	path := fmt.Sprintf("indexes/%s/%s", url.PathEscape(marketID), url.PathEscape(id))

	var out *Index
	err := c.get(ctx, path, nil, &out)
	return out, err
}

// IndexesList lists all market index ids and names.
func (c *Client) IndexesList(ctx context.Context) ([]IndexesListItem, error) {
	var out []IndexesListItem
	err := c.get(ctx, "indexes/list", nil, &out)
	return out, err
}

// Derivatives lists all derivative tickers.
func (c *Client) Derivatives(ctx context.Context) ([]Derivative, error) {
	var out []Derivative
	err := c.get(ctx, "derivatives", nil, &out)
	return out, err
}

// DerivativesExchanges lists all derivative exchanges.
func (c *Client) DerivativesExchanges(ctx context.Context) ([]DerivativesExchange, error) {
	var out []DerivativesExchange
	err := c.get(ctx, "derivatives/exchanges", nil, &out)
	return out, err
}

// DerivativesExchangeOptions are the optional parameters for
// DerivativesExchange.
type DerivativesExchangeOptions struct {
	// IncludeTickers is "all" or "unexpired"; left absent tickers are
	// omitted from the response.
	IncludeTickers *string
}

// DerivativesExchange shows a derivative exchange's data.
func (c *Client) DerivativesExchange(ctx context.Context, id string, opts *DerivativesExchangeOptions) (*DerivativesExchange, error) {
	params := Params{}
	if opts != nil {
		params["include_tickers"] = opts.IncludeTickers
	}

	var out *DerivativesExchange
	err := c.get(ctx, fmt.Sprintf("derivatives/exchanges/%s", url.PathEscape(id)), params, &out)
	return out, err
}

// DerivativesExchangesList lists all derivative exchange ids and names.
func (c *Client) DerivativesExchangesList(ctx context.Context) ([]ExchangesListItem, error) {
	var out []ExchangesListItem
	err := c.get(ctx, "derivatives/exchanges/list", nil, &out)
	return out, err
}
