package coingecko

import (
	"context"
	"fmt"
	"net/url"
)

// StatusUpdatesOptions are the optional parameters for StatusUpdates.
type StatusUpdatesOptions struct {
	// Category filters by update category, e.g. "general" or "milestone".
	Category *string
	// ProjectType is "coin" or "market"; left absent both are returned.
	ProjectType *string
	PerPage     *int
	Page        *int
}

// StatusUpdates lists all status updates across projects, paginated.
func (c *Client) StatusUpdates(ctx context.Context, opts *StatusUpdatesOptions) (*StatusUpdatesPage, error) {
	params := Params{}
	if opts != nil {
		params["category"] = opts.Category
		params["project_type"] = opts.ProjectType
		params["per_page"] = opts.PerPage
		params["page"] = opts.Page
	}

	var out *StatusUpdatesPage
	err := c.get(ctx, "status_updates", params, &out)
	return out, err
}

// EventsOptions are the optional parameters for Events.
type EventsOptions struct {
	// CountryCode filters by country, see EventsCountries.
	CountryCode *string
	// Type filters by event type, see EventsTypes.
	Type *string
	// Page is the 1-based page number; events are paginated by 100.
	Page *int
	// UpcomingEventsOnly restricts results to future events; "true" or
	// "false".
	UpcomingEventsOnly *string
	// FromDate lists events after the given date, yyyy-mm-dd.
	FromDate *string
	// ToDate lists events before the given date, yyyy-mm-dd.
	ToDate *string
}

// Events lists crypto events, paginated by 100.
func (c *Client) Events(ctx context.Context, opts *EventsOptions) (*EventsPage, error) {
	params := Params{}
	if opts != nil {
		params["country_code"] = opts.CountryCode
		params["type"] = opts.Type
		params["page"] = opts.Page
		params["upcoming_events_only"] = opts.UpcomingEventsOnly
		params["from_date"] = opts.FromDate
		params["to_date"] = opts.ToDate
	}

	var out *EventsPage
	err := c.get(ctx, "events", params, &out)
	return out, err
}

// EventsCountries lists the countries events are held in.
func (c *Client) EventsCountries(ctx context.Context) (*EventCountriesPage, error) {
	var out *EventCountriesPage
	err := c.get(ctx, "events/countries", nil, &out)
	return out, err
}

// EventsTypes lists the known event types.
func (c *Client) EventsTypes(ctx context.Context) (*EventTypesPage, error) {
	var out *EventTypesPage
	err := c.get(ctx, "events/types", nil, &out)
	return out, err
}

// SearchTrending gets the top-7 coins searched on CoinGecko in the last
// 24 hours.
func (c *Client) SearchTrending(ctx context.Context) (*Trending, error) {
	var out *Trending
	err := c.get(ctx, "search/trending", nil, &out)
	return out, err
}

// Global gets global cryptocurrency statistics.
func (c *Client) Global(ctx context.Context) (*Global, error) {
	var out *Global
	err := c.get(ctx, "global", nil, &out)
	return out, err
}

// GlobalDefi gets global decentralized finance statistics for the top 100
// DeFi coins.
func (c *Client) GlobalDefi(ctx context.Context) (*GlobalDefi, error) {
	var out *GlobalDefi
	err := c.get(ctx, "global/decentralized_finance_defi", nil, &out)
	return out, err
}

// CompaniesPublicTreasury gets public companies' bitcoin or ethereum
// holdings. CoinID must be "bitcoin" or "ethereum".
func (c *Client) CompaniesPublicTreasury(ctx context.Context, coinID string) (*CompaniesTreasury, error) {
	var out *CompaniesTreasury
	err := c.get(ctx, fmt.Sprintf("companies/public_treasury/%s", url.PathEscape(coinID)), nil, &out)
	return out, err
}
