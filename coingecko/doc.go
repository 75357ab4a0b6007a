// Package coingecko provides a client for the CoinGecko v3 REST API.
//
// CoinGecko exposes cryptocurrency market data: prices, market listings,
// historical charts, exchanges, derivatives and global statistics. All
// endpoints are plain GET requests with query-string parameters; this
// package wraps each documented route as a typed method on Client.
//
// # Usage
//
// Create a client and call endpoint methods with a context:
//
//	logger := zerolog.New(os.Stderr)
//	client := coingecko.New(coingecko.WithLogger(logger))
//
//	prices, err := client.SimplePrice(ctx,
//		[]string{"bitcoin", "ethereum"}, []string{"usd"}, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(prices["bitcoin"]["usd"])
//
// Optional query parameters ride in per-endpoint option structs with pointer
// fields, so that an omitted field is genuinely absent from the request
// rather than sent as a zero value:
//
//	markets, err := client.CoinsMarkets(ctx, "usd", &coingecko.CoinsMarketsOptions{
//		PerPage:   coingecko.Int(50),
//		Sparkline: coingecko.Bool(true),
//	})
//
// # Error handling
//
// Success is signaled solely by HTTP 200. Any other status yields an
// *APIError rendering as "<status> <detail>", where the detail comes from
// the body's "error" field when present. A client built with
// WithFailSilently instead logs the failure at info level and returns a nil
// result with a nil error; callers in that mode must inspect logs to
// diagnose failures.
//
// Transport failures and unparseable 200 bodies are returned as ordinary
// wrapped errors and are not subject to the fail-silently policy.
//
// There are no retries and no rate-limit handling; every call is exactly
// one HTTP request. The public API throttles aggressively, so callers that
// poll should pace themselves and may check APIError.IsRateLimited.
package coingecko
