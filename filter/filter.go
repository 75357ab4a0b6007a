// Package filter compiles expr-language predicates over market rows. It
// backs the CLI's --filter flag, e.g.:
//
//	MarketCap > 1e9 && PriceChangePercentage24h < -5
//	contains(Name, "doge") || Symbol == "shib"
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/nlnsaoadc/go-coingecko/coingecko"
)

// MarketFilter is a compiled predicate over a coin market row.
type MarketFilter struct {
	expression string
	program    *vm.Program
}

// helperFunctions are available inside filter expressions in addition to
// the market row's fields.
func helperFunctions() map[string]any {
	return map[string]any{
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"abs": func(f float64) float64 {
			if f < 0 {
				return -f
			}
			return f
		},
	}
}

// environment builds the evaluation environment for one market row. Struct
// fields are exposed at the top level so expressions read naturally.
func environment(market coingecko.CoinMarket) map[string]any {
	env := helperFunctions()
	env["ID"] = market.ID
	env["Symbol"] = market.Symbol
	env["Name"] = market.Name
	env["CurrentPrice"] = market.CurrentPrice
	env["MarketCap"] = market.MarketCap
	env["MarketCapRank"] = market.MarketCapRank
	env["TotalVolume"] = market.TotalVolume
	env["High24h"] = market.High24h
	env["Low24h"] = market.Low24h
	env["PriceChange24h"] = market.PriceChange24h
	env["PriceChangePercentage24h"] = market.PriceChangePercentage24h
	env["CirculatingSupply"] = market.CirculatingSupply
	env["TotalSupply"] = market.TotalSupply
	env["MaxSupply"] = market.MaxSupply
	env["ATH"] = market.ATH
	env["ATHChangePercentage"] = market.ATHChangePercentage
	return env
}

// Compile compiles a filter expression. The expression must evaluate to a
// boolean.
func Compile(expression string) (*MarketFilter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(environment(coingecko.CoinMarket{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &MarketFilter{
		expression: expression,
		program:    program,
	}, nil
}

// String returns the source expression.
func (f *MarketFilter) String() string {
	return f.expression
}

// Match evaluates the filter against one market row.
func (f *MarketFilter) Match(market coingecko.CoinMarket) (bool, error) {
	result, err := expr.Run(f.program, environment(market))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter did not evaluate to a boolean: %v", result)
	}
	return matched, nil
}

// Apply returns the market rows matching the filter, preserving order.
func (f *MarketFilter) Apply(markets []coingecko.CoinMarket) ([]coingecko.CoinMarket, error) {
	var matched []coingecko.CoinMarket
	for _, market := range markets {
		ok, err := f.Match(market)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, market)
		}
	}
	return matched, nil
}
