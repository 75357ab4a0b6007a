package coingecko

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Ping is the response from the ping endpoint.
type Ping struct {
	GeckoSays string `json:"gecko_says"`
}

// SimplePrice maps coin id -> currency -> price. With the include_* options
// enabled, extra keys such as "usd_market_cap" and "usd_24h_vol" appear next
// to the plain currency keys.
type SimplePrice map[string]map[string]float64

// Image holds the image URLs attached to a coin or exchange.
type Image struct {
	Thumb string `json:"thumb"`
	Small string `json:"small"`
	Large string `json:"large"`
}

// CoinsListItem is one entry of the coins list.
type CoinsListItem struct {
	ID        string            `json:"id"`
	Symbol    string            `json:"symbol"`
	Name      string            `json:"name"`
	Platforms map[string]string `json:"platforms,omitempty"`
}

// CoinMarket is one row of the coins/markets listing.
type CoinMarket struct {
	ID                           string     `json:"id"`
	Symbol                       string     `json:"symbol"`
	Name                         string     `json:"name"`
	Image                        string     `json:"image"`
	CurrentPrice                 float64    `json:"current_price"`
	MarketCap                    float64    `json:"market_cap"`
	MarketCapRank                int        `json:"market_cap_rank"`
	FullyDilutedValuation        float64    `json:"fully_diluted_valuation"`
	TotalVolume                  float64    `json:"total_volume"`
	High24h                      float64    `json:"high_24h"`
	Low24h                       float64    `json:"low_24h"`
	PriceChange24h               float64    `json:"price_change_24h"`
	PriceChangePercentage24h     float64    `json:"price_change_percentage_24h"`
	MarketCapChange24h           float64    `json:"market_cap_change_24h"`
	MarketCapChangePercentage24h float64    `json:"market_cap_change_percentage_24h"`
	CirculatingSupply            float64    `json:"circulating_supply"`
	TotalSupply                  float64    `json:"total_supply"`
	MaxSupply                    float64    `json:"max_supply"`
	ATH                          float64    `json:"ath"`
	ATHChangePercentage          float64    `json:"ath_change_percentage"`
	ATHDate                      time.Time  `json:"ath_date"`
	ATL                          float64    `json:"atl"`
	ATLChangePercentage          float64    `json:"atl_change_percentage"`
	ATLDate                      time.Time  `json:"atl_date"`
	LastUpdated                  time.Time  `json:"last_updated"`
	Sparkline                    *Sparkline `json:"sparkline_in_7d,omitempty"`
}

// Sparkline holds 7d sparkline price data.
type Sparkline struct {
	Price []float64 `json:"price"`
}

// CoinLinks holds the project links attached to a coin.
type CoinLinks struct {
	Homepage                  []string `json:"homepage"`
	BlockchainSite            []string `json:"blockchain_site"`
	OfficialForumURL          []string `json:"official_forum_url"`
	ChatURL                   []string `json:"chat_url"`
	AnnouncementURL           []string `json:"announcement_url"`
	TwitterScreenName         string   `json:"twitter_screen_name"`
	FacebookUsername          string   `json:"facebook_username"`
	TelegramChannelIdentifier string   `json:"telegram_channel_identifier"`
	SubredditURL              string   `json:"subreddit_url"`
}

// MarketData holds per-currency market data for a coin.
type MarketData struct {
	CurrentPrice                 map[string]float64   `json:"current_price"`
	ATH                          map[string]float64   `json:"ath"`
	ATHChangePercentage          map[string]float64   `json:"ath_change_percentage"`
	ATHDate                      map[string]time.Time `json:"ath_date"`
	ATL                          map[string]float64   `json:"atl"`
	ATLChangePercentage          map[string]float64   `json:"atl_change_percentage"`
	ATLDate                      map[string]time.Time `json:"atl_date"`
	MarketCap                    map[string]float64   `json:"market_cap"`
	MarketCapRank                int                  `json:"market_cap_rank"`
	FullyDilutedValuation        map[string]float64   `json:"fully_diluted_valuation"`
	TotalVolume                  map[string]float64   `json:"total_volume"`
	High24h                      map[string]float64   `json:"high_24h"`
	Low24h                       map[string]float64   `json:"low_24h"`
	PriceChange24h               float64              `json:"price_change_24h"`
	PriceChangePercentage24h     float64              `json:"price_change_percentage_24h"`
	PriceChangePercentage7d      float64              `json:"price_change_percentage_7d"`
	PriceChangePercentage30d     float64              `json:"price_change_percentage_30d"`
	PriceChangePercentage1y      float64              `json:"price_change_percentage_1y"`
	MarketCapChange24h           float64              `json:"market_cap_change_24h"`
	MarketCapChangePercentage24h float64              `json:"market_cap_change_percentage_24h"`
	CirculatingSupply            float64              `json:"circulating_supply"`
	TotalSupply                  float64              `json:"total_supply"`
	MaxSupply                    float64              `json:"max_supply"`
	LastUpdated                  time.Time            `json:"last_updated"`
}

// Coin is the detailed data for a single coin.
type Coin struct {
	ID                           string            `json:"id"`
	Symbol                       string            `json:"symbol"`
	Name                         string            `json:"name"`
	AssetPlatformID              string            `json:"asset_platform_id"`
	Platforms                    map[string]string `json:"platforms,omitempty"`
	BlockTimeInMinutes           int               `json:"block_time_in_minutes"`
	HashingAlgorithm             string            `json:"hashing_algorithm"`
	Categories                   []string          `json:"categories"`
	Localization                 map[string]string `json:"localization,omitempty"`
	Description                  map[string]string `json:"description,omitempty"`
	Links                        *CoinLinks        `json:"links,omitempty"`
	Image                        Image             `json:"image"`
	CountryOrigin                string            `json:"country_origin"`
	GenesisDate                  string            `json:"genesis_date"`
	SentimentVotesUpPercentage   float64           `json:"sentiment_votes_up_percentage"`
	SentimentVotesDownPercentage float64           `json:"sentiment_votes_down_percentage"`
	MarketCapRank                int               `json:"market_cap_rank"`
	MarketData                   *MarketData       `json:"market_data,omitempty"`
	Tickers                      []Ticker          `json:"tickers,omitempty"`
	LastUpdated                  time.Time         `json:"last_updated"`
}

// TickerMarket identifies the exchange a ticker was observed on.
type TickerMarket struct {
	Name                string `json:"name"`
	Identifier          string `json:"identifier"`
	HasTradingIncentive bool   `json:"has_trading_incentive"`
}

// Ticker is a single market ticker.
type Ticker struct {
	Base                   string             `json:"base"`
	Target                 string             `json:"target"`
	Market                 TickerMarket       `json:"market"`
	Last                   float64            `json:"last"`
	Volume                 float64            `json:"volume"`
	ConvertedLast          map[string]float64 `json:"converted_last"`
	ConvertedVolume        map[string]float64 `json:"converted_volume"`
	TrustScore             string             `json:"trust_score"`
	BidAskSpreadPercentage float64            `json:"bid_ask_spread_percentage"`
	Timestamp              time.Time          `json:"timestamp"`
	LastTradedAt           time.Time          `json:"last_traded_at"`
	LastFetchAt            time.Time          `json:"last_fetch_at"`
	IsAnomaly              bool               `json:"is_anomaly"`
	IsStale                bool               `json:"is_stale"`
	TradeURL               string             `json:"trade_url"`
	CoinID                 string             `json:"coin_id"`
	TargetCoinID           string             `json:"target_coin_id"`
}

// CoinTickersPage is one page of tickers for a coin.
type CoinTickersPage struct {
	Name    string   `json:"name"`
	Tickers []Ticker `json:"tickers"`
}

// HistoryMarketData holds the per-currency snapshot inside a historical
// data point.
type HistoryMarketData struct {
	CurrentPrice map[string]float64 `json:"current_price"`
	MarketCap    map[string]float64 `json:"market_cap"`
	TotalVolume  map[string]float64 `json:"total_volume"`
}

// CoinHistory is the snapshot of a coin on a given date.
type CoinHistory struct {
	ID           string             `json:"id"`
	Symbol       string             `json:"symbol"`
	Name         string             `json:"name"`
	Localization map[string]string  `json:"localization,omitempty"`
	Image        Image              `json:"image"`
	MarketData   *HistoryMarketData `json:"market_data,omitempty"`
}

// ChartPoint is a [timestamp, value] pair as returned by the chart
// endpoints. The timestamp is in milliseconds.
type ChartPoint [2]float64

// Time returns the point's timestamp.
func (p ChartPoint) Time() time.Time {
	return time.UnixMilli(int64(p[0]))
}

// Value returns the point's value.
func (p ChartPoint) Value() float64 {
	return p[1]
}

// MarketChart holds historical market data as time series.
type MarketChart struct {
	Prices       []ChartPoint `json:"prices"`
	MarketCaps   []ChartPoint `json:"market_caps"`
	TotalVolumes []ChartPoint `json:"total_volumes"`
}

// OHLC is a single candle: [timestamp, open, high, low, close]. The
// timestamp is in milliseconds.
type OHLC [5]float64

// Time returns the candle's timestamp.
func (o OHLC) Time() time.Time { return time.UnixMilli(int64(o[0])) }

// Open returns the candle's opening price.
func (o OHLC) Open() float64 { return o[1] }

// High returns the candle's highest price.
func (o OHLC) High() float64 { return o[2] }

// Low returns the candle's lowest price.
func (o OHLC) Low() float64 { return o[3] }

// Close returns the candle's closing price.
func (o OHLC) Close() float64 { return o[4] }

// AssetPlatform is one entry of the asset platforms list.
type AssetPlatform struct {
	ID              string `json:"id"`
	ChainIdentifier *int64 `json:"chain_identifier"`
	Name            string `json:"name"`
	ShortName       string `json:"shortname"`
}

// CategoriesListItem is one entry of the categories list.
type CategoriesListItem struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

// Category is one category with market data.
type Category struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	MarketCap          float64  `json:"market_cap"`
	MarketCapChange24h float64  `json:"market_cap_change_24h"`
	Content            string   `json:"content"`
	Top3Coins          []string `json:"top_3_coins"`
	Volume24h          float64  `json:"volume_24h"`
	UpdatedAt          string   `json:"updated_at"`
}

// Exchange is one entry of the exchanges listing.
type Exchange struct {
	ID                          string  `json:"id,omitempty"`
	Name                        string  `json:"name"`
	YearEstablished             int     `json:"year_established"`
	Country                     string  `json:"country"`
	Description                 string  `json:"description"`
	URL                         string  `json:"url"`
	Image                       string  `json:"image"`
	HasTradingIncentive         bool    `json:"has_trading_incentive"`
	TrustScore                  int     `json:"trust_score"`
	TrustScoreRank              int     `json:"trust_score_rank"`
	TradeVolume24hBTC           float64 `json:"trade_volume_24h_btc"`
	TradeVolume24hBTCNormalized float64 `json:"trade_volume_24h_btc_normalized"`
}

// ExchangesListItem is one entry of the exchanges id/name list.
type ExchangesListItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ExchangeDetail is the detailed data for a single exchange. The id is not
// part of the payload on this endpoint.
type ExchangeDetail struct {
	Exchange
	FacebookURL   string         `json:"facebook_url"`
	TwitterHandle string         `json:"twitter_handle"`
	Centralized   bool           `json:"centralized"`
	Tickers       []Ticker       `json:"tickers,omitempty"`
	StatusUpdates []StatusUpdate `json:"status_updates,omitempty"`
}

// VolumeChartPoint is one entry of an exchange volume chart. The API ships
// these as [timestamp, "volume"] pairs with the volume as a JSON string.
type VolumeChartPoint struct {
	Time   time.Time
	Volume float64
}

// UnmarshalJSON decodes the [timestamp, "volume"] wire pair.
func (p *VolumeChartPoint) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("volume chart point: expected 2 elements, got %d", len(raw))
	}

	ms, ok := raw[0].(float64)
	if !ok {
		return fmt.Errorf("volume chart point: unexpected timestamp %v", raw[0])
	}

	text, ok := raw[1].(string)
	if !ok {
		return fmt.Errorf("volume chart point: unexpected volume %v", raw[1])
	}
	volume, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("volume chart point: %w", err)
	}

	p.Time = time.UnixMilli(int64(ms))
	p.Volume = volume
	return nil
}

// FinancePlatform is one entry of the finance platforms list.
type FinancePlatform struct {
	Name        string `json:"name"`
	Facts       string `json:"facts"`
	Category    string `json:"category"`
	Centralized bool   `json:"centralized"`
	WebsiteURL  string `json:"website_url"`
}

// FinanceProduct is one entry of the finance products list. Rates arrive as
// strings on the wire.
type FinanceProduct struct {
	Platform             string `json:"platform"`
	Identifier           string `json:"identifier"`
	SupplyRatePercentage string `json:"supply_rate_percentage"`
	BorrowRatePercentage string `json:"borrow_rate_percentage"`
	NumberDuration       string `json:"number_duration"`
	LengthDuration       string `json:"length_duration"`
	StartAt              int64  `json:"start_at"`
	EndAt                int64  `json:"end_at"`
	ValueAt              int64  `json:"value_at"`
	RedeemAt             int64  `json:"redeem_at"`
}

// Index is one market index.
type Index struct {
	Name                  string  `json:"name"`
	ID                    string  `json:"id,omitempty"`
	Market                string  `json:"market"`
	Last                  float64 `json:"last"`
	IsMultiAssetComposite *bool   `json:"is_multi_asset_composite"`
}

// IndexesListItem is one entry of the indexes id/name list.
type IndexesListItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Derivative is one derivative ticker.
type Derivative struct {
	Market                   string  `json:"market"`
	Symbol                   string  `json:"symbol"`
	IndexID                  string  `json:"index_id"`
	Price                    string  `json:"price"`
	PricePercentageChange24h float64 `json:"price_percentage_change_24h"`
	ContractType             string  `json:"contract_type"`
	Index                    float64 `json:"index"`
	Basis                    float64 `json:"basis"`
	Spread                   float64 `json:"spread"`
	FundingRate              float64 `json:"funding_rate"`
	OpenInterest             float64 `json:"open_interest"`
	Volume24h                float64 `json:"volume_24h"`
	LastTradedAt             int64   `json:"last_traded_at"`
	ExpiredAt                *int64  `json:"expired_at"`
}

// DerivativesExchange is one derivatives exchange. Tickers are only present
// on the single-exchange endpoint when requested.
type DerivativesExchange struct {
	Name                   string   `json:"name"`
	ID                     string   `json:"id,omitempty"`
	OpenInterestBTC        float64  `json:"open_interest_btc"`
	TradeVolume24hBTC      string   `json:"trade_volume_24h_btc"`
	NumberOfPerpetualPairs int      `json:"number_of_perpetual_pairs"`
	NumberOfFuturesPairs   int      `json:"number_of_futures_pairs"`
	Image                  string   `json:"image"`
	YearEstablished        int      `json:"year_established"`
	Country                string   `json:"country"`
	Description            string   `json:"description"`
	URL                    string   `json:"url"`
	Tickers                []Ticker `json:"tickers,omitempty"`
}

// StatusUpdateProject identifies the coin or exchange a status update
// belongs to.
type StatusUpdateProject struct {
	Type   string `json:"type"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
	Image  *Image `json:"image,omitempty"`
}

// StatusUpdate is one project status update.
type StatusUpdate struct {
	Description string               `json:"description"`
	Category    string               `json:"category"`
	CreatedAt   time.Time            `json:"created_at"`
	User        string               `json:"user"`
	UserTitle   string               `json:"user_title"`
	Pin         bool                 `json:"pin"`
	Project     *StatusUpdateProject `json:"project,omitempty"`
}

// StatusUpdatesPage is one page of status updates.
type StatusUpdatesPage struct {
	StatusUpdates []StatusUpdate `json:"status_updates"`
}

// Event is one crypto event.
type Event struct {
	Type          string `json:"type"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Organizer     string `json:"organizer"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Website       string `json:"website"`
	Venue         string `json:"venue"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Country       string `json:"country"`
	ScreenshotURL string `json:"screenshot"`
	VirtualEvent  bool   `json:"virtual_event"`
}

// EventsPage is one page of events.
type EventsPage struct {
	Data  []Event `json:"data"`
	Count int     `json:"count"`
	Page  int     `json:"page"`
}

// EventCountry is one entry of the event countries list.
type EventCountry struct {
	Country string `json:"country"`
	Code    string `json:"code"`
}

// EventCountriesPage lists the countries events are held in.
type EventCountriesPage struct {
	Data  []EventCountry `json:"data"`
	Count int            `json:"count"`
}

// EventTypesPage lists the known event types.
type EventTypesPage struct {
	Data  []string `json:"data"`
	Count int      `json:"count"`
}

// ExchangeRate is one BTC exchange rate.
type ExchangeRate struct {
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
	Type  string  `json:"type"`
}

// ExchangeRates maps currency id -> BTC exchange rate.
type ExchangeRates struct {
	Rates map[string]ExchangeRate `json:"rates"`
}

// TrendingCoin is one coin of the trending search results.
type TrendingCoin struct {
	ID            string  `json:"id"`
	CoinID        int     `json:"coin_id"`
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	MarketCapRank int     `json:"market_cap_rank"`
	Thumb         string  `json:"thumb"`
	Small         string  `json:"small"`
	Large         string  `json:"large"`
	Slug          string  `json:"slug"`
	PriceBTC      float64 `json:"price_btc"`
	Score         int     `json:"score"`
}

// TrendingCoinItem wraps a trending coin; the API nests each coin under an
// "item" key.
type TrendingCoinItem struct {
	Item TrendingCoin `json:"item"`
}

// Trending is the trending search response.
type Trending struct {
	Coins []TrendingCoinItem `json:"coins"`
}

// GlobalData holds global cryptocurrency statistics.
type GlobalData struct {
	ActiveCryptocurrencies          int                `json:"active_cryptocurrencies"`
	UpcomingICOs                    int                `json:"upcoming_icos"`
	OngoingICOs                     int                `json:"ongoing_icos"`
	EndedICOs                       int                `json:"ended_icos"`
	Markets                         int                `json:"markets"`
	TotalMarketCap                  map[string]float64 `json:"total_market_cap"`
	TotalVolume                     map[string]float64 `json:"total_volume"`
	MarketCapPercentage             map[string]float64 `json:"market_cap_percentage"`
	MarketCapChangePercentage24hUSD float64            `json:"market_cap_change_percentage_24h_usd"`
	UpdatedAt                       int64              `json:"updated_at"`
}

// Global is the global statistics response.
type Global struct {
	Data GlobalData `json:"data"`
}

// GlobalDefiData holds global DeFi statistics. Most figures arrive as
// strings on the wire.
type GlobalDefiData struct {
	DefiMarketCap        string  `json:"defi_market_cap"`
	EthMarketCap         string  `json:"eth_market_cap"`
	DefiToEthRatio       string  `json:"defi_to_eth_ratio"`
	TradingVolume24h     string  `json:"trading_volume_24h"`
	DefiDominance        string  `json:"defi_dominance"`
	TopCoinName          string  `json:"top_coin_name"`
	TopCoinDefiDominance float64 `json:"top_coin_defi_dominance"`
}

// GlobalDefi is the global DeFi statistics response.
type GlobalDefi struct {
	Data GlobalDefiData `json:"data"`
}

// Company is one public company holding a treasury position.
type Company struct {
	Name                    string  `json:"name"`
	Symbol                  string  `json:"symbol"`
	Country                 string  `json:"country"`
	TotalHoldings           float64 `json:"total_holdings"`
	TotalEntryValueUSD      float64 `json:"total_entry_value_usd"`
	TotalCurrentValueUSD    float64 `json:"total_current_value_usd"`
	PercentageOfTotalSupply float64 `json:"percentage_of_total_supply"`
}

// CompaniesTreasury is the public treasury holdings response.
type CompaniesTreasury struct {
	TotalHoldings      float64   `json:"total_holdings"`
	TotalValueUSD      float64   `json:"total_value_usd"`
	MarketCapDominance float64   `json:"market_cap_dominance"`
	Companies          []Company `json:"companies"`
}
