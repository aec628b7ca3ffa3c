package provider

// LatestTradeResponse from GET /v2/stocks/{symbol}/trades/latest
type LatestTradeResponse struct {
	Symbol string      `json:"symbol"`
	Trade  LatestTrade `json:"trade"`
}

// LatestTrade is the most recent trade for a stock.
type LatestTrade struct {
	Price     float64 `json:"p"`
	Size      int     `json:"s"`
	Timestamp string  `json:"t"`
}

// LatestQuoteResponse from GET /v2/stocks/{symbol}/quotes/latest
type LatestQuoteResponse struct {
	Symbol string      `json:"symbol"`
	Quote  LatestQuote `json:"quote"`
}

// LatestQuote is the most recent NBBO quote for a stock.
type LatestQuote struct {
	BidPrice  float64 `json:"bp"`
	BidSize   int     `json:"bs"`
	AskPrice  float64 `json:"ap"`
	AskSize   int     `json:"as"`
	Timestamp string  `json:"t"`
}

// ContractsResponse from GET /v2/options/contracts
type ContractsResponse struct {
	Contracts     []OptionContract `json:"option_contracts"`
	NextPageToken string           `json:"next_page_token"`
}

// OptionContract represents one listed option contract.
type OptionContract struct {
	Symbol         string `json:"symbol"`
	Name           string `json:"name"`
	Type           string `json:"type"` // "put" or "call"
	StrikePrice    string `json:"strike_price"`
	ExpirationDate string `json:"expiration_date"` // YYYY-MM-DD
}
