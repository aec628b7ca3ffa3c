package provider

import (
	"context"
	"fmt"
)

// GetLatestTrade fetches the most recent trade for a stock.
func (c *Client) GetLatestTrade(ctx context.Context, symbol string) (*LatestTrade, error) {
	var resp LatestTradeResponse
	if err := c.get(ctx, "/v2/stocks/"+symbol+"/trades/latest", nil, &resp); err != nil {
		return nil, fmt.Errorf("get latest trade %s: %w", symbol, err)
	}
	return &resp.Trade, nil
}

// GetLatestQuote fetches the most recent NBBO quote for a stock.
func (c *Client) GetLatestQuote(ctx context.Context, symbol string) (*LatestQuote, error) {
	var resp LatestQuoteResponse
	if err := c.get(ctx, "/v2/stocks/"+symbol+"/quotes/latest", nil, &resp); err != nil {
		return nil, fmt.Errorf("get latest quote %s: %w", symbol, err)
	}
	return &resp.Quote, nil
}
