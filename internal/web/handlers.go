package web

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/putwheel/optionstream/internal/income"
	"github.com/putwheel/optionstream/internal/marketclock"
	"github.com/putwheel/optionstream/internal/provider"
	"github.com/putwheel/optionstream/internal/version"
)

// handlePutContracts returns the shaped put view for one underlying:
// at-the-money strike, nearby strikes, upcoming expirations.
func (s *Server) handlePutContracts(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		c.JSON(400, gin.H{"error": "ticker parameter is required"})
		return
	}

	ctx := c.Request.Context()

	trade, err := s.provider.GetLatestTrade(ctx, ticker)
	if err != nil {
		s.providerError(c, err)
		return
	}

	contracts, err := s.provider.GetOptionContracts(ctx, ticker)
	if err != nil {
		s.providerError(c, err)
		return
	}

	summary, err := provider.SummarizePuts(contracts, trade.Price, time.Now())
	if err != nil {
		if errors.Is(err, provider.ErrNoPutContracts) {
			c.JSON(404, gin.H{"error": fmt.Sprintf("no put options found for %s", ticker)})
			return
		}
		s.providerError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"current_stock_price":       trade.Price,
		"at_the_money_strike_price": summary.ATMStrike,
		"closest_strike_prices":     summary.ClosestStrikes,
		"next_expiration_dates":     summary.NextExpirations,
	})
}

// calculateRequest is the metrics request body.
type calculateRequest struct {
	Ticker        string   `json:"ticker_symbol" binding:"required"`
	StockPrice    *float64 `json:"stock_price" binding:"required"`
	StrikePrice   *float64 `json:"strike_price" binding:"required"`
	OptionPremium *float64 `json:"option_premium" binding:"required"`
	Expiration    string   `json:"expiration_date_str" binding:"required"`
	Contracts     int      `json:"number_of_contracts"`
}

// handleCalculate computes put-income metrics from user-supplied numbers.
func (s *Server) handleCalculate(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "missing or invalid parameters: " + err.Error()})
		return
	}

	metrics, err := income.Calculate(income.Input{
		Ticker:        req.Ticker,
		StockPrice:    *req.StockPrice,
		StrikePrice:   *req.StrikePrice,
		OptionPremium: *req.OptionPremium,
		Contracts:     req.Contracts,
		ExpirationS:   req.Expiration,
	}, time.Now())
	if err != nil {
		if errors.Is(err, income.ErrInvalidInput) {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, metrics)
}

// handleQuote passes through the latest NBBO quote for a ticker.
func (s *Server) handleQuote(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		c.JSON(400, gin.H{"error": "ticker parameter is required"})
		return
	}

	quote, err := s.provider.GetLatestQuote(c.Request.Context(), ticker)
	if err != nil {
		s.providerError(c, err)
		return
	}

	c.JSON(200, gin.H{"last_quote": quote})
}

// handleHealth reports service and market status.
func (s *Server) handleHealth(c *gin.Context) {
	now := time.Now()
	c.JSON(200, gin.H{
		"status":        "ok",
		"version":       version.String(),
		"market_status": marketclock.Status(now),
		"server_time":   marketclock.ServerTime(now),
	})
}

// providerError maps provider client failures to structured responses.
// Provider 4xx statuses pass through; everything else is a bad gateway.
func (s *Server) providerError(c *gin.Context, err error) {
	var apiErr *provider.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		c.JSON(apiErr.StatusCode, gin.H{"error": fmt.Sprintf("provider rejected request: %s", apiErr.Message)})
		return
	}

	s.logger.Warn("provider request failed", "error", err)
	c.JSON(502, gin.H{"error": "error fetching data from provider: " + err.Error()})
}
