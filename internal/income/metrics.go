package income

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	sharesPerContract = 100
	daysPerYear       = 365
)

// ErrInvalidInput tags validation failures so the web layer can map them
// to 400 responses. Wrap with details via fmt.Errorf("...: %w", ...).
var ErrInvalidInput = errors.New("invalid input")

// Input is one metrics request.
type Input struct {
	Ticker        string
	StockPrice    float64
	StrikePrice   float64
	OptionPremium float64
	Contracts     int    // defaults to 1
	ExpirationS   string // YYYY-MM-DD
}

// Metrics is the computed result. All monetary and percentage values are
// rounded to 2 decimals.
type Metrics struct {
	Ticker            string  `json:"ticker_symbol"`
	StockPrice        float64 `json:"stock_price"`
	StrikePrice       float64 `json:"strike_price"`
	OptionPremium     float64 `json:"option_premium"`
	ExpirationDate    string  `json:"expiration_date"`
	DropPercentage    float64 `json:"drop_percentage"`
	BreakevenPrice    float64 `json:"breakeven_price"`
	PremiumCollected  float64 `json:"premium_collected"`
	DaysToExpiration  int     `json:"days_to_expiration"`
	ReturnAtExp       float64 `json:"return_at_expiration"`
	PremiumAnnualized float64 `json:"premium_annualized"`
}

// Calculate computes put-income metrics for the input. today bounds the
// days-to-expiration arithmetic; an expiration before today is invalid.
func Calculate(in Input, today time.Time) (*Metrics, error) {
	if in.StockPrice <= 0 {
		return nil, fmt.Errorf("%w: stock_price must be positive", ErrInvalidInput)
	}
	if in.StrikePrice <= 0 {
		return nil, fmt.Errorf("%w: strike_price must be positive", ErrInvalidInput)
	}
	if in.OptionPremium < 0 {
		return nil, fmt.Errorf("%w: option_premium cannot be negative", ErrInvalidInput)
	}

	contracts := in.Contracts
	if contracts == 0 {
		contracts = 1
	}
	if contracts < 0 {
		return nil, fmt.Errorf("%w: number_of_contracts cannot be negative", ErrInvalidInput)
	}

	expiration, err := time.Parse("2006-01-02", in.ExpirationS)
	if err != nil {
		return nil, fmt.Errorf("%w: expiration_date must be YYYY-MM-DD", ErrInvalidInput)
	}

	days := daysBetween(today, expiration)
	if days < 0 {
		return nil, fmt.Errorf("%w: expiration date cannot be in the past", ErrInvalidInput)
	}

	stock := decimal.NewFromFloat(in.StockPrice)
	strike := decimal.NewFromFloat(in.StrikePrice)
	premium := decimal.NewFromFloat(in.OptionPremium)
	hundred := decimal.NewFromInt(100)

	breakeven := strike.Sub(premium)
	collected := premium.Mul(decimal.NewFromInt(int64(contracts))).Mul(decimal.NewFromInt(sharesPerContract))
	drop := stock.Sub(strike).Div(stock).Mul(hundred)
	returnAtExp := premium.Div(strike).Mul(hundred)

	annualized := decimal.Zero
	if days > 0 {
		annualized = returnAtExp.Mul(decimal.NewFromInt(daysPerYear)).Div(decimal.NewFromInt(int64(days)))
	}

	return &Metrics{
		Ticker:            in.Ticker,
		StockPrice:        in.StockPrice,
		StrikePrice:       in.StrikePrice,
		OptionPremium:     in.OptionPremium,
		ExpirationDate:    in.ExpirationS,
		DropPercentage:    round2(drop),
		BreakevenPrice:    round2(breakeven),
		PremiumCollected:  round2(collected),
		DaysToExpiration:  days,
		ReturnAtExp:       round2(returnAtExp),
		PremiumAnnualized: round2(annualized),
	}, nil
}

// daysBetween counts whole calendar days from a to b, ignoring clock time.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
