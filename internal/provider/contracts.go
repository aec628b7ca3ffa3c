package provider

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"time"
)

// Put-summary shaping constants.
const (
	// strikeBandSteps * strikeBandStep of the at-the-money strike on each
	// side bounds the strikes worth showing (roughly +/-50% notional).
	strikeBandSteps = 10
	strikeBandStep  = 0.05

	maxClosestStrikes = 21
	maxExpirations    = 8

	contractsPageLimit = 1000
)

// ErrNoPutContracts means the underlying has no listed puts.
var ErrNoPutContracts = errors.New("no put contracts found")

// GetOptionContracts fetches all option contracts for an underlying,
// paginating through results.
func (c *Client) GetOptionContracts(ctx context.Context, underlying string) ([]OptionContract, error) {
	var all []OptionContract
	pageToken := ""

	for {
		query := url.Values{}
		query.Set("underlying_symbols", underlying)
		query.Set("limit", strconv.Itoa(contractsPageLimit))
		if pageToken != "" {
			query.Set("page_token", pageToken)
		}

		var resp ContractsResponse
		if err := c.get(ctx, "/v2/options/contracts", query, &resp); err != nil {
			return nil, fmt.Errorf("get option contracts %s: %w", underlying, err)
		}

		all = append(all, resp.Contracts...)

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	return all, nil
}

// PutSummary is the shaped put-contract view for one underlying.
type PutSummary struct {
	ATMStrike       float64   `json:"at_the_money_strike_price"`
	ClosestStrikes  []float64 `json:"closest_strike_prices"`
	NextExpirations []string  `json:"next_expiration_dates"`
}

// SummarizePuts reduces a contract list to the put strikes and expirations
// worth presenting: the at-the-money strike, up to 21 unique strikes inside
// the band around it, and up to 8 upcoming expiration dates. Pure; today
// bounds the expiration filter.
func SummarizePuts(contracts []OptionContract, stockPrice float64, today time.Time) (*PutSummary, error) {
	var puts []OptionContract
	for _, contract := range contracts {
		if contract.Type == "put" {
			puts = append(puts, contract)
		}
	}
	if len(puts) == 0 {
		return nil, ErrNoPutContracts
	}

	atm := strikeOf(puts[0])
	for _, p := range puts[1:] {
		if s := strikeOf(p); math.Abs(s-stockPrice) < math.Abs(atm-stockPrice) {
			atm = s
		}
	}

	lower := atm - strikeBandSteps*math.Abs(atm*strikeBandStep)
	upper := atm + strikeBandSteps*math.Abs(atm*strikeBandStep)

	var banded []OptionContract
	for _, p := range puts {
		if s := strikeOf(p); s >= lower && s <= upper {
			banded = append(banded, p)
		}
	}
	sort.SliceStable(banded, func(i, j int) bool {
		return math.Abs(strikeOf(banded[i])-stockPrice) < math.Abs(strikeOf(banded[j])-stockPrice)
	})
	if len(banded) > maxClosestStrikes {
		banded = banded[:maxClosestStrikes]
	}

	strikeSet := map[float64]struct{}{}
	for _, p := range banded {
		strikeSet[strikeOf(p)] = struct{}{}
	}
	strikes := make([]float64, 0, len(strikeSet))
	for s := range strikeSet {
		strikes = append(strikes, s)
	}
	sort.Float64s(strikes)

	return &PutSummary{
		ATMStrike:       atm,
		ClosestStrikes:  strikes,
		NextExpirations: upcomingExpirations(puts, today),
	}, nil
}

// upcomingExpirations lists unique expiration dates on or after today,
// ascending, capped at maxExpirations.
func upcomingExpirations(puts []OptionContract, today time.Time) []string {
	day := today.Format("2006-01-02")

	seen := map[string]struct{}{}
	var dates []string
	for _, p := range puts {
		if p.ExpirationDate < day {
			continue
		}
		if _, ok := seen[p.ExpirationDate]; ok {
			continue
		}
		seen[p.ExpirationDate] = struct{}{}
		dates = append(dates, p.ExpirationDate)
	}
	sort.Strings(dates)

	if len(dates) > maxExpirations {
		dates = dates[:maxExpirations]
	}
	return dates
}

// strikeOf parses the provider's string strike, zero on garbage.
func strikeOf(c OptionContract) float64 {
	s, _ := strconv.ParseFloat(c.StrikePrice, 64)
	return s
}
