package relay

import (
	"time"

	"github.com/putwheel/optionstream/internal/marketclock"
	"github.com/putwheel/optionstream/internal/translate"
)

// Control message status values.
const (
	statusConnecting = "connecting"
	statusConnected  = "connected"
	statusKeepalive  = "keepalive"
	statusError      = "error"
)

// errorSolution is the fixed remediation hint sent with every error.
const errorSolution = "1) Try a different symbol 2) Check provider status page"

// controlMessage is a server-to-client status notice.
type controlMessage struct {
	Status       string `json:"status"`
	Symbol       string `json:"symbol,omitempty"`
	Message      string `json:"message,omitempty"`
	MarketStatus string `json:"market_status,omitempty"`
	ServerTime   string `json:"server_time"`
	Solution     string `json:"solution,omitempty"`
}

// tradeMessage is a forwarded trade tick.
type tradeMessage struct {
	Event      string   `json:"event"`
	Symbol     string   `json:"symbol"`
	Price      float64  `json:"price"`
	Size       int      `json:"size"`
	Timestamp  string   `json:"timestamp"`
	Conditions []string `json:"conditions"`
}

// quoteMessage is a forwarded quote tick.
type quoteMessage struct {
	Event     string  `json:"event"`
	Symbol    string  `json:"symbol"`
	BidPrice  float64 `json:"bid_price"`
	BidSize   int     `json:"bid_size"`
	AskPrice  float64 `json:"ask_price"`
	AskSize   int     `json:"ask_size"`
	Timestamp string  `json:"timestamp"`
}

func connectingMessage(symbol string, now time.Time) controlMessage {
	return controlMessage{
		Status:       statusConnecting,
		Symbol:       symbol,
		MarketStatus: marketclock.Status(now),
		ServerTime:   marketclock.ServerTime(now),
	}
}

func connectedMessage(now time.Time) controlMessage {
	return controlMessage{
		Status:       statusConnected,
		Message:      "Streaming active - waiting for data",
		MarketStatus: marketclock.Status(now),
		ServerTime:   marketclock.ServerTime(now),
	}
}

func keepaliveMessage(now time.Time) controlMessage {
	return controlMessage{
		Status:     statusKeepalive,
		Message:    "Waiting for data...",
		ServerTime: marketclock.ServerTime(now),
	}
}

func errorMessage(message string, now time.Time) controlMessage {
	return controlMessage{
		Status:     statusError,
		Message:    message,
		ServerTime: marketclock.ServerTime(now),
		Solution:   errorSolution,
	}
}

func newTradeMessage(t *translate.Trade) tradeMessage {
	return tradeMessage{
		Event:      "trade",
		Symbol:     t.Symbol,
		Price:      t.Price,
		Size:       t.Size,
		Timestamp:  t.Timestamp,
		Conditions: t.Conditions,
	}
}

func newQuoteMessage(q *translate.Quote) quoteMessage {
	return quoteMessage{
		Event:     "quote",
		Symbol:    q.Symbol,
		BidPrice:  q.BidPrice,
		BidSize:   q.BidSize,
		AskPrice:  q.AskPrice,
		AskSize:   q.AskSize,
		Timestamp: q.Timestamp,
	}
}
