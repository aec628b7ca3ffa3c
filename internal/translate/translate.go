package translate

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Kind identifies the decoded variant of a provider frame.
type Kind int

const (
	KindUnrecognized Kind = iota
	KindTrade
	KindQuote
	KindAck
)

// Trade is a normalized trade tick.
type Trade struct {
	Symbol     string
	Price      float64
	Size       int
	Timestamp  string
	Conditions []string
}

// Quote is a normalized quote tick.
type Quote struct {
	Symbol    string
	BidPrice  float64
	BidSize   int
	AskPrice  float64
	AskSize   int
	Timestamp string
}

// Result is the outcome of decoding one frame. Exactly one of Trade and
// Quote is set, matching Kind.
type Result struct {
	Kind  Kind
	Trade *Trade
	Quote *Quote
}

// Decode parses a raw provider frame. It never returns an error: anything
// that cannot be read as a trade, quote, or control ack is Unrecognized.
func Decode(data []byte) Result {
	payload, ok := effectivePayload(data)
	if !ok {
		return Result{Kind: KindUnrecognized}
	}

	switch asString(payload["T"]) {
	case "t":
		return Result{Kind: KindTrade, Trade: &Trade{
			Symbol:     asString(payload["S"]),
			Price:      asFloat(payload["p"]),
			Size:       asInt(payload["s"]),
			Timestamp:  asString(payload["t"]),
			Conditions: asStrings(payload["c"]),
		}}
	case "q":
		return Result{Kind: KindQuote, Quote: &Quote{
			Symbol:    asString(payload["S"]),
			BidPrice:  asFloat(payload["b"]),
			BidSize:   asInt(payload["bs"]),
			AskPrice:  asFloat(payload["a"]),
			AskSize:   asInt(payload["as"]),
			Timestamp: asString(payload["t"]),
		}}
	case "success":
		return Result{Kind: KindAck}
	default:
		return Result{Kind: KindUnrecognized}
	}
}

// IsAuthAck reports whether a bootstrap response frame carries the
// provider's success tag, at top level or in the first array element.
func IsAuthAck(data []byte) bool {
	payload, ok := effectivePayload(data)
	if !ok {
		return false
	}
	return asString(payload["T"]) == "success"
}

// effectivePayload unwraps the logical message object from a frame. The
// provider may batch a single message inside a top-level array.
func effectivePayload(data []byte) (map[string]any, bool) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, false
	}

	if list, ok := raw.([]any); ok {
		if len(list) == 0 {
			return nil, false
		}
		raw = list[0]
	}

	payload, ok := raw.(map[string]any)
	return payload, ok
}

// asFloat coerces a JSON value to float64, defaulting to zero. The
// provider sends numeric fields as either numbers or strings.
func asFloat(v any) float64 {
	switch val := v.(type) {
	case json.Number:
		f, _ := val.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(val, 64)
		return f
	case float64:
		return val
	default:
		return 0
	}
}

func asInt(v any) int {
	switch val := v.(type) {
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return int(n)
		}
		f, _ := val.Float64()
		return int(f)
	case string:
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
		f, _ := strconv.ParseFloat(val, 64)
		return int(f)
	case float64:
		return int(val)
	default:
		return 0
	}
}

func asString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	default:
		return ""
	}
}

func asStrings(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s := asString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
