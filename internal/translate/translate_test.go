package translate

import (
	"reflect"
	"testing"
)

func TestDecodeTrade(t *testing.T) {
	frame := []byte(`{"T":"t","S":"AAPL","p":"1.5","s":"10","t":"2026-08-25T14:30:00Z","c":["@","I"]}`)

	res := Decode(frame)
	if res.Kind != KindTrade {
		t.Fatalf("Kind = %v, want KindTrade", res.Kind)
	}
	if res.Trade.Symbol != "AAPL" {
		t.Errorf("Symbol = %q, want AAPL", res.Trade.Symbol)
	}
	if res.Trade.Price != 1.5 {
		t.Errorf("Price = %v, want 1.5", res.Trade.Price)
	}
	if res.Trade.Size != 10 {
		t.Errorf("Size = %d, want 10", res.Trade.Size)
	}
	if res.Trade.Timestamp != "2026-08-25T14:30:00Z" {
		t.Errorf("Timestamp = %q", res.Trade.Timestamp)
	}
	if !reflect.DeepEqual(res.Trade.Conditions, []string{"@", "I"}) {
		t.Errorf("Conditions = %v, want [@ I]", res.Trade.Conditions)
	}
}

func TestDecodeQuote(t *testing.T) {
	frame := []byte(`{"T":"q","S":"T.SPY","b":449.95,"bs":3,"a":450.05,"as":7,"t":"ts"}`)

	res := Decode(frame)
	if res.Kind != KindQuote {
		t.Fatalf("Kind = %v, want KindQuote", res.Kind)
	}
	q := res.Quote
	if q.Symbol != "T.SPY" || q.BidPrice != 449.95 || q.BidSize != 3 || q.AskPrice != 450.05 || q.AskSize != 7 {
		t.Errorf("Quote = %+v", q)
	}
}

func TestDecodeArrayUnwrapsFirstElement(t *testing.T) {
	wrapped := Decode([]byte(`[{"T":"t","S":"AAPL","p":1.5,"s":10,"t":"X","c":[]}]`))
	bare := Decode([]byte(`{"T":"t","S":"AAPL","p":1.5,"s":10,"t":"X","c":[]}`))

	if wrapped.Kind != KindTrade || bare.Kind != KindTrade {
		t.Fatalf("kinds = %v, %v, want KindTrade", wrapped.Kind, bare.Kind)
	}
	if !reflect.DeepEqual(wrapped.Trade, bare.Trade) {
		t.Errorf("wrapped = %+v, bare = %+v", wrapped.Trade, bare.Trade)
	}
}

func TestDecodeUnrecognized(t *testing.T) {
	frames := [][]byte{
		[]byte(`not json`),
		[]byte(`{"T":"z"}`),
		[]byte(`[]`),
		[]byte(`42`),
		[]byte(`["just a string"]`),
		[]byte(`{}`),
	}

	for _, frame := range frames {
		if res := Decode(frame); res.Kind != KindUnrecognized {
			t.Errorf("Decode(%s).Kind = %v, want KindUnrecognized", frame, res.Kind)
		}
	}
}

func TestDecodeDefensiveDefaults(t *testing.T) {
	// Partially malformed but parseable frames still yield an event.
	res := Decode([]byte(`{"T":"t","S":"AAPL","p":"garbage","s":null}`))
	if res.Kind != KindTrade {
		t.Fatalf("Kind = %v, want KindTrade", res.Kind)
	}
	if res.Trade.Price != 0 {
		t.Errorf("Price = %v, want 0", res.Trade.Price)
	}
	if res.Trade.Size != 0 {
		t.Errorf("Size = %d, want 0", res.Trade.Size)
	}
	if res.Trade.Conditions == nil {
		t.Error("Conditions should be empty, not nil")
	}
}

func TestIsAuthAck(t *testing.T) {
	tests := []struct {
		name  string
		frame string
		want  bool
	}{
		{"top level success", `{"T":"success","msg":"authenticated"}`, true},
		{"array wrapped success", `[{"T":"success","msg":"connected"}]`, true},
		{"error frame", `[{"T":"error","code":402,"msg":"auth failed"}]`, false},
		{"trade frame", `{"T":"t"}`, false},
		{"not json", `welcome`, false},
		{"empty array", `[]`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAuthAck([]byte(tt.frame)); got != tt.want {
				t.Errorf("IsAuthAck(%s) = %v, want %v", tt.frame, got, tt.want)
			}
		})
	}
}
