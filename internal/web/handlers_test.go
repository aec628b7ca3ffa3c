package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/putwheel/optionstream/internal/provider"
)

// mockProviderAPI serves canned data-API responses.
func mockProviderAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/v2/stocks/TST/trades/latest", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"symbol":"TST","trade":{"p":98.0,"s":10,"t":"ts"}}`))
	})
	mux.HandleFunc("/v2/stocks/TST/quotes/latest", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"symbol":"TST","quote":{"bp":97.9,"bs":2,"ap":98.1,"as":3,"t":"ts"}}`))
	})
	mux.HandleFunc("/v2/options/contracts", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"option_contracts":[
			{"symbol":"TST300117P00090000","type":"put","strike_price":"90","expiration_date":"2030-01-17"},
			{"symbol":"TST300117P00095000","type":"put","strike_price":"95","expiration_date":"2030-01-17"},
			{"symbol":"TST300221P00100000","type":"put","strike_price":"100","expiration_date":"2030-02-21"},
			{"symbol":"TST300221P00105000","type":"put","strike_price":"105","expiration_date":"2030-02-21"},
			{"symbol":"TST300117C00100000","type":"call","strike_price":"100","expiration_date":"2030-01-17"}
		],"next_page_token":""}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	return httptest.NewServer(mux)
}

func newAPITestServer(t *testing.T) *httptest.Server {
	t.Helper()
	upstream := mockProviderAPI(t)
	t.Cleanup(upstream.Close)

	pc := provider.NewClient(upstream.URL, "k", "s")
	s := NewServer(nil, pc, nil)
	server := httptest.NewServer(s.Handler())
	t.Cleanup(server.Close)
	return server
}

func getJSON(t *testing.T, url string, wantStatus int) map[string]any {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s status = %d, want %d", url, resp.StatusCode, wantStatus)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func postJSON(t *testing.T, url string, payload any) (*http.Response, map[string]any) {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return resp, body
}

func TestPutContractsEndpoint(t *testing.T) {
	server := newAPITestServer(t)

	body := getJSON(t, server.URL+"/api/options/puts/?ticker=TST", 200)

	if body["current_stock_price"] != 98.0 {
		t.Errorf("current_stock_price = %v, want 98", body["current_stock_price"])
	}
	if body["at_the_money_strike_price"] != 100.0 {
		t.Errorf("at_the_money_strike_price = %v, want 100", body["at_the_money_strike_price"])
	}
	strikes, _ := body["closest_strike_prices"].([]any)
	if len(strikes) != 4 {
		t.Errorf("closest_strike_prices = %v", strikes)
	}
	dates, _ := body["next_expiration_dates"].([]any)
	if len(dates) != 2 || dates[0] != "2030-01-17" {
		t.Errorf("next_expiration_dates = %v", dates)
	}
}

func TestPutContractsMissingTicker(t *testing.T) {
	server := newAPITestServer(t)

	body := getJSON(t, server.URL+"/api/options/puts/", 400)
	if body["error"] == "" {
		t.Errorf("body = %v, want error message", body)
	}
}

func TestPutContractsProviderNotFound(t *testing.T) {
	server := newAPITestServer(t)

	// Unknown ticker falls through to the provider's 404.
	body := getJSON(t, server.URL+"/api/options/puts/?ticker=NOPE", 404)
	if body["error"] == "" {
		t.Errorf("body = %v, want error message", body)
	}
}

func TestCalculateEndpoint(t *testing.T) {
	server := newAPITestServer(t)

	resp, body := postJSON(t, server.URL+"/api/options/puts/calculate/", map[string]any{
		"ticker_symbol":       "TST",
		"stock_price":         100,
		"strike_price":        95,
		"option_premium":      2,
		"number_of_contracts": 1,
		"expiration_date_str": "2030-01-17",
	})

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}
	if body["breakeven_price"] != 93.0 {
		t.Errorf("breakeven_price = %v, want 93", body["breakeven_price"])
	}
	if body["premium_collected"] != 200.0 {
		t.Errorf("premium_collected = %v, want 200", body["premium_collected"])
	}
	if body["drop_percentage"] != 5.0 {
		t.Errorf("drop_percentage = %v, want 5", body["drop_percentage"])
	}
	if body["return_at_expiration"] != 2.11 {
		t.Errorf("return_at_expiration = %v, want 2.11", body["return_at_expiration"])
	}
}

func TestCalculatePastExpiration(t *testing.T) {
	server := newAPITestServer(t)

	resp, body := postJSON(t, server.URL+"/api/options/puts/calculate/", map[string]any{
		"ticker_symbol":       "TST",
		"stock_price":         100,
		"strike_price":        95,
		"option_premium":      2,
		"expiration_date_str": "2020-01-17",
	})

	if resp.StatusCode != 400 {
		t.Fatalf("status = %d, want 400 (body %v)", resp.StatusCode, body)
	}
}

func TestCalculateMissingFields(t *testing.T) {
	server := newAPITestServer(t)

	resp, body := postJSON(t, server.URL+"/api/options/puts/calculate/", map[string]any{
		"ticker_symbol": "TST",
	})

	if resp.StatusCode != 400 {
		t.Fatalf("status = %d, want 400 (body %v)", resp.StatusCode, body)
	}
}

func TestQuoteEndpoint(t *testing.T) {
	server := newAPITestServer(t)

	body := getJSON(t, server.URL+"/api/quote/?ticker=TST", 200)
	quote, _ := body["last_quote"].(map[string]any)
	if quote == nil || quote["bp"] != 97.9 {
		t.Errorf("last_quote = %v", body["last_quote"])
	}
}

func TestHealthEndpoint(t *testing.T) {
	server := newAPITestServer(t)

	body := getJSON(t, server.URL+"/api/health", 200)
	if body["status"] != "ok" {
		t.Errorf("status = %v, want ok", body["status"])
	}
	if body["market_status"] == "" || body["server_time"] == "" {
		t.Errorf("missing clock fields: %v", body)
	}
}
