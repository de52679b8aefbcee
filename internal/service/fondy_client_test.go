package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestFondySignatureDropsEmptyFieldsAndSorts(t *testing.T) {
	got := FondySignature("s", map[string]interface{}{
		"a": 1,
		"b": "",
		"c": 3,
	})
	// sha1("s|1|3")
	want := "6accb157f8c260c9c49800a100c637e3914e6064"
	if got != want {
		t.Fatalf("signature = %s, want %s", got, want)
	}
}

func TestFondySignatureSortsByFieldName(t *testing.T) {
	params := map[string]interface{}{
		"currency": "UAH",
		"amount":   299,
		"order_id": "order_abc",
	}
	// sha1("s|299|order_abc|UAH"): amount, order_id, currency ordered by name
	want := "766fd0169b961fa3a42d7f5cd5e9dc8768cad100"
	if got := FondySignature("s", params); got != want {
		t.Fatalf("signature = %s, want %s", got, want)
	}
}

func TestFondySignatureIgnoresNil(t *testing.T) {
	withNil := FondySignature("s", map[string]interface{}{"a": 1, "b": nil})
	without := FondySignature("s", map[string]interface{}{"a": 1})
	if withNil != without {
		t.Fatal("nil fields must not contribute to the signature")
	}
}

func TestCheckoutURLSuccess(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/checkout/url" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body struct {
			Request map[string]interface{} `json:"request"`
		}
		// UseNumber keeps integer fields in their wire form so the
		// signature can be recomputed over identical strings.
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		received = body.Request
		json.NewEncoder(w).Encode(map[string]interface{}{
			"response": map[string]interface{}{
				"response_status": "success",
				"checkout_url":    "https://pay.example.com/checkout/123",
			},
		})
	}))
	defer srv.Close()

	client := NewFondyClient(srv.URL, "merchant-pw", zerolog.Nop())
	url, err := client.CheckoutURL(context.Background(), map[string]interface{}{
		"order_id":    "order_abc",
		"merchant_id": 1396424,
		"amount":      59900,
		"currency":    "UAH",
	})
	if err != nil {
		t.Fatalf("CheckoutURL returned error: %v", err)
	}
	if url != "https://pay.example.com/checkout/123" {
		t.Fatalf("unexpected checkout url %s", url)
	}

	sig, ok := received["signature"].(string)
	if !ok || sig == "" {
		t.Fatal("request carried no signature")
	}
	delete(received, "signature")
	if want := FondySignature("merchant-pw", received); sig != want {
		t.Fatalf("request signature %s does not verify, want %s", sig, want)
	}
}

func TestCheckoutURLGatewayRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"response": map[string]interface{}{
				"response_status": "failure",
				"error_message":   "Order declined",
			},
		})
	}))
	defer srv.Close()

	client := NewFondyClient(srv.URL, "pw", zerolog.Nop())
	_, err := client.CheckoutURL(context.Background(), map[string]interface{}{"order_id": "x"})
	if !errors.Is(err, ErrPaymentInitFailed) {
		t.Fatalf("expected ErrPaymentInitFailed, got %v", err)
	}
}

func TestCheckoutURLUnreachableGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewFondyClient(srv.URL, "pw", zerolog.Nop())
	_, err := client.CheckoutURL(context.Background(), map[string]interface{}{"order_id": "x"})
	if !errors.Is(err, ErrGatewayUnavailable) {
		t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
	}
}
