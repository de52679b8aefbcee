package service

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	// ErrPaymentInitFailed means the gateway rejected the checkout request
	// and reported why.
	ErrPaymentInitFailed = errors.New("payment initialization failed")
	// ErrGatewayUnavailable means the gateway could not be reached or did
	// not answer with a parseable response.
	ErrGatewayUnavailable = errors.New("payment service unavailable")
)

const gatewayTimeout = 30 * time.Second

// FondyClient requests hosted checkout URLs from the Fondy gateway. A single
// synchronous attempt per checkout; no retries.
type FondyClient interface {
	CheckoutURL(ctx context.Context, params map[string]interface{}) (string, error)
}

type fondyClient struct {
	apiURL   string
	password string
	client   *http.Client
	logger   zerolog.Logger
}

func NewFondyClient(apiURL, merchantPassword string, logger zerolog.Logger) FondyClient {
	return &fondyClient{
		apiURL:   strings.TrimRight(apiURL, "/"),
		password: merchantPassword,
		client:   &http.Client{Timeout: gatewayTimeout},
		logger:   logger.With().Str("service", "FondyClient").Logger(),
	}
}

// FondySignature computes the request signature the gateway verifies:
// empty and nil parameters are dropped, the rest are ordered by parameter
// name, and the SHA-1 of secret|value1|value2|... is hex-encoded. The field
// exclusion rule, sort order, delimiter and secret placement are part of the
// gateway's wire contract and must not change.
func FondySignature(secret string, params map[string]interface{}) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == nil || fmt.Sprint(v) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys)+1)
	parts = append(parts, secret)
	for _, k := range keys {
		parts = append(parts, fmt.Sprint(params[k]))
	}
	sum := sha1.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

type fondyResponse struct {
	Response struct {
		ResponseStatus string `json:"response_status"`
		CheckoutURL    string `json:"checkout_url"`
		ErrorMessage   string `json:"error_message"`
	} `json:"response"`
}

func (c *fondyClient) CheckoutURL(ctx context.Context, params map[string]interface{}) (string, error) {
	params["signature"] = FondySignature(c.password, params)

	body, err := json.Marshal(map[string]interface{}{"request": params})
	if err != nil {
		return "", fmt.Errorf("marshal checkout request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/checkout/url", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build checkout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Msg("Fondy request error")
		return "", fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	var data fondyResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		c.logger.Error().Err(err).Msg("Failed to decode Fondy response")
		return "", fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	if data.Response.ResponseStatus != "success" {
		msg := data.Response.ErrorMessage
		if msg == "" {
			msg = "Payment initialization failed"
		}
		return "", fmt.Errorf("%w: %s", ErrPaymentInitFailed, msg)
	}
	return data.Response.CheckoutURL, nil
}
