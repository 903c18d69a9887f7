package payments

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// Client talks to the external payment gateway. It creates payment intents
// and hands the client secret back to the frontend; the capture itself
// happens entirely on the gateway's side.
type Client struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
}

func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:   baseURL,
		secretKey: secretKey,
	}
}

// CreateIntent asks the gateway for a new payment intent and returns its
// client secret.
func (c *Client) CreateIntent(amountInCents int64, currency string) (string, error) {
	body, err := json.Marshal(PaymentIntentRequest{
		Amount:   amountInCents,
		Currency: currency,
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequest("POST", c.baseURL+"/v1/payment_intents", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", errors.New("payment gateway returned non-OK status: " + resp.Status)
	}

	var apiResp PaymentIntentResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", err
	}

	if apiResp.ClientSecret == "" {
		return "", errors.New("payment gateway returned empty client secret")
	}

	return apiResp.ClientSecret, nil
}
