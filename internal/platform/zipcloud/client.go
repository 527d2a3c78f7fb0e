// Package zipcloud wraps the public zipcloud postal-code API used for
// address autofill during patient entry.
package zipcloud

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://zipcloud.ibsnet.co.jp"

var zipcodePattern = regexp.MustCompile(`^\d{7}$`)

// Address is one resolved postal address.
type Address struct {
	Zipcode    string `json:"zipcode"`
	Prefecture string `json:"address1"`
	City       string `json:"address2"`
	Town       string `json:"address3"`
}

type searchResponse struct {
	Status  int       `json:"status"`
	Message string    `json:"message"`
	Results []Address `json:"results"`
}

// Client is a thin resty client for the zipcloud search endpoint.
type Client struct {
	httpClient *resty.Client
}

// New builds a client. baseURL is overridable for tests; empty selects the
// public service.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Accept", "application/json")
	return &Client{httpClient: httpClient}
}

// Search resolves a 7-digit postal code (no hyphen) to candidate addresses.
// An unknown code returns an empty slice, not an error.
func (c *Client) Search(ctx context.Context, zipcode string) ([]Address, error) {
	if !zipcodePattern.MatchString(zipcode) {
		return nil, fmt.Errorf("invalid zipcode %q: want 7 digits", zipcode)
	}

	var out searchResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("zipcode", zipcode).
		SetResult(&out).
		Get("/api/search")
	if err != nil {
		return nil, fmt.Errorf("zipcloud request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("zipcloud returned %s", resp.Status())
	}
	if out.Status != 200 {
		return nil, fmt.Errorf("zipcloud error: %s", out.Message)
	}
	return out.Results, nil
}
