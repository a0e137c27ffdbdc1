package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client preconfigured
// for talking to the recipe API.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:5000", 5*time.Second)
//	resp, err := client.R().Get("/health")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client whose requests are resolved against
// baseURL, accept JSON and give up after timeout. A zero timeout means no
// limit.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// Authorized returns a request that carries token as a bearer credential.
func (c *HTTPClient) Authorized(token string) *resty.Request {
	return c.R().SetAuthToken(token)
}
