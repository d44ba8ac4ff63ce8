package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// userAgent mimics the vendor's Android app HTTP stack.
const userAgent = "okhttp/4.12.0"

// HTTPClient embeds *resty.Client so callers can build requests directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client rooted at baseURL. A zero timeout leaves
// requests unbounded except by their context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
