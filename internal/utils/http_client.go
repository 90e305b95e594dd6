package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. The embedded client exposes all of its
// methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("http://localhost:8080/api/products")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an HTTPClient with its own resty.Client, connection
// pool and settings.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
