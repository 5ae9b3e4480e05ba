package github

import (
	"net/http"
	"time"
)

type Option func(*Client)

func WithURL(url string) Option {
	return func(c *Client) {
		c.url = url
	}
}

func WithClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func WithUserAgent(val string) Option {
	return func(c *Client) {
		c.userAgent = val
	}
}

func WithTimeout(val time.Duration) Option {
	return func(c *Client) {
		c.timeout = val
	}
}
