package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/adrianliechti/mysearch/pkg/searcher"

	"github.com/google/jsonschema-go/jsonschema"
)

var _ searcher.Provider = &Client{}

const (
	DefaultURL       = "https://api.github.com/search/issues"
	DefaultUserAgent = "my-search"
	DefaultTimeout   = 10 * time.Second

	maxBodySize       = 64 << 20
	maxDiagnosticSize = 1 << 20
)

type Client struct {
	url    string
	client *http.Client

	token     string
	userAgent string

	timeout time.Duration

	schema *jsonschema.Resolved
}

func New(options ...Option) (*Client, error) {
	c := &Client{
		url:    DefaultURL,
		client: http.DefaultClient,

		userAgent: DefaultUserAgent,

		timeout: DefaultTimeout,
	}

	for _, option := range options {
		option(c)
	}

	u, err := url.Parse(c.url)

	if err != nil || !u.IsAbs() {
		return nil, errors.New("invalid url: " + c.url)
	}

	if c.userAgent == "" {
		return nil, errors.New("invalid user agent")
	}

	schema, err := responseSchema.Resolve(nil)

	if err != nil {
		return nil, err
	}

	c.schema = schema

	return c, nil
}

func (c *Client) Search(ctx context.Context, query string) (*searcher.Result, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	u, _ := url.Parse(c.url)

	values := u.Query()
	values.Set("q", query)

	u.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)

	if err != nil {
		return nil, searcher.NewTransportError(err, false)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, searcher.NewTransportError(err, isTimeout(err))
	}

	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")

	if !isJSON(contentType) {
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxDiagnosticSize))

		if err != nil {
			return nil, searcher.NewTransportError(err, isTimeout(err))
		}

		return nil, &searcher.UnexpectedContentTypeError{
			ContentType: contentType,
			Body:        string(body),
		}
	}

	// one byte past the limit tells an oversized payload apart from a truncated one
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))

	if err != nil {
		return nil, searcher.NewTransportError(err, isTimeout(err))
	}

	if len(body) > maxBodySize {
		return nil, &searcher.DecodeError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("response exceeds %d bytes", maxBodySize),
		}
	}

	data, err := c.decode(body)

	if err != nil {
		return nil, &searcher.DecodeError{
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	result := &searcher.Result{
		TotalCount: data.TotalCount,

		Items: make([]searcher.Item, 0, len(data.Items)),
	}

	for _, i := range data.Items {
		result.Items = append(result.Items, searcher.Item{
			ID: i.ID,

			Title: i.Title,
			URL:   i.HTMLURL,
		})
	}

	return result, nil
}

func (c *Client) decode(body []byte) (*SearchResponse, error) {
	var instance any

	if err := json.Unmarshal(body, &instance); err != nil {
		return nil, err
	}

	if err := c.schema.Validate(instance); err != nil {
		return nil, err
	}

	var data SearchResponse

	if err := json.Unmarshal(body, &data); err != nil {
		return nil, err
	}

	for i, item := range data.Items {
		u, err := url.Parse(item.HTMLURL)

		if err != nil {
			return nil, fmt.Errorf("items[%d].html_url: %w", i, err)
		}

		if !u.IsAbs() || u.Host == "" {
			return nil, fmt.Errorf("items[%d].html_url: not an absolute url: %q", i, item.HTMLURL)
		}
	}

	return &data, nil
}

// isJSON reports whether a declared content type carries JSON. An absent
// content type is accepted and left to the decoder.
func isJSON(contentType string) bool {
	if contentType == "" {
		return true
	}

	mediaType, _, err := mime.ParseMediaType(contentType)

	if err != nil {
		return false
	}

	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return false
}
