package searcher

import (
	"context"
)

type Provider interface {
	Search(ctx context.Context, query string) (*Result, error)
}

type Result struct {
	TotalCount int

	Items []Item
}

type Item struct {
	ID int64

	Title string
	URL   string
}
