package page_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/adrianliechti/mysearch/pkg/page"
	"github.com/adrianliechti/mysearch/pkg/searcher"

	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	html := string(page.Search())

	require.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	require.Contains(t, html, `<input type="text" name="q"`)
	require.Contains(t, html, "required")
	require.Contains(t, html, `href="/static/base.css"`)
	require.Equal(t, 1, strings.Count(html, "<input"))
}

func TestResults(t *testing.T) {
	result := &searcher.Result{
		TotalCount: 42,

		Items: []searcher.Item{
			{ID: 3, Title: "third issue", URL: "https://github.com/a/b/issues/3"},
			{ID: 1, Title: "first issue", URL: "https://github.com/a/b/issues/1"},
			{ID: 2, Title: "second issue", URL: "https://github.com/a/b/issues/2"},
		},
	}

	html := string(page.Results("issue", result))

	require.Contains(t, html, "Results (42)")
	require.Contains(t, html, `value="issue"`)
	require.NotContains(t, html, "No results found")

	last := -1

	for _, item := range result.Items {
		require.Equal(t, 1, strings.Count(html, "<h3>"+item.Title+"</h3>"))
		require.Equal(t, 1, strings.Count(html, `href="`+item.URL+`"`))

		index := strings.Index(html, item.Title)
		require.Greater(t, index, last)

		last = index
	}
}

func TestResultsEmpty(t *testing.T) {
	result := &searcher.Result{
		TotalCount: 5,
	}

	html := string(page.Results("box", result))

	require.Contains(t, html, `No results found for "box"`)
	require.NotContains(t, html, "Results (5)")
	require.NotContains(t, html, "result-item")
}

func TestResultsEscaping(t *testing.T) {
	query := `"><script>alert(1)</script>`

	result := &searcher.Result{
		TotalCount: 2,

		Items: []searcher.Item{
			{ID: 1, Title: "<b>Box<dyn Error></b> & friends", URL: "https://github.com/a/b/issues/1?x=1&y=2"},
			{ID: 2, Title: "evil", URL: "javascript:alert(1)"},
		},
	}

	html := string(page.Results(query, result))

	require.NotContains(t, html, "<script>")
	require.NotContains(t, html, "<b>")
	require.NotContains(t, html, `href="javascript:`)

	require.Contains(t, html, "&lt;b&gt;Box&lt;dyn Error&gt;&lt;/b&gt; &amp; friends")
	require.Contains(t, html, `href="https://github.com/a/b/issues/1?x=1&amp;y=2"`)
	require.Contains(t, html, `value="&#34;&gt;&lt;script&gt;alert(1)&lt;/script&gt;"`)

	empty := string(page.Results(query, &searcher.Result{}))

	require.NotContains(t, empty, "<script>")
	require.Contains(t, empty, "&lt;script&gt;")
}

func TestResultsIdempotent(t *testing.T) {
	result := &searcher.Result{
		TotalCount: 1,

		Items: []searcher.Item{
			{ID: 1, Title: "only", URL: "https://github.com/a/b/issues/1"},
		},
	}

	require.Equal(t, page.Results("only", result), page.Results("only", result))
}

func TestError(t *testing.T) {
	err := &searcher.UnexpectedContentTypeError{
		ContentType: "text/html",
		Body:        "<html>captcha token=abc</html>",
	}

	html := string(page.Error("<q>", err))

	require.Contains(t, html, searcher.UserMessage(err))
	require.Contains(t, html, `href="/"`)
	require.Contains(t, html, "Try Again")

	require.NotContains(t, html, "captcha")
	require.NotContains(t, html, "Results (")
	require.NotContains(t, html, "<q>")
}

func TestErrorVariants(t *testing.T) {
	errs := []error{
		&searcher.DecodeError{StatusCode: 422, Err: errors.New("missing total_count")},
		searcher.NewTransportError(errors.New("connection refused"), false),
		searcher.NewTransportError(errors.New("deadline exceeded"), true),
	}

	for _, err := range errs {
		html := string(page.Error("box", err))

		require.Contains(t, html, searcher.UserMessage(err))
		require.NotContains(t, html, "result-item")
	}
}

func TestNotFound(t *testing.T) {
	html := string(page.NotFound())

	require.Contains(t, html, "<h1>404</h1>")
	require.Contains(t, html, "<title>Not found</title>")
}
