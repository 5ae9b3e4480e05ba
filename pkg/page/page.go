package page

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/adrianliechti/mysearch/pkg/searcher"
)

//go:embed templates/*.html
var templatesFS embed.FS

var (
	searchTemplate   = parse("search.html")
	errorTemplate    = parse("error.html")
	resultsTemplate  = parse("results.html")
	notFoundTemplate = parse("notfound.html")
)

type errorData struct {
	Query   string
	Message string
}

type resultsData struct {
	Query string

	TotalCount int
	Items      []searcher.Item
}

// Search renders the empty search form.
func Search() []byte {
	return render(searchTemplate, nil)
}

// Error renders the failure view for query. Only the user-facing message of
// err is shown.
func Error(query string, err error) []byte {
	return render(errorTemplate, errorData{
		Query:   query,
		Message: searcher.UserMessage(err),
	})
}

// Results renders result in upstream order. Whether the list or the
// no-results message is shown depends on the items alone, not TotalCount.
func Results(query string, result *searcher.Result) []byte {
	data := resultsData{
		Query: query,
	}

	if result != nil {
		data.TotalCount = result.TotalCount
		data.Items = result.Items
	}

	return render(resultsTemplate, data)
}

func NotFound() []byte {
	return render(notFoundTemplate, nil)
}

func parse(name string) *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name))
}

// render panics on execution errors; the templates are fixed at build time
// and only fail on a programming error.
func render(t *template.Template, data any) []byte {
	var buf bytes.Buffer

	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		panic(err)
	}

	return buf.Bytes()
}
