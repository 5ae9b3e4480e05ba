package web

import (
	"log/slog"
	"net/http"

	"github.com/adrianliechti/mysearch/pkg/page"
	"github.com/adrianliechti/mysearch/pkg/searcher"
)

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	if !values.Has("q") {
		writeHTML(w, http.StatusOK, page.Search())
		return
	}

	query := values.Get("q")

	p, err := h.Searcher()

	if err != nil {
		slog.ErrorContext(r.Context(), "searcher unavailable", "error", err)
		writeHTML(w, http.StatusInternalServerError, page.Error(query, err))
		return
	}

	result, err := p.Search(r.Context(), query)

	if err != nil {
		slog.ErrorContext(r.Context(), "search failed", "query", query, "kind", searcher.Kind(err), "error", err)
		writeHTML(w, statusCode(err), page.Error(query, err))
		return
	}

	slog.DebugContext(r.Context(), "search completed", "query", query, "total_count", result.TotalCount, "items", len(result.Items))

	writeHTML(w, http.StatusOK, page.Results(query, result))
}

// statusCode maps upstream failures to gateway errors. The body is the
// regular error page either way.
func statusCode(err error) int {
	switch searcher.Kind(err) {
	case searcher.KindTimeout:
		return http.StatusGatewayTimeout

	case searcher.KindContentType, searcher.KindDecode, searcher.KindTransport:
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
