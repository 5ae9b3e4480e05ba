package web

import (
	"embed"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/adrianliechti/mysearch/pkg/page"
)

//go:embed static
var staticFS embed.FS

type asset struct {
	Content     []byte
	ContentType string
}

var assets = mustLoadAssets(staticFS, "static")

func mustLoadAssets(fsys fs.FS, root string) map[string]asset {
	result, err := loadAssets(fsys, root)

	if err != nil {
		panic(err)
	}

	return result
}

// loadAssets reads the files below root into a path keyed table.
func loadAssets(fsys fs.FS, root string) (map[string]asset, error) {
	result := make(map[string]asset)

	err := fs.WalkDir(fsys, root, func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		data, err := fs.ReadFile(fsys, name)

		if err != nil {
			return err
		}

		contentType := mime.TypeByExtension(path.Ext(name))

		if contentType == "" {
			contentType = "application/octet-stream"
		}

		result[strings.TrimPrefix(name, root+"/")] = asset{
			Content:     data,
			ContentType: contentType,
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

func (h *Handler) handleStatic(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/static/")

	a, ok := assets[name]

	if !ok {
		writeHTML(w, http.StatusNotFound, page.NotFound())
		return
	}

	w.Header().Set("Content-Type", a.ContentType)
	w.Write(a.Content)
}
