package httpapi

import (
	"embed"
	"io/fs"
	"net/http"
	"path/filepath"
)

//go:embed static
var embeddedStatic embed.FS

// staticFS returns the frontend asset tree: STATIC_DIR when configured,
// otherwise the bundled copy.
func (r *Router) staticFS() http.FileSystem {
	if r.cfg.StaticDir != "" {
		return http.Dir(r.cfg.StaticDir)
	}
	sub, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

func (r *Router) handleIndex(w http.ResponseWriter, req *http.Request) {
	if r.cfg.StaticDir != "" {
		http.ServeFile(w, req, filepath.Join(r.cfg.StaticDir, "index.html"))
		return
	}
	page, err := embeddedStatic.ReadFile("static/index.html")
	if err != nil {
		r.writeError(w, req, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}
