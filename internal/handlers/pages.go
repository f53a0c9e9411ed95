package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// PageHandler serves the HTML entry points and static assets of the
// browser client from a directory laid out as:
//
//	<dir>/index.html
//	<dir>/<page>.html
//	<dir>/static/...
type PageHandler struct {
	dir    string
	assets http.Handler
	log    *slog.Logger
}

// NewPageHandler creates a page handler rooted at dir
func NewPageHandler(dir string, log *slog.Logger) *PageHandler {
	return &PageHandler{
		dir:    dir,
		assets: http.StripPrefix("/static/", http.FileServer(http.Dir(filepath.Join(dir, "static")))),
		log:    log,
	}
}

// Static handles GET /static/*
func (h *PageHandler) Static(w http.ResponseWriter, r *http.Request) {
	h.assets.ServeHTTP(w, r)
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, "index")
}

// Page handles GET /{page}, serving {page}.html
func (h *PageHandler) Page(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")
	if page == "" || strings.ContainsAny(page, `/\`) || strings.HasPrefix(page, ".") {
		http.NotFound(w, r)
		return
	}
	h.serveFile(w, r, strings.TrimSuffix(page, ".html"))
}

func (h *PageHandler) serveFile(w http.ResponseWriter, r *http.Request, page string) {
	path := filepath.Join(h.dir, page+".html")

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		h.log.Debug("page not found", "page", page)
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, path)
}
