package handler

import (
	"net/http"

	"transportpro/internal/catalog"
)

// PackageHandler serves the static subscription catalog.
type PackageHandler struct{}

func NewPackageHandler() *PackageHandler {
	return &PackageHandler{}
}

func (h *PackageHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("GET /packages", http.HandlerFunc(h.list))
}

func (h *PackageHandler) list(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Packages())
}
