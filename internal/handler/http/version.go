package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-recipe-book/internal/utils"
)

// getServerVersion answers with the plain text version, or with the full
// build info when the client accepts JSON.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		utils.WriteData(w, h.services.AppInfoService.GetBuildInfo(ctx), http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(h.services.AppInfoService.GetAppVersion(ctx)))
}
