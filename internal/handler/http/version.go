package http

import "net/http"

// appVersion serves GET /api/version as bare text. The value originates from
// the server binary's ldflags build info and lets clients and health checks
// confirm what they are talking to without authenticating.
func (h *Handler) appVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
}
