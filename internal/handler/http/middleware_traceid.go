// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Voronova

package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags every request with a trace id and plants a child logger
// carrying it into the request context, so all downstream log lines of one
// request share the id. A caller-supplied X-Trace-ID is honored, which lets
// the TUI client correlate its own log file with the server's; otherwise a
// fresh UUID is generated. The id is echoed in the response header either
// way.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
