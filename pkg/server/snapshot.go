/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/
package server

import (
	"log/slog"
	"net/http"

	"github.com/statio-project/statio/pkg/report"
	"github.com/statio-project/statio/pkg/serializer"
)

// handleSnapshot handles GET /v1/snapshot. Each request collects a
// fresh snapshot; collection is a handful of local reads and never
// fails.
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	snap := s.snapshotter.Collect(r.Context())
	serializer.RespondJSON(w, http.StatusOK, snap)
}

// handleReport handles GET /v1/report, returning the plain-text
// diagnostic report.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	snap := s.snapshotter.Collect(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(report.Render(snap))); err != nil {
		slog.Warn("report write failed", "error", err)
	}
}
