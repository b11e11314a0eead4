package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/srobertson/xlit/internal/memory"
	"github.com/srobertson/xlit/internal/metrics"
	"github.com/srobertson/xlit/internal/registry"
	"github.com/srobertson/xlit/internal/tmx"
)

// ExportHandler streams the stored translation memory for one method as a
// TMX document.
type ExportHandler struct {
	reg  *registry.Registry
	repo memory.Repository
	log  *slog.Logger
}

func NewExportHandler(reg *registry.Registry, repo memory.Repository, log *slog.Logger) *ExportHandler {
	return &ExportHandler{reg: reg, repo: repo, log: log}
}

func (h *ExportHandler) TMX(w http.ResponseWriter, r *http.Request) {
	method := r.URL.Query().Get("method")
	if method == "" {
		writeError(w, http.StatusBadRequest, "method is required")
		return
	}
	if _, err := h.reg.Method(method); err != nil {
		writeError(w, http.StatusNotFound, "unknown method")
		return
	}

	segments, err := h.repo.ListSegmentsByMethod(r.Context(), method)
	if err != nil {
		h.log.ErrorContext(r.Context(), "listing segments", "method", method, "error", err)
		metrics.TMXExportsTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	pairs := make([]tmx.Pair, 0, len(segments))
	for _, s := range segments {
		pairs = append(pairs, tmx.Pair{Source: s.Source, Target: s.Target})
	}

	doc := tmx.New(method, h.reg.LanguageCode(method), pairs, time.Now())

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="memory.tmx"`)
	if err := doc.Write(w); err != nil {
		// Headers are gone; all we can do is log.
		h.log.ErrorContext(r.Context(), "writing TMX", "method", method, "error", err)
		metrics.TMXExportsTotal.WithLabelValues("error").Inc()
		return
	}
	metrics.TMXExportsTotal.WithLabelValues("success").Inc()
}
