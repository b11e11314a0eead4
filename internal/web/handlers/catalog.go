package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/srobertson/xlit/internal/registry"
)

// CatalogHandler serves the two-step selection flow: languages first,
// then the methods available for a language.
type CatalogHandler struct {
	reg *registry.Registry
	log *slog.Logger
}

func NewCatalogHandler(reg *registry.Registry, log *slog.Logger) *CatalogHandler {
	return &CatalogHandler{reg: reg, log: log}
}

type methodResponse struct {
	Name              string `json:"name"`
	DisplayName       string `json:"display_name"`
	Language          string `json:"language"`
	LanguageCode      string `json:"language_code"`
	SupportsCaseMatch bool   `json:"supports_case_match"`
}

func (h *CatalogHandler) Languages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"languages": h.reg.Languages()})
}

func (h *CatalogHandler) Methods(w http.ResponseWriter, r *http.Request) {
	names := h.reg.MethodNames()
	if lang := r.URL.Query().Get("language"); lang != "" {
		names = h.reg.MethodsByLanguage(lang)
		if names == nil {
			writeError(w, http.StatusNotFound, "unknown language")
			return
		}
	}

	data := make([]methodResponse, 0, len(names))
	for _, name := range names {
		data = append(data, methodResponse{
			Name:              name,
			DisplayName:       h.reg.DisplayName(name),
			Language:          h.reg.Language(name),
			LanguageCode:      h.reg.LanguageCode(name),
			SupportsCaseMatch: h.reg.SupportsCaseMatch(name),
		})
	}
	writeJSON(w, http.StatusOK, map[string][]methodResponse{"methods": data})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
