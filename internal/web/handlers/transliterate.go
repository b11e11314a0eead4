package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/srobertson/xlit/internal/registry"
	"github.com/srobertson/xlit/internal/xlit"
)

type TransliterateHandler struct {
	svc *xlit.Service
	log *slog.Logger
}

func NewTransliterateHandler(svc *xlit.Service, log *slog.Logger) *TransliterateHandler {
	return &TransliterateHandler{svc: svc, log: log}
}

type transliterateRequest struct {
	Method    string `json:"method"`
	Text      string `json:"text"`
	MatchCase bool   `json:"match_case"`
}

type transliterateResponse struct {
	Text     string   `json:"text"`
	Warnings []string `json:"warnings,omitempty"`
}

func (h *TransliterateHandler) Transliterate(w http.ResponseWriter, r *http.Request) {
	var req transliterateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Method == "" {
		writeError(w, http.StatusBadRequest, "method is required")
		return
	}

	res, err := h.svc.Transliterate(r.Context(), xlit.Request{
		Method:    req.Method,
		Text:      req.Text,
		MatchCase: req.MatchCase,
	})
	switch {
	case errors.Is(err, registry.ErrUnknownMethod):
		writeError(w, http.StatusNotFound, "unknown method")
		return
	case errors.Is(err, xlit.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.log.ErrorContext(r.Context(), "transliteration failed", "method", req.Method, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, transliterateResponse{Text: res.Text, Warnings: res.Warnings})
}
