// Package xlit orchestrates a transliteration call: sanitize the input,
// resolve the method, run the engine in plain or case-match mode, and
// record the resulting segment pairs in the translation memory.
package xlit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/srobertson/xlit/internal/memory"
	"github.com/srobertson/xlit/internal/metrics"
	"github.com/srobertson/xlit/internal/registry"
	"github.com/srobertson/xlit/internal/validate"
)

// ErrInvalidInput marks failures of the input boundary, as opposed to an
// unknown method or an engine defect. Callers branch on it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

type Request struct {
	Method    string
	Text      string
	MatchCase bool
}

type Response struct {
	Text     string
	Warnings []string
}

type Service struct {
	reg  *registry.Registry
	repo memory.Repository
	log  *slog.Logger
}

// New builds a service. repo may be nil, in which case no translation
// memory is kept.
func New(reg *registry.Registry, repo memory.Repository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{reg: reg, repo: repo, log: log}
}

// Transliterate runs one request end to end. The context only governs the
// translation-memory write; the engine itself has no suspension points.
func (s *Service) Transliterate(ctx context.Context, req Request) (Response, error) {
	res, err := validate.Text(req.Text)
	if err != nil {
		metrics.TransliterationsTotal.WithLabelValues(req.Method, "invalid_input").Inc()
		return Response{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if req.MatchCase && !s.reg.SupportsCaseMatch(req.Method) {
		if _, err := s.reg.Method(req.Method); err != nil {
			metrics.TransliterationsTotal.WithLabelValues(req.Method, "unknown_method").Inc()
			return Response{}, err
		}
		metrics.TransliterationsTotal.WithLabelValues(req.Method, "invalid_input").Inc()
		return Response{}, fmt.Errorf("%w: method %q does not support case matching",
			ErrInvalidInput, req.Method)
	}

	start := time.Now()
	var out string
	if req.MatchCase {
		cm, err := s.reg.CaseMatcher(req.Method)
		if err != nil {
			metrics.TransliterationsTotal.WithLabelValues(req.Method, "unknown_method").Inc()
			return Response{}, err
		}
		out = cm.Transliterate(res.Text)
	} else {
		m, err := s.reg.Method(req.Method)
		if err != nil {
			metrics.TransliterationsTotal.WithLabelValues(req.Method, "unknown_method").Inc()
			return Response{}, err
		}
		out = m.Transliterate(res.Text)
	}
	metrics.TransliterationDuration.Observe(time.Since(start).Seconds())
	metrics.TransliteratedChars.Add(float64(len([]rune(res.Text))))
	metrics.TransliterationsTotal.WithLabelValues(req.Method, "success").Inc()

	if err := s.record(ctx, req.Method, res.Text, out); err != nil {
		// The transliteration itself succeeded; a memory failure is worth
		// a warning, not a failed call.
		s.log.Warn("saving translation memory failed", "method", req.Method, "error", err)
		res.Warnings = append(res.Warnings, "result not saved to translation memory")
	}

	s.log.Debug("transliterated",
		"method", req.Method,
		"match_case", req.MatchCase,
		"chars", len([]rune(res.Text)))

	return Response{Text: out, Warnings: res.Warnings}, nil
}

// record pairs source and output line by line and stores the non-empty
// pairs. Line counts always agree because the engine never adds or
// removes newlines.
func (s *Service) record(ctx context.Context, method, source, target string) error {
	if s.repo == nil {
		return nil
	}

	srcLines := strings.Split(source, "\n")
	tgtLines := strings.Split(target, "\n")
	params := make([]memory.SaveSegmentParams, 0, len(srcLines))
	for i, src := range srcLines {
		if i >= len(tgtLines) {
			break
		}
		src = strings.TrimSpace(src)
		tgt := strings.TrimSpace(tgtLines[i])
		if src == "" || tgt == "" {
			continue
		}
		params = append(params, memory.SaveSegmentParams{Method: method, Source: src, Target: tgt})
	}
	return s.repo.SaveSegments(ctx, params)
}
