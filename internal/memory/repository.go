// Package memory defines the translation-memory store: one row per
// (method, source segment, romanized segment) pair, kept so past work can
// be exported as TMX later.
package memory

import (
	"context"
	"time"
)

type Segment struct {
	ID        int64
	Method    string
	Source    string
	Target    string
	CreatedAt time.Time
}

type SaveSegmentParams struct {
	Method string
	Source string
	Target string
}

type Repository interface {
	// SaveSegments stores a batch of pairs from one transliteration call.
	SaveSegments(ctx context.Context, params []SaveSegmentParams) error

	// ListSegmentsByMethod returns a method's pairs, oldest first.
	ListSegmentsByMethod(ctx context.Context, method string) ([]Segment, error)

	// Methods returns the distinct method names with stored segments.
	Methods(ctx context.Context) ([]string, error)

	// CountSegments returns the total number of stored pairs.
	CountSegments(ctx context.Context) (int64, error)

	Close() error
}
