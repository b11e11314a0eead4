package xlit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srobertson/xlit/internal/memory"
	"github.com/srobertson/xlit/internal/registry"
)

const russianIC = "Russian (Cyrillic)-->English (IC)"

type fakeRepo struct {
	saved   []memory.SaveSegmentParams
	saveErr error
}

func (f *fakeRepo) SaveSegments(_ context.Context, params []memory.SaveSegmentParams) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, params...)
	return nil
}

func (f *fakeRepo) ListSegmentsByMethod(context.Context, string) ([]memory.Segment, error) {
	return nil, nil
}

func (f *fakeRepo) Methods(context.Context) ([]string, error) { return nil, nil }

func (f *fakeRepo) CountSegments(context.Context) (int64, error) {
	return int64(len(f.saved)), nil
}

func (f *fakeRepo) Close() error { return nil }

func newTestService(t *testing.T, repo memory.Repository) *Service {
	t.Helper()
	reg, err := registry.New()
	require.NoError(t, err)
	return New(reg, repo, nil)
}

func TestTransliteratePlain(t *testing.T) {
	svc := newTestService(t, nil)

	res, err := svc.Transliterate(context.Background(), Request{
		Method: russianIC,
		Text:   "целитель",
	})
	require.NoError(t, err)
	assert.Equal(t, "tselitel", res.Text)
}

func TestTransliterateMatchCase(t *testing.T) {
	svc := newTestService(t, nil)

	res, err := svc.Transliterate(context.Background(), Request{
		Method:    russianIC,
		Text:      "ЦЕЛИТЕЛЬ",
		MatchCase: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "TSELITEL", res.Text)
}

func TestTransliterateUnknownMethod(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.Transliterate(context.Background(), Request{
		Method: "no such method",
		Text:   "текст",
	})
	assert.ErrorIs(t, err, registry.ErrUnknownMethod)
}

func TestTransliterateEmptyTextFailsValidation(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.Transliterate(context.Background(), Request{
		Method: russianIC,
		Text:   "   ",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTransliterateMatchCaseOnIneligibleMethod(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.Transliterate(context.Background(), Request{
		Method:    "Russian (Cyrillic)-->English (ISO-9)",
		Text:      "текст",
		MatchCase: true,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTransliterateRecordsSegments(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo)

	_, err := svc.Transliterate(context.Background(), Request{
		Method: russianIC,
		Text:   "мир\n\nдруг",
	})
	require.NoError(t, err)

	require.Len(t, repo.saved, 2)
	assert.Equal(t, memory.SaveSegmentParams{Method: russianIC, Source: "мир", Target: "mir"}, repo.saved[0])
	assert.Equal(t, memory.SaveSegmentParams{Method: russianIC, Source: "друг", Target: "drug"}, repo.saved[1])
}

func TestTransliterateMemoryFailureIsAWarning(t *testing.T) {
	repo := &fakeRepo{saveErr: errors.New("disk full")}
	svc := newTestService(t, repo)

	res, err := svc.Transliterate(context.Background(), Request{
		Method: russianIC,
		Text:   "мир",
	})
	require.NoError(t, err)
	assert.Equal(t, "mir", res.Text)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "not saved")
}
