package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srobertson/xlit/internal/memory"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSaveAndListSegments(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	err := repo.SaveSegments(ctx, []memory.SaveSegmentParams{
		{Method: "Russian (Cyrillic)-->English (IC)", Source: "целитель", Target: "tselitel"},
		{Method: "Russian (Cyrillic)-->English (IC)", Source: "ёлка", Target: "yelka"},
		{Method: "Kazakh (Cyrillic)-->English (IC)", Source: "жаңа", Target: "zhanga"},
	})
	require.NoError(t, err)

	segs, err := repo.ListSegmentsByMethod(ctx, "Russian (Cyrillic)-->English (IC)")
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.Equal(t, "целитель", segs[0].Source)
	assert.Equal(t, "tselitel", segs[0].Target)
	assert.Equal(t, "ёлка", segs[1].Source)
	assert.False(t, segs[0].CreatedAt.IsZero())

	segs, err = repo.ListSegmentsByMethod(ctx, "no such method")
	require.NoError(t, err)
	assert.Empty(t, segs)
}

func TestSaveSegmentsDeduplicates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	pair := memory.SaveSegmentParams{
		Method: "Russian (Cyrillic)-->English (IC)",
		Source: "мир",
		Target: "mir",
	}
	require.NoError(t, repo.SaveSegments(ctx, []memory.SaveSegmentParams{pair}))
	require.NoError(t, repo.SaveSegments(ctx, []memory.SaveSegmentParams{pair}))

	count, err := repo.CountSegments(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSaveSegmentsEmptyBatch(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.SaveSegments(context.Background(), nil))
}

func TestMethods(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	methods, err := repo.Methods(ctx)
	require.NoError(t, err)
	assert.Empty(t, methods)

	err = repo.SaveSegments(ctx, []memory.SaveSegmentParams{
		{Method: "b-method", Source: "б", Target: "b"},
		{Method: "a-method", Source: "а", Target: "a"},
		{Method: "b-method", Source: "в", Target: "v"},
	})
	require.NoError(t, err)

	methods, err = repo.Methods(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a-method", "b-method"}, methods)
}
