package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func score(v int) *int { return &v }

func TestBestUsesDisplayedScore(t *testing.T) {
	db := openTest(t)
	ctx := context.Background()
	base := time.UnixMilli(1_700_000_000_000)

	require.NoError(t, db.Record(ctx, Entry{Song: "lucia", Part: "alto", LocalScore: 800, Hits: 8, CreatedAt: base}))
	require.NoError(t, db.Record(ctx, Entry{Song: "lucia", Part: "alto", LocalScore: 500, ServerScore: score(900), Hits: 5, CreatedAt: base.Add(time.Minute)}))
	require.NoError(t, db.Record(ctx, Entry{Song: "lucia", Part: "soprano", LocalScore: 2000, CreatedAt: base}))

	best, ok, err := db.Best(ctx, "lucia", "alto")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 900, best.Score())
	assert.Equal(t, 5, best.Hits)
	assert.Equal(t, base.Add(time.Minute), best.CreatedAt)
}

func TestBestEmpty(t *testing.T) {
	db := openTest(t)
	_, ok, err := db.Best(context.Background(), "lucia", "alto")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecentNewestFirst(t *testing.T) {
	db := openTest(t)
	ctx := context.Background()
	base := time.UnixMilli(1_700_000_000_000)
	for i := range 4 {
		require.NoError(t, db.Record(ctx, Entry{Song: "s", Part: "p", LocalScore: i * 100, CreatedAt: base.Add(time.Duration(i) * time.Second)}))
	}

	recent, err := db.Recent(ctx, "s", "p", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 300, recent[0].LocalScore)
	assert.Equal(t, 200, recent[1].LocalScore)
	assert.Nil(t, recent[0].ServerScore)
}
