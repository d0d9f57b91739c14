package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/f3rmion/pmpy/internal/phonetic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "chords.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBuild(t *testing.T) {
	c, err := Build("jiang")
	require.NoError(t, err)
	assert.Equal(t, "g-y-a-n-g'", c.PM)
	assert.Equal(t, "gyang'", c.Token)
	assert.Equal(t, []phonetic.Key{"g", phonetic.KeySpace, "j", "k", "l"}, c.Keys)
	assert.Equal(t, "jiang", c.Back)
	assert.True(t, c.Exact)

	c, err = Build("xue")
	require.NoError(t, err)
	assert.Equal(t, "h-y-ue", c.PM)
	assert.Equal(t, "xue", c.Back)
	assert.True(t, c.Exact)

	c, err = Build("liu")
	require.NoError(t, err)
	assert.Equal(t, "lv", c.Back)
	assert.False(t, c.Exact)

	_, err = Build("qq")
	assert.ErrorIs(t, err, phonetic.ErrUnknownValue)
}

func TestPutGet(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	ma, err := Build("ma")
	require.NoError(t, err)
	zhi, err := Build("zhi")
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, ma, zhi))

	got, err := s.Get(ctx, "zhi")
	require.NoError(t, err)
	assert.Equal(t, zhi, got)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Replacing keeps one row per syllable.
	require.NoError(t, s.Put(ctx, ma))
	n, err = s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Get(context.Background(), "zhi")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestByToken(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	// lv and liu share the chord lyu.
	var chords []Chord
	for _, py := range []string{"liu", "lv", "ma"} {
		c, err := Build(py)
		require.NoError(t, err)
		chords = append(chords, c)
	}
	require.NoError(t, s.Put(ctx, chords...))

	got, err := s.ByToken(ctx, "lyu")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "liu", got[0].Pinyin)
	assert.Equal(t, "lv", got[1].Pinyin)

	got, err = s.ByToken(ctx, "nothing")
	require.NoError(t, err)
	assert.Empty(t, got)
}
