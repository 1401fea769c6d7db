package fontdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

func newTestDB(t *testing.T) *Database {
	t.Helper()
	db := New()
	require.NoError(t, db.LoadFontData(goregular.TTF))
	require.NoError(t, db.LoadFontData(gobold.TTF))
	return db
}

func TestLoadFontData(t *testing.T) {
	db := newTestDB(t)
	assert.Equal(t, 2, db.NumFaces())
	assert.True(t, db.HasFamily("Go"))
	assert.True(t, db.HasFamily("go"), "family lookup should be case-insensitive")
	assert.False(t, db.HasFamily("Helvetica"))
}

func TestLoadFontDataEmpty(t *testing.T) {
	db := New()
	assert.ErrorIs(t, db.LoadFontData(nil), ErrEmptyFontData)
}

func TestLoadFontDataGarbage(t *testing.T) {
	db := New()
	err := db.LoadFontData([]byte("definitely not a font"))
	assert.Error(t, err)
	assert.Equal(t, 0, db.NumFaces())
}

func TestQueryWeight(t *testing.T) {
	db := newTestDB(t)

	// Go Bold declares usWeightClass 600 in its OS/2 table, so the bold
	// face answers as semibold.
	tests := []struct {
		name   string
		weight Weight
		want   Weight
	}{
		{"exact normal", WeightNormal, WeightNormal},
		{"bold resolves to semibold", WeightBold, WeightSemibold},
		{"light resolves to normal", WeightLight, WeightNormal},
		{"black resolves to semibold", WeightBlack, WeightSemibold},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := db.Query([]string{"Go"}, tt.weight)
			require.True(t, ok)
			db.mu.RLock()
			got := db.faces[id].weight
			db.mu.RUnlock()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryFamilyOrder(t *testing.T) {
	db := newTestDB(t)

	// Unknown families are skipped, the first known one wins.
	id, ok := db.Query([]string{"No Such Family", "Go"}, WeightNormal)
	require.True(t, ok)
	data, index, ok := db.FaceData(id)
	require.True(t, ok)
	assert.Equal(t, 0, index)
	assert.NotEmpty(t, data)

	_, ok = db.Query([]string{"No Such Family"}, WeightNormal)
	assert.False(t, ok)

	_, ok = db.Query(nil, WeightNormal)
	assert.False(t, ok)
}

func TestFaceDataUnknownID(t *testing.T) {
	db := newTestDB(t)
	_, _, ok := db.FaceData(FaceID(99))
	assert.False(t, ok)
}

func TestLoadFontFileIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))

	db := New()
	require.NoError(t, db.LoadFontFile(path))
	assert.Equal(t, 1, db.NumFaces())

	// Same file again, also via a relative spelling of the same path.
	require.NoError(t, db.LoadFontFile(path))
	require.NoError(t, db.LoadFontFile(filepath.Join(dir, ".", "regular.ttf")))
	assert.Equal(t, 1, db.NumFaces(), "reloading a path must not add faces")
}

func TestLoadFontFileMissing(t *testing.T) {
	db := New()
	err := db.LoadFontFile(filepath.Join(t.TempDir(), "nope.ttf"))
	assert.Error(t, err)
}

func TestFamilies(t *testing.T) {
	db := newTestDB(t)
	fams := db.Families()
	require.Len(t, fams, 1)
	assert.Equal(t, "Go", fams[0])
}

func TestSansSerifFamily(t *testing.T) {
	t.Run("empty database", func(t *testing.T) {
		assert.Equal(t, "", New().SansSerifFamily())
	})

	t.Run("known candidate", func(t *testing.T) {
		db := newTestDB(t)
		assert.Equal(t, "Go", db.SansSerifFamily())
	})

	t.Run("pinned", func(t *testing.T) {
		db := newTestDB(t)
		db.SetSansSerifFamily("Custom Sans")
		assert.Equal(t, "Custom Sans", db.SansSerifFamily())
	})
}

func TestParseFacesWeights(t *testing.T) {
	metas, err := parseFaces(gobold.TTF)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, WeightSemibold, metas[0].weight, "Go Bold carries usWeightClass 600")
	assert.Equal(t, 0, metas[0].index)

	metas, err = parseFaces(goregular.TTF)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, WeightNormal, metas[0].weight)
}
