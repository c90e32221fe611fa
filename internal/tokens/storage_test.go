package tokens

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStorage_LoadAbsent(t *testing.T) {
	fs := NewFileStorage(filepath.Join(t.TempDir(), "token"))

	tok, err := fs.Load()
	require.NoError(t, err)
	require.Empty(t, tok)
}

func TestFileStorage_SaveLoadClear(t *testing.T) {
	fs := NewFileStorage(filepath.Join(t.TempDir(), "token"))

	require.NoError(t, fs.Save("abc.def.ghi"))

	tok, err := fs.Load()
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", tok)

	require.NoError(t, fs.Clear())

	tok, err = fs.Load()
	require.NoError(t, err)
	require.Empty(t, tok)
}

func TestFileStorage_ClearAbsentIsFine(t *testing.T) {
	fs := NewFileStorage(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, fs.Clear())
}

func TestMemoryStorage(t *testing.T) {
	ms := NewMemoryStorage()

	tok, err := ms.Load()
	require.NoError(t, err)
	require.Empty(t, tok)

	require.NoError(t, ms.Save("abc"))
	tok, err = ms.Load()
	require.NoError(t, err)
	require.Equal(t, "abc", tok)

	require.NoError(t, ms.Clear())
	tok, err = ms.Load()
	require.NoError(t, err)
	require.Empty(t, tok)
}
