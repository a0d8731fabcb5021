package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureSubDir_CreatesDirectory(t *testing.T) {
	tmp := t.TempDir()

	got, err := EnsureSubDir(tmp, "Alice@42")
	require.NoError(t, err)

	want := filepath.Join(tmp, "Alice@42")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")
}

func TestEnsureSubDir_ExistingDirectoryIsNotAnError(t *testing.T) {
	tmp := t.TempDir()

	first, err := EnsureSubDir(tmp, "Bob@7")
	require.NoError(t, err)

	second, err := EnsureSubDir(tmp, "Bob@7")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureSubDir_DistinctStudentsDoNotCollide(t *testing.T) {
	tmp := t.TempDir()

	a, err := EnsureSubDir(tmp, "Alice@42")
	require.NoError(t, err)
	b, err := EnsureSubDir(tmp, "Bob@7")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestEnsureDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "students")

	require.NoError(t, EnsureDir(root))
	require.NoError(t, EnsureDir(root))

	fi, err := os.Stat(root)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}
