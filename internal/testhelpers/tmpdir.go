package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TmpDir returns a temporary directory with symlinks resolved
func TmpDir(tb testing.TB) string {
	tb.Helper()

	// On some systems `/tmp` can be a symlink
	tmpDir, err := filepath.EvalSymlinks(tb.TempDir())
	require.NoError(tb, err)

	return tmpDir
}

// SiteDir creates a temporary site root holding files, keyed by slash
// separated path relative to the root
func SiteDir(tb testing.TB, files map[string]string) string {
	tb.Helper()

	root := TmpDir(tb)

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))

		require.NoError(tb, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(tb, os.WriteFile(path, []byte(content), 0644))
	}

	return root
}
