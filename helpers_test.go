package fastasplit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const threeSequences = ">Sequence1|text1\nAAA\n>Sequence2 |text2\nCCC\n>Sequence3\nGGG\n"

// writeFile creates name under dir with content and returns its path
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// seqDir returns a fresh directory whose index file also lands inside t.TempDir
func seqDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "seqs")
	require.NoError(t, os.Mkdir(dir, 0755))
	return dir
}

// chdir switches the working directory for the rest of the test
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}
