//go:build unit
// +build unit

package connector

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/georgSquared/livesketch/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRatingsCSV = `userId,movieId,rating,timestamp
1,10,4.0,964982703
1,20,2.5,964981247
2,10,3.0,964982224
2,30,5.0,964983815
3,20,1.0,964982931
`

func writeRatingsFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ratings.csv")
	require.NoError(t, os.WriteFile(path, []byte(testRatingsCSV), 0600))
	return path
}

func TestFileChecksum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.zip")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0600))

	checksum, err := fileChecksum(path)
	require.NoError(t, err)
	// sha256("abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", checksum)
}

func TestFileChecksum_MissingFile(t *testing.T) {
	_, err := fileChecksum(filepath.Join(t.TempDir(), "absent.zip"))
	require.Error(t, err)
}

func TestNewMovieLensConnector_EmptyCacheDir(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	_, err := NewMovieLensConnector("", logger)
	require.Error(t, err)
}

func TestBuildGraph_FiltersByMinScore(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	connector, err := NewMovieLensConnector(t.TempDir(), logger)
	require.NoError(t, err)

	g, err := connector.BuildGraph(writeRatingsFile(t), 3.0)
	require.NoError(t, err)

	// Qualifying ratings: (1,10,4.0), (2,10,3.0), (2,30,5.0)
	assert.Equal(t, 2, g.LeftCount())
	assert.Equal(t, 2, g.RightCount())
	assert.Equal(t, 3, g.EdgeCount())

	// Users 1,2 map to 0,1 and movies 10,30 map to 2,3 in sorted raw-ID order
	assert.True(t, g.HasEdge(0, 2))
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(1, 3))
}

func TestBuildGraph_ZeroMinScoreKeepsEverything(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	connector, err := NewMovieLensConnector(t.TempDir(), logger)
	require.NoError(t, err)

	g, err := connector.BuildGraph(writeRatingsFile(t), 0)
	require.NoError(t, err)

	assert.Equal(t, 3, g.LeftCount())
	assert.Equal(t, 3, g.RightCount())
	assert.Equal(t, 5, g.EdgeCount())
}

func TestBuildGraph_NoQualifyingRatings(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	connector, err := NewMovieLensConnector(t.TempDir(), logger)
	require.NoError(t, err)

	_, err = connector.BuildGraph(writeRatingsFile(t), 5.5)
	require.Error(t, err)
}

func TestBuildGraph_MissingFile(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	connector, err := NewMovieLensConnector(t.TempDir(), logger)
	require.NoError(t, err)

	_, err = connector.BuildGraph(filepath.Join(t.TempDir(), "missing.csv"), 3.0)
	require.Error(t, err)
}

func writeTestArchive(t *testing.T, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dataset.zip")
	file, err := os.Create(path)
	require.NoError(t, err)

	writer := zip.NewWriter(file)
	for name, content := range entries {
		entry, err := writer.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	require.NoError(t, file.Close())
	return path
}

func TestExtractArchive_AndFindRatings(t *testing.T) {
	archivePath := writeTestArchive(t, map[string]string{
		"ml-latest-small/ratings.csv": testRatingsCSV,
		"ml-latest-small/README.txt":  "MovieLens dataset",
	})

	destDir := filepath.Join(t.TempDir(), "extracted")
	require.NoError(t, extractArchive(archivePath, destDir))

	ratingsPath, err := findRatingsFile(destDir)
	require.NoError(t, err)

	content, err := os.ReadFile(ratingsPath)
	require.NoError(t, err)
	assert.Equal(t, testRatingsCSV, string(content))
}

func TestExtractArchive_RejectsEscapingEntries(t *testing.T) {
	archivePath := writeTestArchive(t, map[string]string{
		"../outside.txt": "escaped",
	})

	destDir := filepath.Join(t.TempDir(), "extracted")
	err := extractArchive(archivePath, destDir)
	require.Error(t, err)
}

func TestFindRatingsFile_Missing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "movies.csv"), []byte("movieId,title\n"), 0600))

	_, err := findRatingsFile(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no ratings.csv")
}
