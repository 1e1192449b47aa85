package connector

import (
	"archive/zip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/georgSquared/livesketch/internal/domain/datasets"
	"github.com/georgSquared/livesketch/internal/domain/graph"
	"github.com/georgSquared/livesketch/internal/pkg/logger"

	"github.com/cavaliercoder/grab"
	"github.com/gocarina/gocsv"
)

// ratingRow mirrors one row of a MovieLens ratings.csv file.
type ratingRow struct {
	UserID  int     `csv:"userId"`
	MovieID int     `csv:"movieId"`
	Rating  float64 `csv:"rating"`
}

// movieLensConnector downloads MovieLens-style rating archives and builds
// bipartite user-movie graphs from the extracted ratings file.
type movieLensConnector struct {
	cacheDir string
	client   *grab.Client
	logger   logger.Logger
}

// NewMovieLensConnector creates a connector that caches downloads under cacheDir.
func NewMovieLensConnector(cacheDir string, logger logger.Logger) (datasets.DatasetConnector, error) {
	if cacheDir == "" {
		return nil, fmt.Errorf("cache directory cannot be empty")
	}
	if err := os.MkdirAll(cacheDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &movieLensConnector{
		cacheDir: cacheDir,
		client:   grab.NewClient(),
		logger:   logger,
	}, nil
}

// Fetch downloads the archive at sourceURL into the cache, extracts it and
// returns the path of the contained ratings CSV along with the archive size
// and SHA-256. Downloads resume if a partial file is already present.
func (c *movieLensConnector) Fetch(ctx context.Context, sourceURL string) (*datasets.FetchResult, error) {
	req, err := grab.NewRequest(c.cacheDir, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("invalid dataset URL %s: %w", sourceURL, err)
	}
	req = req.WithContext(ctx)

	resp := c.client.Do(req)
	if err := resp.Err(); err != nil {
		return nil, fmt.Errorf("failed to download dataset from %s: %w", sourceURL, err)
	}

	checksum, err := fileChecksum(resp.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to checksum %s: %w", resp.Filename, err)
	}

	c.logger.Info("Downloaded ", resp.Filename, " (", resp.Size, " bytes, sha256 ", checksum, ")")

	extractDir := strings.TrimSuffix(resp.Filename, filepath.Ext(resp.Filename))
	if err := extractArchive(resp.Filename, extractDir); err != nil {
		return nil, fmt.Errorf("failed to extract %s: %w", resp.Filename, err)
	}

	ratingsPath, err := findRatingsFile(extractDir)
	if err != nil {
		return nil, err
	}

	c.logger.Info("Extracted ratings file ", ratingsPath)
	return &datasets.FetchResult{
		RatingsPath:     ratingsPath,
		ArchiveSize:     resp.Size,
		ArchiveChecksum: checksum,
	}, nil
}

// fileChecksum computes the hex-encoded SHA-256 of a file.
func fileChecksum(path string) (string, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// BuildGraph parses a ratings file and builds a bipartite graph with an edge
// for every rating at or above minScore. Raw user and movie IDs are remapped
// to contiguous node IDs in sorted order, so the layout is deterministic.
func (c *movieLensConnector) BuildGraph(ratingsPath string, minScore float64) (*graph.Bipartite, error) {
	file, err := os.Open(filepath.Clean(ratingsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open ratings file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			c.logger.Error("failed to close ratings file ", ratingsPath, ": ", err)
		}
	}()

	var rows []*ratingRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse ratings file: %w", err)
	}

	userIndex, movieIndex := indexIDs(rows, minScore)
	if len(userIndex) == 0 || len(movieIndex) == 0 {
		return nil, fmt.Errorf("no ratings at or above %g in %s", minScore, ratingsPath)
	}

	g, err := graph.NewBipartite(len(userIndex), len(movieIndex))
	if err != nil {
		return nil, fmt.Errorf("failed to create graph: %w", err)
	}

	for _, row := range rows {
		if row.Rating < minScore {
			continue
		}
		u := userIndex[row.UserID]
		v := g.LeftCount() + movieIndex[row.MovieID]
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("failed to add edge for user %d, movie %d: %w", row.UserID, row.MovieID, err)
		}
	}

	c.logger.Info("Built graph with ", g.LeftCount(), " users, ", g.RightCount(), " movies and ", g.EdgeCount(), " edges")
	return g, nil
}

// indexIDs maps the raw user and movie IDs of qualifying rows to contiguous
// indices in ascending raw-ID order.
func indexIDs(rows []*ratingRow, minScore float64) (map[int]int, map[int]int) {
	userSet := make(map[int]struct{})
	movieSet := make(map[int]struct{})
	for _, row := range rows {
		if row.Rating < minScore {
			continue
		}
		userSet[row.UserID] = struct{}{}
		movieSet[row.MovieID] = struct{}{}
	}
	return buildIndex(userSet), buildIndex(movieSet)
}

func buildIndex(set map[int]struct{}) map[int]int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	index := make(map[int]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	return index
}

// extractArchive unpacks a zip archive into destDir, rejecting entries that
// would escape it.
func extractArchive(archivePath, destDir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	for _, entry := range reader.File {
		target := filepath.Join(destDir, filepath.Clean(entry.Name))
		if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
			return fmt.Errorf("archive entry %s escapes extraction directory", entry.Name)
		}

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0750); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			continue
		}

		if err := extractFile(entry, target); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(entry *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", target, err)
	}

	source, err := entry.Open()
	if err != nil {
		return fmt.Errorf("failed to open archive entry %s: %w", entry.Name, err)
	}
	defer func() {
		_ = source.Close()
	}()

	dest, err := os.Create(filepath.Clean(target))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	defer func() {
		_ = dest.Close()
	}()

	// Entry sizes come from the archive header, so cap the copy to guard
	// against decompression bombs.
	limit := int64(entry.UncompressedSize64) + 1
	written, err := io.CopyN(dest, source, limit)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to extract %s: %w", entry.Name, err)
	}
	if written == limit {
		return fmt.Errorf("archive entry %s larger than declared size", entry.Name)
	}
	return nil
}

// findRatingsFile locates the ratings CSV inside an extracted archive.
func findRatingsFile(root string) (string, error) {
	var ratingsPath string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && info.Name() == "ratings.csv" {
			ratingsPath = path
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to scan extracted archive: %w", err)
	}
	if ratingsPath == "" {
		return "", fmt.Errorf("no ratings.csv found under %s", root)
	}
	return ratingsPath, nil
}
