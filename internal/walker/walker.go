package walker

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultMaxFileSize is the maximum markdown file size to process (1 MB).
const DefaultMaxFileSize int64 = 1 << 20

// FileInfo holds metadata about a single markdown source discovered during
// traversal.
type FileInfo struct {
	Path        string // Absolute path on disk.
	RelPath     string // Slash path relative to the root directory.
	Size        int64  // File size in bytes.
	ContentHash string // SHA-256 hex digest of the file content.
}

// WalkerConfig controls the behaviour of the Walk function.
type WalkerConfig struct {
	RootDir     string   // Root directory to walk.
	Include     []string // Glob patterns — only matching files are included.
	Exclude     []string // Glob patterns — matching files are excluded.
	MaxFileSize int64    // Files larger than this are skipped (0 = use default).
}

// Walk traverses the directory tree rooted at config.RootDir and returns
// metadata for every markdown file that passes filtering, sorted by relative
// path. Content hashes let callers detect edits between builds.
func Walk(config WalkerConfig) ([]FileInfo, error) {
	root, err := filepath.Abs(config.RootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: resolve root: %w", err)
	}

	maxSize := config.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	var files []FileInfo

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Skip entries we cannot read instead of aborting.
			return nil
		}

		if d.IsDir() {
			if shouldExcludeDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		// Apply user-defined include/exclude filters.
		if !MatchesInclude(relPath, config.Include) {
			return nil
		}
		if MatchesExclude(relPath, config.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.Size() > maxSize {
			return nil
		}

		hash, err := hashFile(path)
		if err != nil {
			return nil
		}

		files = append(files, FileInfo{
			Path:        path,
			RelPath:     filepath.ToSlash(relPath),
			Size:        info.Size(),
			ContentHash: hash,
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walker: traversal: %w", err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

// Fingerprint reduces a walk result to a single digest. Two walks with the
// same fingerprint saw identical file sets and contents, which is what the
// rebuild watcher polls for.
func Fingerprint(files []FileInfo) string {
	h := sha256.New()
	for _, f := range files {
		fmt.Fprintf(h, "%s\x00%s\x00", f.RelPath, f.ContentHash)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// hashFile computes the SHA-256 digest of the given file.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
