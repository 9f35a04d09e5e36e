package book

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Book is a filesystem view of one mdBook content root.
type Book struct {
	contentRoot string
}

// New creates a Book over the given content root directory.
func New(contentRoot string) *Book {
	return &Book{contentRoot: contentRoot}
}

// ContentRoot returns the content root directory.
func (b *Book) ContentRoot() string {
	return b.contentRoot
}

// Resolve returns the absolute path for a content-root relative path.
func (b *Book) Resolve(rel string) string {
	return filepath.Join(b.contentRoot, filepath.FromSlash(rel))
}

// ScannedFile represents a markdown file found under the content root.
type ScannedFile struct {
	RelPath string // Relative path from the content root, forward slashes
	Folder  string // Folder part of RelPath, "" for root-level files
	AbsPath string // Absolute file path
}

// Scan walks the content root and returns every markdown file found.
// Dot-directories (editor and build tool state) are skipped.
func (b *Book) Scan(ctx context.Context) ([]ScannedFile, error) {
	var scannedFiles []ScannedFile

	err := filepath.Walk(b.contentRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("failed to access path %s: %w", path, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != b.contentRoot {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(path) != ".md" {
			return nil
		}

		relPath, err := filepath.Rel(b.contentRoot, path)
		if err != nil {
			return fmt.Errorf("failed to compute relative path for %s: %w", path, err)
		}
		relPath = filepath.ToSlash(relPath)

		folder := filepath.Dir(relPath)
		if folder == "." || folder == "" {
			folder = ""
		} else {
			folder = filepath.ToSlash(folder)
		}

		scannedFiles = append(scannedFiles, ScannedFile{
			RelPath: relPath,
			Folder:  folder,
			AbsPath: path,
		})
		return nil
	})
	if err != nil {
		return scannedFiles, fmt.Errorf("failed to scan content root %s: %w", b.contentRoot, err)
	}

	return scannedFiles, nil
}
