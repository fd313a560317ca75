// Package loadfile resolves the files a summary run needs against a context
// directory and reads each of them exactly once.
package loadfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrUnknownKey signals that a file key was never registered with the cache.
var ErrUnknownKey = errors.New("file cache does not contain key")

// ContextFile is a file whose absolute file path and content
// need to be referenced at some point during execution.
type ContextFile struct {
	ID           string
	AbsolutePath string
	Content      []byte
}

type fileCache struct {
	rootDir string
	files   map[string]ContextFile
}

// FileCache is a container of ContextFiles keyed by the role they play in the
// run (e.g. the dataset or the configuration file), and the context (root)
// directory relative paths are resolved against.
type FileCache interface {
	RootDir() string
	LoadContext() error
	GetByKey(fileKey string) (ContextFile, bool)
	AbsPathByKey(fileKey string) (string, error)
	ContentByKey(fileKey string) ([]byte, error)
	Files() map[string]ContextFile
}

// NewFileCacheUsingContext creates a mapping of file keys to absolute paths.
// rootDir is the context directory relative paths are joined to. Nothing is
// read until LoadContext is called.
func NewFileCacheUsingContext(rootDir string, files map[string]string) (FileCache, error) {
	absDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("error determining context directory absolute path %s (%w)", rootDir, err)
	}
	resolved := make(map[string]ContextFile, len(files))
	for key, f := range files {
		absPath := f
		if !filepath.IsAbs(f) {
			absPath = filepath.Join(absDir, f)
		}
		resolved[key] = ContextFile{
			ID:           f,
			AbsolutePath: absPath,
		}
	}
	return &fileCache{rootDir: absDir, files: resolved}, nil
}

// NewFileCache creates an already loaded file cache from in-memory contents.
// The keys in fileContents double as file IDs and paths.
func NewFileCache(rootDir string, fileContents map[string][]byte) FileCache {
	files := make(map[string]ContextFile, len(fileContents))
	for key, content := range fileContents {
		files[key] = ContextFile{
			ID:           key,
			AbsolutePath: key,
			Content:      content,
		}
	}
	return &fileCache{rootDir: rootDir, files: files}
}

// LoadContext reads the content of each file that has not been read yet.
func (fc *fileCache) LoadContext() error {
	for key, cf := range fc.files {
		if cf.Content != nil {
			continue
		}
		fileData, err := os.ReadFile(filepath.Clean(cf.AbsolutePath))
		if err != nil {
			return fmt.Errorf("error reading file %s (%w)", cf.AbsolutePath, err)
		}
		cf.Content = fileData
		fc.files[key] = cf
	}
	return nil
}

// RootDir returns the root directory used by files with
// relative file paths.
func (fc *fileCache) RootDir() string {
	return fc.rootDir
}

// GetByKey returns the context file registered under fileKey.
func (fc *fileCache) GetByKey(fileKey string) (ContextFile, bool) {
	cf, ok := fc.files[fileKey]
	return cf, ok
}

// AbsPathByKey returns the absolute file path of a given file key.
func (fc *fileCache) AbsPathByKey(fileKey string) (string, error) {
	cf, ok := fc.GetByKey(fileKey)
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownKey, fileKey)
	}
	return cf.AbsolutePath, nil
}

// ContentByKey returns the loaded content of a given file key.
func (fc *fileCache) ContentByKey(fileKey string) ([]byte, error) {
	cf, ok := fc.GetByKey(fileKey)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKey, fileKey)
	}
	return cf.Content, nil
}

// Files returns the mapping of file keys to their ContextFile.
func (fc *fileCache) Files() map[string]ContextFile {
	return fc.files
}
