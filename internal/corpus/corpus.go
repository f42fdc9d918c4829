// Package corpus reads and writes the text resources of a pipeline topic.
package corpus

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"
)

// Default file name suffixes of a topic's resources.
const (
	RawSuffix   = ".raw.txt"
	CleanSuffix = ".clean.txt"
	xzSuffix    = ".xz"
)

// Corpus errors.
var (
	ErrEmptyTopic = errors.New("topic is required")
	ErrBadTopic   = errors.New("topic must not contain path separators")
)

// Paths holds the input and output locations for one topic.
type Paths struct {
	Input  string
	Output string
}

// TopicPaths follows the structure {dir}/{topic}{suffix} for both resources.
func TopicPaths(dir, topic, rawSuffix, cleanSuffix string) (Paths, error) {
	if topic == "" {
		return Paths{}, ErrEmptyTopic
	}

	if strings.ContainsAny(topic, `/\`) {
		return Paths{}, fmt.Errorf("%w: %q", ErrBadTopic, topic)
	}

	if rawSuffix == "" {
		rawSuffix = RawSuffix
	}

	if cleanSuffix == "" {
		cleanSuffix = CleanSuffix
	}

	return Paths{
		Input:  filepath.Join(dir, topic+rawSuffix),
		Output: filepath.Join(dir, topic+cleanSuffix),
	}, nil
}

// Read loads the whole resource at path. Files ending in .xz are
// decompressed; when path itself is missing, path+".xz" is tried.
func Read(path string) (string, error) {
	data, err := readFile(path)
	if err == nil || !errors.Is(err, fs.ErrNotExist) || strings.HasSuffix(path, xzSuffix) {
		return string(data), err
	}

	data, xzErr := readFile(path + xzSuffix)
	if xzErr != nil {
		if errors.Is(xzErr, fs.ErrNotExist) {
			return "", err
		}

		return "", xzErr
	}

	return string(data), nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer f.Close()

	var r io.Reader = f

	if strings.HasSuffix(path, xzSuffix) {
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("xz reader %s: %w", path, err)
		}

		r = xzr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus %s: %w", path, err)
	}

	return data, nil
}

// Write stores text at path in one step: the content goes to a temporary
// file in the same directory which is then renamed over path, so path never
// holds a partial corpus.
func Write(path, text string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	tmpName := tmp.Name()

	if _, err := io.WriteString(tmp, text); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return fmt.Errorf("failed to write corpus: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close corpus: %w", err)
	}

	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set corpus permissions: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move corpus into place: %w", err)
	}

	return nil
}

// Digest returns the hex BLAKE3-256 digest of text.
func Digest(text string) string {
	sum := blake3.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
