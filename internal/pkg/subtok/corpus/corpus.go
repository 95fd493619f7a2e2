package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize brings a document into the canonical form used for training:
// NFC-composed Unicode with Unix line endings. Anything heavier (case
// folding, punctuation rewriting) would change the vocabulary the caller
// asked to learn, so it is deliberately not done here.
func Normalize(text string) string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// Load reads training documents from the given paths. A path may be a
// regular file (one document), a directory (one document per regular file
// inside, non-recursive, in name order) or "-" for stdin. With docPerLine
// set, every non-empty line becomes its own document instead.
func Load(paths []string, docPerLine bool) ([]string, error) {
	var docs []string
	for _, path := range paths {
		if path == "-" {
			loaded, err := read(os.Stdin, docPerLine)
			if err != nil {
				return nil, fmt.Errorf("failed to read stdin: %w", err)
			}
			docs = append(docs, loaded...)
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if info.IsDir() {
			loaded, err := loadDir(path, docPerLine)
			if err != nil {
				return nil, err
			}
			docs = append(docs, loaded...)
			continue
		}

		loaded, err := loadFile(path, docPerLine)
		if err != nil {
			return nil, err
		}
		docs = append(docs, loaded...)
	}
	return docs, nil
}

func loadDir(dir string, docPerLine bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	// name order keeps document order stable across runs
	sort.Strings(names)

	var docs []string
	for _, name := range names {
		loaded, err := loadFile(filepath.Join(dir, name), docPerLine)
		if err != nil {
			return nil, err
		}
		docs = append(docs, loaded...)
	}
	return docs, nil
}

func loadFile(path string, docPerLine bool) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	docs, err := read(f, docPerLine)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return docs, nil
}

func read(r io.Reader, docPerLine bool) ([]string, error) {
	if !docPerLine {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return []string{Normalize(string(data))}, nil
	}

	var docs []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := Normalize(scanner.Text())
		if line != "" {
			docs = append(docs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}
