// Package corpus reads the sample documents an invertible vectorizer is fitted on.
package corpus

import (
	"bufio"
	"fmt"
	"hashlens/errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
)

type SplitMode string

const (
	// SplitFile makes every file one document.
	SplitFile SplitMode = "file"
	// SplitLine makes every non-empty line one document.
	SplitLine SplitMode = "line"
)

type Document struct {
	Path string
	Line int
	Text string
}

type Loader struct {
	log   *slog.Logger
	split SplitMode
}

func NewLoader(log *slog.Logger, split SplitMode) (*Loader, error) {
	if split != SplitFile && split != SplitLine {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownSplitMode, split)
	}
	return &Loader{log: log, split: split}, nil
}

// Load reads files and walks directories. Files that are not text are skipped.
func (l *Loader) Load(paths []string) ([]Document, error) {
	var docs []Document
	for _, root := range paths {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			fileDocs, err := l.loadFile(path)
			if err != nil {
				return err
			}
			docs = append(docs, fileDocs...)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	if len(docs) == 0 {
		return nil, errors.ErrNoDocuments
	}
	return docs, nil
}

func (l *Loader) loadFile(path string) ([]Document, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, err
	}
	if !isText(mtype) {
		l.log.Debug("Skipping non text file", "path", path, "mime", mtype.String())
		return nil, nil
	}

	switch l.split {
	case SplitLine:
		return readLines(path)
	default:
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		text := string(content)
		if strings.TrimSpace(text) == "" {
			return nil, nil
		}
		return []Document{{Path: path, Line: 0, Text: text}}, nil
	}
}

// isText walks up the MIME hierarchy: every textual format descends from text/plain.
func isText(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

func readLines(path string) ([]Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var docs []Document
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		docs = append(docs, Document{Path: path, Line: line, Text: text})
	}
	return docs, scanner.Err()
}

// Texts returns the raw text of each document.
func Texts(docs []Document) []string {
	return lo.Map(docs, func(d Document, _ int) string { return d.Text })
}
