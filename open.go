package svgmap

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// ReadDocument reads the map document at `filename`.
// See ReadDocumentStream for the meaning of `canvas`.
func ReadDocument(filename string, canvas Size, opts ...Option) (*Document, error) {
	fin, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, err
	}
	defer fin.Close()
	return ReadDocumentStream(fin, canvas, opts...)
}

// Open reads the document `name` from `fsys`.
// The .svg extension is added when `name` has none, so that
// maps may be referred to by their base name (like "france").
func Open(fsys fs.FS, name string, canvas Size, opts ...Option) (*Document, error) {
	if path.Ext(name) == "" {
		name += ".svg"
	}
	fin, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, err
	}
	defer fin.Close()
	return ReadDocumentStream(fin, canvas, opts...)
}
