// Package store persists a notes.Book to a spreadsheet file.
//
// The whole book is read on Load and the whole file is rewritten on Save.
// Writes go to a temporary file renamed over the target, so that a failed
// save leaves the previous file intact.
package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/notes"
)

// codec reads and writes a table in one file format.
type codec interface {
	read(r io.Reader) (notes.Table, error)
	write(w io.Writer, t notes.Table) error
}

// File is a notes.Store backed by a single spreadsheet file.
type File struct {
	path  string
	codec codec
}

var _ notes.Store = (*File)(nil)

// Open returns the store for path. The format follows the extension: .xlsx
// (or .xlsm) spreadsheets, or .csv files. The file itself is only accessed
// by Load and Save.
func Open(path string) (*File, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return &File{path: path, codec: xlsxCodec{}}, nil
	case ".csv":
		return &File{path: path, codec: csvCodec{}}, nil
	default:
		return nil, fmt.Errorf("unsupported store file %q: want a .xlsx or .csv file", path)
	}
}

// Path returns the path of the store file.
func (f *File) Path() string { return f.path }

// Load reads the whole book. When the file does not exist yet, an empty book
// with the full schema is created and saved immediately.
func (f *File) Load() (*notes.Book, error) {
	file, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		b := notes.NewBook()
		if err := f.Save(b); err != nil {
			return nil, err
		}
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open store file %q: %w", f.path, err)
	}
	defer file.Close()

	t, err := f.codec.read(file)
	if err != nil {
		return nil, fmt.Errorf("could not read store file %q: %w", f.path, err)
	}
	b, err := notes.DecodeBook(t)
	if err != nil {
		return nil, fmt.Errorf("could not decode store file %q: %w", f.path, err)
	}
	return b, nil
}

// Save overwrites the store file with the whole book.
func (f *File) Save(b *notes.Book) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for store %q: %w", f.path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", f.path, err)
	}
	// Remove is a no-op once the rename succeeded.
	defer os.Remove(tmp.Name())

	if err := f.codec.write(tmp, notes.EncodeBook(b)); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write store file %q: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write store file %q: %w", f.path, err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("could not replace store file %q: %w", f.path, err)
	}
	return nil
}
