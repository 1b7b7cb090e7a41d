package store

import (
	"encoding/csv"
	"io"

	"github.com/etnz/notes"
)

type csvCodec struct{}

func (csvCodec) read(r io.Reader) (notes.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows may be shorter than the header
	rows, err := cr.ReadAll()
	if err != nil {
		return notes.Table{}, err
	}
	if len(rows) == 0 {
		return notes.Table{}, nil
	}
	return notes.Table{Header: rows[0], Rows: rows[1:]}, nil
}

func (csvCodec) write(w io.Writer, t notes.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}
