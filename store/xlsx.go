package store

import (
	"io"
	"strconv"

	"github.com/etnz/notes"
	"github.com/etnz/notes/date"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// sheetName is the name of the sheet created for a new store. Existing
// files are read from their first sheet whatever its name.
const sheetName = "Investments"

type xlsxCodec struct{}

func (xlsxCodec) read(r io.Reader) (notes.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return notes.Table{}, err
	}
	defer f.Close()

	// Raw values avoid the number formats of the sheet: 0.07 stays 0.07
	// instead of 7%, and dates come as serial numbers converted below.
	rows, err := f.GetRows(f.GetSheetName(0), excelize.Options{RawCellValue: true})
	if err != nil {
		return notes.Table{}, err
	}
	if len(rows) == 0 {
		return notes.Table{}, nil
	}
	t := notes.Table{Header: rows[0], Rows: rows[1:]}
	for i, h := range t.Header {
		if notes.Column(h).Kind() != notes.DateKind {
			continue
		}
		for _, row := range t.Rows {
			if i < len(row) {
				row[i] = fromSerial(row[i])
			}
		}
	}
	return t, nil
}

// fromSerial converts an Excel date serial number to an ISO date. Other
// values are returned unchanged.
func fromSerial(v string) string {
	serial, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return v
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return v
	}
	return date.FromTime(t).String()
}

func (xlsxCodec) write(w io.Writer, t notes.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}
	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}
	for n, row := range t.Rows {
		for i, v := range row {
			if v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+1, n+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, cellValue(notes.Column(t.Header[i]), v)); err != nil {
				return err
			}
		}
	}
	if len(t.Header) > 0 {
		last, _ := excelize.ColumnNumberToName(len(t.Header))
		if err := f.SetColWidth(sheetName, "A", last, 20); err != nil {
			return err
		}
	}
	return f.Write(w)
}

// cellValue types a canonical cell for the sheet: numbers and booleans are
// written as such when that loses nothing, everything else as text.
func cellValue(c notes.Column, v string) any {
	switch c.Kind() {
	case notes.MonthsKind:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	case notes.DecimalKind:
		d, err := decimal.NewFromString(v)
		if err != nil {
			break
		}
		if f, exact := d.Float64(); exact || decimal.NewFromFloat(f).Equal(d) {
			return f
		}
	case notes.BoolKind:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return v
}
