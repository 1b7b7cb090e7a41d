package letter

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/notes"
	"github.com/etnz/notes/date"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func record(first, last string, principal int64) notes.Record {
	r := notes.Record{
		FirstName: first,
		LastName:  last,
		Project:   "Alpha",
		Origin:    date.New(2024, 1, 1),
		Term:      9,
		Principal: decimal.NewNullDecimal(decimal.NewFromInt(principal)),
		Rate:      decimal.NewNullDecimal(decimal.RequireFromString("0.07")),
	}
	r.Compute()
	return r
}

func TestFileName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"John", "Doe", "John_Doe.pdf"},
		{" Mary Ann ", "Van Dyke", "Mary_Ann_Van_Dyke.pdf"},
	}
	for _, test := range tests {
		if got := FileName(record(test.first, test.last, 1), "pdf"); got != test.want {
			t.Errorf("FileName(%q, %q) = %q, want %q", test.first, test.last, got, test.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"md": Markdown, "Markdown": Markdown, " HTML": HTML, "pdf": PDF} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v, want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("docx"); err == nil {
		t.Error("ParseFormat(docx) accepted an unknown format")
	}
}

func TestExport(t *testing.T) {
	records := []notes.Record{record("John", "Doe", 1000), record("Jane", "Roe", 500)}
	for _, format := range []Format{Markdown, HTML, PDF} {
		t.Run(string(format), func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "output")
			exp := &Exporter{Dir: dir, Format: format, Currency: "USD", Firm: "Acme Capital"}

			paths, err := exp.Export(records)
			if err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			want := []string{
				filepath.Join(dir, "John_Doe."+string(format)),
				filepath.Join(dir, "Jane_Roe."+string(format)),
			}
			if diff := cmp.Diff(want, paths); diff != "" {
				t.Errorf("Export() paths mismatch (-want +got):\n%s", diff)
			}
			content, err := os.ReadFile(paths[0])
			if err != nil {
				t.Fatal(err)
			}
			switch format {
			case PDF:
				if !bytes.HasPrefix(content, []byte("%PDF-")) {
					t.Errorf("%s is not a PDF file", paths[0])
				}
			case HTML:
				for _, want := range []string{"<title>John Doe</title>", "<h1>Client Investment Letter</h1>", "<li>Total Expected Payout at Maturity: $1,052.50</li>", "Acme Capital"} {
					if !strings.Contains(string(content), want) {
						t.Errorf("%s does not contain %q:\n%s", paths[0], want, content)
					}
				}
			default:
				for _, want := range []string{"**Dear John Doe,**", "$1,052.50", "Acme Capital"} {
					if !strings.Contains(string(content), want) {
						t.Errorf("%s does not contain %q:\n%s", paths[0], want, content)
					}
				}
			}
		})
	}
}

func TestExportOverwrites(t *testing.T) {
	dir := t.TempDir()
	exp := &Exporter{Dir: dir, Format: Markdown}

	// Two clients with the same name share a file name: the last one wins.
	paths, err := exp.Export([]notes.Record{record("John", "Doe", 1000), record("John", "Doe", 2000)})
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if paths[0] != paths[1] {
		t.Errorf("Export() paths = %v, want the same file twice", paths)
	}
	content, _ := os.ReadFile(paths[0])
	if !strings.Contains(string(content), "$2,000.00") {
		t.Errorf("letter was not overwritten:\n%s", content)
	}
	if !strings.Contains(string(content), DefaultFirm) {
		t.Errorf("letter is not signed by the default firm:\n%s", content)
	}
}
