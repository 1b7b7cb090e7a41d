// Package letter exports notes records as client letters, one file per
// record.
package letter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/notes"
	"github.com/etnz/notes/renderer"
	"github.com/go-pdf/fpdf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Format is the file format of exported letters.
type Format string

const (
	Markdown Format = "md"
	HTML     Format = "html"
	PDF      Format = "pdf"
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Markdown, HTML, PDF:
		return f, nil
	case "markdown":
		return Markdown, nil
	default:
		return "", fmt.Errorf("unknown letter format %q: want md, html or pdf", s)
	}
}

// DefaultFirm signs letters when no firm is configured.
const DefaultFirm = "Your Investment Firm"

// Exporter writes letters into Dir. It implements notes.Exporter.
type Exporter struct {
	Dir      string
	Format   Format
	Currency string
	Firm     string
}

var _ notes.Exporter = (*Exporter)(nil)

// FileName returns the letter file name for r: "<first>_<last>.<ext>" with
// spaces replaced by underscores. Two clients with the same name share the
// same file name.
func FileName(r notes.Record, ext string) string {
	first := strings.ReplaceAll(strings.TrimSpace(r.FirstName), " ", "_")
	last := strings.ReplaceAll(strings.TrimSpace(r.LastName), " ", "_")
	return first + "_" + last + "." + ext
}

// Export writes one letter per record, overwriting existing files, and
// returns the written paths. It stops at the first failure.
func (e *Exporter) Export(records []notes.Record) ([]string, error) {
	format := e.Format
	if format == "" {
		format = PDF
	}
	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create output directory %q: %w", e.Dir, err)
	}
	var paths []string
	for _, r := range records {
		path := filepath.Join(e.Dir, FileName(r, string(format)))
		if err := e.write(path, format, r); err != nil {
			return paths, fmt.Errorf("exporting letter for %s: %w", r.Name(), err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (e *Exporter) letter(r notes.Record) *renderer.Letter {
	firm := e.Firm
	if firm == "" {
		firm = DefaultFirm
	}
	return renderer.NewLetter(r, e.Currency, firm)
}

func (e *Exporter) write(path string, format Format, r notes.Record) error {
	l := e.letter(r)
	switch format {
	case PDF:
		return writePDF(path, l)
	case HTML:
		md, err := renderer.RenderLetter(l)
		if err != nil {
			return err
		}
		html, err := toHTML(md, r.Name())
		if err != nil {
			return err
		}
		return os.WriteFile(path, html, 0644)
	default:
		md, err := renderer.RenderLetter(l)
		if err != nil {
			return err
		}
		return os.WriteFile(path, []byte(md), 0644)
	}
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// toHTML converts a markdown letter into a standalone HTML document.
func toHTML(md, title string) ([]byte, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(md), &body); err != nil {
		return nil, fmt.Errorf("converting letter to html: %w", err)
	}
	var b bytes.Buffer
	fmt.Fprintf(&b, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n", htmlEscape(title))
	b.Write(body.Bytes())
	b.WriteString("</body>\n</html>\n")
	return b.Bytes(), nil
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func htmlEscape(s string) string { return htmlEscaper.Replace(s) }

// writePDF lays the letter out on a single A4 page.
func writePDF(path string, l *renderer.Letter) error {
	body, err := renderer.RenderLetterText(l)
	if err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	// core fonts are cp1252, translate the UTF-8 text
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, "Client Investment Letter", "", 1, "C", false, 0, "")
		pdf.Ln(5)
	})
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Dear %s %s,", l.FirstName, l.LastName)), "", 1, "", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 7, tr(body), "", "L", false)
	pdf.Ln(10)
	pdf.CellFormat(0, 10, "---------------------------------", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 10, "Authorized Signature", "", 1, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}
