// Package renderer renders notes records as markdown or plain text using
// embedded text/template files.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*
var templates embed.FS

// RenderLetter renders the client letter as markdown.
func RenderLetter(l *Letter) (string, error) {
	partials := map[string]string{
		"letter_figures": "letter_figures.md",
		"letter_closing": "letter_closing.md",
	}
	return renderTemplate("letter", "letter.md", partials, l)
}

// RenderLetterText renders the body of the client letter as plain text,
// without title nor salutation.
func RenderLetterText(l *Letter) (string, error) {
	partials := map[string]string{
		"letter_closing": "letter_closing.md",
	}
	return renderTemplate("letterText", "letter.txt", partials, l)
}

// RenderRecords renders a table of records to a markdown string.
func RenderRecords(t *RecordTable) string {
	s, err := renderTemplate("records", "records.md", nil, t)
	if err != nil {
		return err.Error()
	}
	return s
}

// RenderRollover renders the outcome of a rollover to a markdown string.
func RenderRollover(r *RolloverReport) string {
	partials := map[string]string{
		// An empty file name results in an empty template.
		"rollover_failures": "",
	}
	if len(r.Failures) > 0 {
		partials["rollover_failures"] = "rollover_failures.md"
	}
	s, err := renderTemplate("rollover", "rollover.md", partials, r)
	if err != nil {
		return err.Error()
	}
	return s
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) (string, error) {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return "", fmt.Errorf("error reading main template %q: %w", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return "", fmt.Errorf("error parsing main template %q: %w", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, "templates/"+file)
			if err != nil {
				return "", fmt.Errorf("error reading partial template %q: %w", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return "", fmt.Errorf("error parsing partial template %q for %q: %w", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return "", fmt.Errorf("error executing template %q: %w", templateName, err)
	}
	return b.String(), nil
}
