package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"atscv/internal/model"
)

func parsePDF(data []byte) (doc model.Document, err error) {
	// The pdf library panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("read pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return model.Document{}, fmt.Errorf("read pdf: %w", err)
	}

	var b strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		b.WriteString(pageText(page))
		b.WriteString("\n")
	}

	return model.Document{Text: strings.TrimSpace(b.String()), PageCount: numPages}, nil
}

// pageText rebuilds the lines of a page from its text rows, falling back to
// the plain text stream when rows cannot be read.
func pageText(page pdf.Page) string {
	rows, err := page.GetTextByRow()
	if err != nil || len(rows) == 0 {
		text, _ := page.GetPlainText(nil)
		return text
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var line strings.Builder
		for _, t := range row.Content {
			line.WriteString(t.S)
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
