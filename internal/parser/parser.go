// Package parser turns uploaded résumé files into plain text.
package parser

import (
	"context"
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"atscv/internal/model"
)

// Supported extensions, lower case with the leading dot.
const (
	ExtPDF  = ".pdf"
	ExtDOCX = ".docx"
)

// charsPerPage estimates page counts for formats without real pagination.
const charsPerPage = 3000

// Parser extracts text from PDF and DOCX files. The zero value is ready to use.
type Parser struct{}

// New returns a Parser.
func New() *Parser {
	return &Parser{}
}

// Supported reports whether filename has an extension the parser understands.
func Supported(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ExtPDF, ExtDOCX:
		return true
	}
	return false
}

// Parse extracts the text of data, choosing the format from filename's extension.
func (p *Parser) Parse(ctx context.Context, filename string, data []byte) (model.Document, error) {
	if err := ctx.Err(); err != nil {
		return model.Document{}, err
	}

	var (
		doc model.Document
		err error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ExtPDF:
		doc, err = parsePDF(data)
	case ExtDOCX:
		doc, err = parseDOCX(data)
	default:
		return model.Document{}, newError("parse", filename, ErrUnsupportedFormat, filepath.Ext(filename))
	}
	if err != nil {
		return model.Document{}, newError("parse", filename, ErrParseFailure, err.Error())
	}

	doc.Text = norm.NFC.String(doc.Text)
	if doc.PageCount < 1 {
		doc.PageCount = 1
	}
	return doc, nil
}

// ParseFile reads path from disk and parses it.
func (p *Parser) ParseFile(ctx context.Context, path string) (model.Document, error) {
	if !Supported(path) {
		return model.Document{}, newError("parse", path, ErrUnsupportedFormat, filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.Document{}, newError("read", path, ErrFileNotFound, "")
		}
		return model.Document{}, newError("read", path, ErrParseFailure, err.Error())
	}
	return p.Parse(ctx, path, data)
}

func estimatePages(text string) int {
	return max(1, int(math.Ceil(float64(utf8.RuneCountInString(text))/charsPerPage)))
}
