// Package extraction converts uploaded resume documents into plain text.
package extraction

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	spaceRuns   = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRuns = regexp.MustCompile(`\n+`)
)

// ExtractText dispatches on the file extension and returns the document's
// plain text. It returns *UnsupportedTypeError, *ParseError or
// *EmptyDocumentError; callers treat all three as per-file failures.
func ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var text string
	var err error
	switch ext {
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx":
		text, err = extractDocx(data)
	case ".txt":
		text = string(data)
	default:
		return "", &UnsupportedTypeError{Filename: filename, Extension: ext}
	}
	if err != nil {
		return "", &ParseError{Filename: filename, Cause: err}
	}

	text = normalizeWhitespace(text)
	if text == "" {
		return "", &EmptyDocumentError{Filename: filename}
	}
	return text, nil
}

// normalizeWhitespace collapses space runs and blank-line runs while keeping
// line structure, which the name detector relies on.
func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = spaceRuns.ReplaceAllString(s, " ")
	s = newlineRuns.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
