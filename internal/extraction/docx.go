package extraction

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var xmlTags = regexp.MustCompile(`<[^>]+>`)

// extractDocx opens the document in memory and flattens the word/document.xml
// content to plain text.
func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return flattenDocumentXML(doc.Editable().GetContent()), nil
}

// flattenDocumentXML converts WordprocessingML markup to plain text:
// paragraph ends become newlines, tabs become tabs, every other tag is
// dropped, and XML entities are unescaped.
func flattenDocumentXML(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	content = strings.ReplaceAll(content, "<w:br/>", "\n")
	content = xmlTags.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}
