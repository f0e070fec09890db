package extraction

import "fmt"

// UnsupportedTypeError indicates the file extension is not one we can extract.
type UnsupportedTypeError struct {
	Filename  string
	Extension string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type %q for %s (expected .pdf, .docx or .txt)", e.Extension, e.Filename)
}

// ParseError indicates the document could not be read (corrupt, encrypted,
// or an unsupported internal layout).
type ParseError struct {
	Filename string
	Cause    error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract text from %s: %v", e.Filename, e.Cause)
	}
	return fmt.Sprintf("failed to extract text from %s", e.Filename)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// EmptyDocumentError indicates the document parsed cleanly but contained no
// extractable text layer (e.g. a scanned PDF).
type EmptyDocumentError struct {
	Filename string
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("no text could be extracted from %s", e.Filename)
}
