// Package extraction turns uploaded resume and job documents into text and
// pulls structured fields (contact info, skills) out of that text.
package extraction

import (
	"strings"

	fitz "github.com/gen2brain/go-fitz"
)

// Media types accepted for uploaded documents.
const (
	MediaTypePDF  = "application/pdf"
	MediaTypeText = "text/plain"
)

// TextExtractor converts a document blob into plain text. An empty result is
// valid: a blank page extracts to an empty string, not an error.
type TextExtractor interface {
	Extract(data []byte, mediaType string) (string, error)
}

// DocumentExtractor is the default TextExtractor. PDF pages are rendered to
// text with go-fitz and concatenated; plain text passes through as UTF-8.
type DocumentExtractor struct{}

// NewDocumentExtractor creates the default extractor.
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// Extract returns the plain text of a document, or an *ExtractionError when
// the document is corrupt or the media type is unsupported.
func (d *DocumentExtractor) Extract(data []byte, mediaType string) (string, error) {
	switch mediaType {
	case MediaTypePDF:
		return extractPDF(data)
	case MediaTypeText:
		return string(data), nil
	default:
		return "", &ExtractionError{Reason: "unsupported media type: " + mediaType}
	}
}

func extractPDF(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", &ExtractionError{Reason: "failed to open PDF", Err: err}
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", &ExtractionError{Reason: "failed to read PDF page", Err: err}
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}
