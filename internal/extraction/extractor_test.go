package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentExtractor_PlainTextPassthrough(t *testing.T) {
	extractor := NewDocumentExtractor()

	text, err := extractor.Extract([]byte("We are hiring a developer."), MediaTypeText)

	require.NoError(t, err)
	assert.Equal(t, "We are hiring a developer.", text)
}

func TestDocumentExtractor_EmptyTextIsValid(t *testing.T) {
	extractor := NewDocumentExtractor()

	text, err := extractor.Extract([]byte{}, MediaTypeText)

	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestDocumentExtractor_UnsupportedMediaType(t *testing.T) {
	extractor := NewDocumentExtractor()

	_, err := extractor.Extract([]byte("data"), "application/msword")

	require.Error(t, err)
	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Contains(t, extErr.Error(), "unsupported media type")
}

func TestDocumentExtractor_CorruptPDF(t *testing.T) {
	extractor := NewDocumentExtractor()

	_, err := extractor.Extract([]byte("not a pdf"), MediaTypePDF)

	require.Error(t, err)
	var extErr *ExtractionError
	assert.ErrorAs(t, err, &extErr)
}

func TestExtractionError_IncludesFilename(t *testing.T) {
	err := &ExtractionError{Filename: "resume.pdf", Reason: "failed to open PDF"}

	assert.Contains(t, err.Error(), "resume.pdf")
	assert.Contains(t, err.Error(), "failed to open PDF")
}
