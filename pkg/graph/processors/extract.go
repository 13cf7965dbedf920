package processors

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// DocumentExtractor turns raw file content into plain text.
type DocumentExtractor interface {
	Extract(ctx context.Context, content []byte) (string, error)
	SupportedExtensions() []string
}

// defaultExtractors dispatch by file extension.
var defaultExtractors = []DocumentExtractor{
	NewPlainTextExtractor(),
	NewPDFExtractor(),
	NewHTMLExtractor(),
}

// ExtractText reads a document from disk and extracts its plain text using
// the extractor registered for the file's extension.
func ExtractText(ctx context.Context, path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, extractor := range defaultExtractors {
		for _, supported := range extractor.SupportedExtensions() {
			if ext == supported {
				text, err := extractor.Extract(ctx, content)
				if err != nil {
					return "", errors.Wrapf(err, "extracting text from %s", path)
				}
				return text, nil
			}
		}
	}

	return "", errors.Errorf("unsupported document type %q", ext)
}

// PlainTextExtractor passes text-format files through unchanged.
type PlainTextExtractor struct{}

// NewPlainTextExtractor creates a plain text extractor.
func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

// Extract returns the content as-is.
func (p *PlainTextExtractor) Extract(ctx context.Context, content []byte) (string, error) {
	return string(content), nil
}

// SupportedExtensions returns the file extensions handled by this extractor.
func (p *PlainTextExtractor) SupportedExtensions() []string {
	return []string{".txt", ".md", ""}
}
