package processors

import (
	"bytes"
	"context"

	"github.com/ledongthuc/pdf"
	"github.com/pkg/errors"
)

// PDFExtractor extracts plain text from PDF documents.
type PDFExtractor struct{}

// NewPDFExtractor creates a PDF extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract concatenates the plain text of every readable page.
func (p *PDFExtractor) Extract(ctx context.Context, content []byte) (string, error) {
	reader := bytes.NewReader(content)

	r, err := pdf.NewReader(reader, int64(len(content)))
	if err != nil {
		return "", errors.Wrap(err, "opening pdf")
	}

	var textContent string
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textContent += text
	}

	return textContent, nil
}

// SupportedExtensions returns the file extensions handled by this extractor.
func (p *PDFExtractor) SupportedExtensions() []string {
	return []string{".pdf"}
}
