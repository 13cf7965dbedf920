package processors

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

// HTMLExtractor extracts the visible body text from HTML documents.
type HTMLExtractor struct{}

// NewHTMLExtractor creates an HTML extractor.
func NewHTMLExtractor() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract parses the HTML content and returns the trimmed body text.
func (p *HTMLExtractor) Extract(ctx context.Context, content []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return "", errors.Wrap(err, "parsing html")
	}

	return strings.TrimSpace(doc.Find("body").Text()), nil
}

// SupportedExtensions returns the file extensions handled by this extractor.
func (p *HTMLExtractor) SupportedExtensions() []string {
	return []string{".html", ".htm"}
}
