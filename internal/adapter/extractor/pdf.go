package extractor

import (
	"fmt"
	"path/filepath"

	"github.com/ledongthuc/pdf"

	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/domain"
)

// PDFExtractor reads a PDF from disk and returns its text page by page.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract opens the PDF at path and extracts plain text per page. Pages
// that yield no text are still counted so page numbers stay aligned with
// the document.
func (e *PDFExtractor) Extract(path string) (domain.Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	doc := domain.Document{Filename: filepath.Base(path)}
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, domain.Page{Number: i})
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return domain.Document{}, fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		doc.Pages = append(doc.Pages, domain.Page{Number: i, Text: text})
	}
	return doc, nil
}
