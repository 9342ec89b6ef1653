package port

import "github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/domain"

// Extractor converts a document file into ordered page texts.
type Extractor interface {
	Extract(path string) (domain.Document, error)
}
