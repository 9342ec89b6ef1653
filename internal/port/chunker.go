package port

import "github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/domain"

type Chunker interface {
	Chunk(doc domain.Document) []domain.Chunk
}
