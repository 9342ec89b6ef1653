package port

import "github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/domain"

// VectorIndex answers nearest-neighbor queries over stored chunk
// embeddings. Callers depend only on this contract, not on the scan
// strategy, so a sub-linear implementation can be swapped in later.
type VectorIndex interface {
	// Search returns up to k chunks ordered by ascending distance.
	// Searching an index with zero entries is an error, never an empty
	// result.
	Search(query []float32, k int) ([]domain.ScoredChunk, error)

	// Len returns the number of stored entries.
	Len() int
}
