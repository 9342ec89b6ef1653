// Package index provides the in-memory vector index backing retrieval.
// The scan is exhaustive, which is fine for a single small corpus; the
// port.VectorIndex contract leaves room for a sub-linear replacement.
package index

import (
	"fmt"
	"math"
	"sort"

	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/domain"
)

// Entry is one stored (embedding, chunk) pair. Entries reference chunks,
// they do not copy them.
type Entry struct {
	Vector []float32
	Chunk  domain.Chunk
}

// Memory is a brute-force vector index over a fixed set of entries. A
// built index is never mutated; replacing a corpus means building a new
// index and swapping the reference.
type Memory struct {
	entries []Entry
	dim     int
}

// Build creates an index from the given entries. An empty build is
// rejected so the searchable-but-empty state cannot exist. All vectors
// must share one dimension.
func Build(entries []Entry) (*Memory, error) {
	if len(entries) == 0 {
		return nil, domain.Errorf(domain.KindEmptyIndex, "index build requires at least one entry")
	}
	dim := len(entries[0].Vector)
	for i := range entries {
		if len(entries[i].Vector) != dim {
			return nil, domain.Errorf(domain.KindConfiguration,
				"inconsistent embedding dimensions: %d vs %d", len(entries[i].Vector), dim)
		}
	}
	return &Memory{entries: entries, dim: dim}, nil
}

// Search returns up to k entries ordered by ascending Euclidean distance
// to the query vector. Ties are broken by ascending chunk sequence index
// for determinism. If k exceeds the number of entries, all entries are
// returned.
func (m *Memory) Search(query []float32, k int) ([]domain.ScoredChunk, error) {
	if len(m.entries) == 0 {
		return nil, domain.Errorf(domain.KindEmptyIndex, "search on empty index")
	}
	if k <= 0 {
		return nil, domain.Errorf(domain.KindConfiguration, "k must be positive, got %d", k)
	}
	if len(query) != m.dim {
		return nil, domain.Errorf(domain.KindConfiguration,
			"query dimension mismatch: expected %d, got %d", m.dim, len(query))
	}

	scored := make([]domain.ScoredChunk, len(m.entries))
	for i, e := range m.entries {
		scored[i] = domain.ScoredChunk{Chunk: e.Chunk, Distance: l2Distance(query, e.Vector)}
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Distance != scored[j].Distance {
			return scored[i].Distance < scored[j].Distance
		}
		return scored[i].Chunk.Seq < scored[j].Chunk.Seq
	})

	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k], nil
}

// Len returns the number of stored entries.
func (m *Memory) Len() int { return len(m.entries) }

// String describes the index for logs.
func (m *Memory) String() string {
	return fmt.Sprintf("memory index (%d entries, dim %d)", len(m.entries), m.dim)
}

// l2Distance computes the Euclidean distance between two equal-length
// vectors.
func l2Distance(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
