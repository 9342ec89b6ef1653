package domain

// Page is one page of an extracted document. Numbers are 1-based;
// 0 means the origin page is unknown.
type Page struct {
	Number int
	Text   string
}

// Document is the extracted form of an uploaded file. Immutable once loaded.
type Document struct {
	Filename string
	Pages    []Page
}

type Chunk struct {
	Text string
	Page int
	Seq  int
}

// ScoredChunk pairs a chunk with its distance to the query vector.
// Smaller distance means more similar.
type ScoredChunk struct {
	Chunk    Chunk
	Distance float64
}

// SourceRef is a citation shown alongside an answer. Page is the page
// number as text, or "unknown" when the chunk has no page attribution.
type SourceRef struct {
	Page    string `json:"page"`
	Content string `json:"content"`
}

type Answer struct {
	Text    string
	Sources []SourceRef
}
