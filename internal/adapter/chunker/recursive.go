package chunker

import (
	"strings"

	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/domain"
)

// separators are tried coarsest-first when picking a cut point: paragraph
// break, line break, sentence break, word break. If none fits, the text is
// hard-cut at the size limit.
var separators = []string{"\n\n", "\n", ". ", " "}

// RecursiveChunker splits text into bounded pieces that end on the
// coarsest natural boundary available, with consecutive pieces overlapping
// by exactly `overlap` characters of the original text.
type RecursiveChunker struct {
	size    int
	overlap int
}

func NewRecursiveChunker(size, overlap int) (*RecursiveChunker, error) {
	if size <= 0 {
		return nil, domain.Errorf(domain.KindConfiguration, "chunk size must be positive, got %d", size)
	}
	if overlap < 0 || overlap >= size {
		return nil, domain.Errorf(domain.KindConfiguration, "chunk overlap must be in [0, %d), got %d", size, overlap)
	}
	return &RecursiveChunker{size: size, overlap: overlap}, nil
}

// Chunk splits each page independently, so a chunk never spans pages and
// always carries its origin page number. Sequence indexes are monotonic
// across the whole document.
func (c *RecursiveChunker) Chunk(doc domain.Document) []domain.Chunk {
	var chunks []domain.Chunk
	seq := 0
	for _, page := range doc.Pages {
		for _, piece := range c.Split(page.Text) {
			chunks = append(chunks, domain.Chunk{
				Text: piece,
				Page: page.Number,
				Seq:  seq,
			})
			seq++
		}
	}
	return chunks
}

// Split splits one text into ordered pieces of at most size characters.
// Empty text yields no pieces; text that already fits yields exactly one
// piece with no overlap applied.
func (c *RecursiveChunker) Split(text string) []string {
	if text == "" {
		return nil
	}
	if len(text) <= c.size {
		return []string{text}
	}

	var pieces []string
	start := 0
	for start < len(text) {
		end := start + c.size
		if end >= len(text) {
			pieces = append(pieces, text[start:])
			break
		}
		cut := c.cutPoint(text, start, end)
		pieces = append(pieces, text[start:cut])
		start = cut - c.overlap
	}
	return pieces
}

// cutPoint returns the end of the piece starting at start. It prefers the
// latest occurrence of the coarsest separator within the window; a cut
// that would not advance past the overlapped region is rejected so the
// walk always makes forward progress. Falls back to a hard cut at limit.
func (c *RecursiveChunker) cutPoint(text string, start, limit int) int {
	window := text[start:limit]
	for _, sep := range separators {
		i := strings.LastIndex(window, sep)
		if i < 0 {
			continue
		}
		cut := start + i + len(sep)
		if cut-start > c.overlap {
			return cut
		}
	}
	return limit
}
