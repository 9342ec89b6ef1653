package usecase

import (
	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/domain"
	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/index"
	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/port"
)

// Ingestor runs the build pipeline: extract pages, chunk, embed, build the
// vector index, then publish it. Any failure aborts the build and leaves
// the previous corpus untouched.
type Ingestor struct {
	extractor port.Extractor
	chunker   port.Chunker
	embedder  port.Embedder
	corpus    *Corpus

	// BatchSize bounds how many chunk texts go to the embedder per call.
	BatchSize int
	// OnProgress, when set, is called after each embedded batch.
	OnProgress func(done, total int)
}

// IngestResult summarizes a successful build.
type IngestResult struct {
	Filename string
	Pages    int
	Chunks   int
}

func NewIngestor(extractor port.Extractor, chunker port.Chunker, embedder port.Embedder, corpus *Corpus) *Ingestor {
	return &Ingestor{
		extractor: extractor,
		chunker:   chunker,
		embedder:  embedder,
		corpus:    corpus,
		BatchSize: 100,
	}
}

// Ingest processes the document at path and replaces the resident corpus
// on success. filename is the user-facing name reported back (the upload
// handler passes the original upload name, not the temp path).
func (i *Ingestor) Ingest(path, filename string) (*IngestResult, error) {
	doc, err := i.extractor.Extract(path)
	if err != nil {
		return nil, domain.WrapUpstream("failed to extract document text", err)
	}
	doc.Filename = filename

	chunks := i.chunker.Chunk(doc)
	if len(chunks) == 0 {
		return nil, domain.Errorf(domain.KindValidation, "no text could be extracted from %s", filename)
	}

	vectors, err := i.embedChunks(chunks)
	if err != nil {
		return nil, domain.WrapUpstream("failed to embed document chunks", err)
	}

	entries := make([]index.Entry, len(chunks))
	for j := range chunks {
		entries[j] = index.Entry{Vector: vectors[j], Chunk: chunks[j]}
	}
	idx, err := index.Build(entries)
	if err != nil {
		return nil, err
	}

	i.corpus.Replace(idx, filename, len(doc.Pages), len(chunks))
	return &IngestResult{Filename: filename, Pages: len(doc.Pages), Chunks: len(chunks)}, nil
}

func (i *Ingestor) embedChunks(chunks []domain.Chunk) ([][]float32, error) {
	batch := i.BatchSize
	if batch <= 0 {
		batch = 100
	}

	vectors := make([][]float32, 0, len(chunks))
	for start := 0; start < len(chunks); start += batch {
		end := start + batch
		if end > len(chunks) {
			end = len(chunks)
		}
		texts := make([]string, 0, end-start)
		for _, ch := range chunks[start:end] {
			texts = append(texts, ch.Text)
		}
		batchVectors, err := i.embedder.Embed(texts)
		if err != nil {
			return nil, err
		}
		vectors = append(vectors, batchVectors...)
		if i.OnProgress != nil {
			i.OnProgress(end, len(chunks))
		}
	}
	return vectors, nil
}
