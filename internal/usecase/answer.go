package usecase

import (
	"strconv"
	"strings"

	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/domain"
	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/port"
)

const maxSources = 3

// Answerer turns a question into retrieved chunks plus a synthesized
// answer. It requires a ready corpus and validates input before any
// collaborator call.
type Answerer struct {
	embedder     port.Embedder
	generator    port.Generator
	corpus       *Corpus
	topK         int
	snippetChars int
}

func NewAnswerer(embedder port.Embedder, generator port.Generator, corpus *Corpus, topK, snippetChars int) *Answerer {
	if topK <= 0 {
		topK = 3
	}
	if snippetChars <= 0 {
		snippetChars = 200
	}
	return &Answerer{
		embedder:     embedder,
		generator:    generator,
		corpus:       corpus,
		topK:         topK,
		snippetChars: snippetChars,
	}
}

// Answer retrieves the chunks nearest the question and asks the generator
// for an answer conditioned on them.
func (a *Answerer) Answer(question string) (*domain.Answer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, domain.Errorf(domain.KindValidation, "question cannot be empty")
	}

	idx, err := a.corpus.Index()
	if err != nil {
		return nil, err
	}

	vector, err := a.embedder.EmbedQuery(question)
	if err != nil {
		return nil, domain.WrapUpstream("failed to embed question", err)
	}

	results, err := idx.Search(vector, a.topK)
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(results))
	for i, r := range results {
		texts[i] = r.Chunk.Text
	}
	contextBlock := strings.Join(texts, "\n\n")

	text, err := a.generator.Generate(contextBlock, question)
	if err != nil {
		return nil, domain.WrapUpstream("failed to generate answer", err)
	}

	answer := &domain.Answer{Text: text}
	for i, r := range results {
		if i >= maxSources {
			break
		}
		answer.Sources = append(answer.Sources, domain.SourceRef{
			Page:    pageLabel(r.Chunk.Page),
			Content: a.snippet(r.Chunk.Text),
		})
	}
	return answer, nil
}

// snippet truncates text to the snippet cap and appends the ellipsis
// marker. The marker is appended even when the text is already short;
// this mirrors the original backend's source formatting.
func (a *Answerer) snippet(text string) string {
	if len(text) > a.snippetChars {
		text = text[:a.snippetChars]
	}
	return text + "..."
}

func pageLabel(page int) string {
	if page <= 0 {
		return "unknown"
	}
	return strconv.Itoa(page)
}
