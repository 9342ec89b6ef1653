package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/adapter/chunker"
	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/domain"
	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/index"
)

type fakeEmbedder struct {
	calls int
	fail  bool
}

func (f *fakeEmbedder) Embed(texts []string) ([][]float32, error) {
	f.calls++
	if f.fail {
		return nil, errors.New("embedder down")
	}
	vectors := make([][]float32, len(texts))
	for i, t := range texts {
		vectors[i] = []float32{float32(len(t)), 1}
	}
	return vectors, nil
}

func (f *fakeEmbedder) EmbedQuery(text string) ([]float32, error) {
	f.calls++
	if f.fail {
		return nil, errors.New("embedder down")
	}
	return []float32{float32(len(text)), 1}, nil
}

func (f *fakeEmbedder) ModelName() string { return "fake" }

type fakeGenerator struct {
	calls       int
	fail        bool
	lastContext string
	answer      string
}

func (f *fakeGenerator) Generate(contextBlock, question string) (string, error) {
	f.calls++
	f.lastContext = contextBlock
	if f.fail {
		return "", errors.New("generator down")
	}
	if f.answer == "" {
		return "a fine answer", nil
	}
	return f.answer, nil
}

func (f *fakeGenerator) ModelName() string { return "fake" }

func readyCorpus(t *testing.T, texts ...string) *Corpus {
	t.Helper()
	entries := make([]index.Entry, len(texts))
	for i, text := range texts {
		entries[i] = index.Entry{
			Vector: []float32{float32(len(text)), 1},
			Chunk:  domain.Chunk{Text: text, Page: i + 1, Seq: i},
		}
	}
	idx, err := index.Build(entries)
	if err != nil {
		t.Fatal(err)
	}
	corpus := NewCorpus()
	corpus.Replace(idx, "doc.pdf", len(texts), len(texts))
	return corpus
}

func TestAnswerRejectsBlankQuestionBeforeAnyCall(t *testing.T) {
	emb := &fakeEmbedder{}
	gen := &fakeGenerator{}
	a := NewAnswerer(emb, gen, readyCorpus(t, "some content"), 3, 200)

	for _, q := range []string{"", "   ", "\n\t "} {
		_, err := a.Answer(q)
		if err == nil {
			t.Fatalf("expected error for blank question %q", q)
		}
		if domain.KindOf(err) != domain.KindValidation {
			t.Errorf("expected validation error, got %v", err)
		}
	}
	if emb.calls != 0 || gen.calls != 0 {
		t.Errorf("expected no collaborator calls, got embedder=%d generator=%d", emb.calls, gen.calls)
	}
}

func TestAnswerRequiresReadyCorpus(t *testing.T) {
	a := NewAnswerer(&fakeEmbedder{}, &fakeGenerator{}, NewCorpus(), 3, 200)
	_, err := a.Answer("what is this about?")
	if err == nil {
		t.Fatal("expected error against empty corpus")
	}
	if domain.KindOf(err) != domain.KindNotReady {
		t.Errorf("expected not-ready error, got %v", err)
	}
}

func TestAnswerAfterResetFailsNotReady(t *testing.T) {
	corpus := readyCorpus(t, "indexed content")
	a := NewAnswerer(&fakeEmbedder{}, &fakeGenerator{}, corpus, 3, 200)

	if _, err := a.Answer("works before reset?"); err != nil {
		t.Fatalf("expected success before reset, got %v", err)
	}

	corpus.Reset()
	_, err := a.Answer("works after reset?")
	if domain.KindOf(err) != domain.KindNotReady {
		t.Errorf("expected not-ready error after reset, got %v", err)
	}
}

func TestAnswerBuildsContextInRankOrder(t *testing.T) {
	gen := &fakeGenerator{}
	a := NewAnswerer(&fakeEmbedder{}, gen, readyCorpus(t, "alpha", "beta", "gamma"), 3, 200)

	ans, err := a.Answer("which greek letters appear?")
	if err != nil {
		t.Fatal(err)
	}
	if ans.Text != "a fine answer" {
		t.Errorf("unexpected answer text %q", ans.Text)
	}
	if gen.calls != 1 {
		t.Fatalf("expected exactly one generator call, got %d", gen.calls)
	}
	parts := strings.Split(gen.lastContext, "\n\n")
	if len(parts) != 3 {
		t.Fatalf("expected 3 context blocks, got %d", len(parts))
	}
}

func TestAnswerSourceSnippetAlwaysGetsEllipsis(t *testing.T) {
	a := NewAnswerer(&fakeEmbedder{}, &fakeGenerator{}, readyCorpus(t, "hello"), 3, 200)

	ans, err := a.Answer("say hello")
	if err != nil {
		t.Fatal(err)
	}
	if len(ans.Sources) != 1 {
		t.Fatalf("expected 1 source, got %d", len(ans.Sources))
	}
	// The marker is appended even for content shorter than the cap.
	if ans.Sources[0].Content != "hello..." {
		t.Errorf("expected snippet %q, got %q", "hello...", ans.Sources[0].Content)
	}
	if ans.Sources[0].Page != "1" {
		t.Errorf("expected page %q, got %q", "1", ans.Sources[0].Page)
	}
}

func TestAnswerSourceSnippetTruncatesLongContent(t *testing.T) {
	long := strings.Repeat("z", 500)
	a := NewAnswerer(&fakeEmbedder{}, &fakeGenerator{}, readyCorpus(t, long), 3, 200)

	ans, err := a.Answer("what does it say?")
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Repeat("z", 200) + "..."
	if ans.Sources[0].Content != want {
		t.Errorf("expected 200-char snippet with marker, got %d chars", len(ans.Sources[0].Content))
	}
}

func TestAnswerCapsSourcesAtThree(t *testing.T) {
	a := NewAnswerer(&fakeEmbedder{}, &fakeGenerator{},
		readyCorpus(t, "one", "two", "three", "four", "five"), 5, 200)

	ans, err := a.Answer("how many?")
	if err != nil {
		t.Fatal(err)
	}
	if len(ans.Sources) != 3 {
		t.Errorf("expected at most 3 sources, got %d", len(ans.Sources))
	}
}

func TestAnswerUnknownPageSentinel(t *testing.T) {
	idx, err := index.Build([]index.Entry{
		{Vector: []float32{1, 1}, Chunk: domain.Chunk{Text: "orphan", Page: 0, Seq: 0}},
	})
	if err != nil {
		t.Fatal(err)
	}
	corpus := NewCorpus()
	corpus.Replace(idx, "doc.pdf", 0, 1)

	a := NewAnswerer(&fakeEmbedder{}, &fakeGenerator{}, corpus, 3, 200)
	ans, err := a.Answer("where is this from?")
	if err != nil {
		t.Fatal(err)
	}
	if ans.Sources[0].Page != "unknown" {
		t.Errorf("expected page sentinel %q, got %q", "unknown", ans.Sources[0].Page)
	}
}

func TestAnswerSurfacesUpstreamFailures(t *testing.T) {
	corpus := readyCorpus(t, "content")

	a := NewAnswerer(&fakeEmbedder{fail: true}, &fakeGenerator{}, corpus, 3, 200)
	if _, err := a.Answer("q"); domain.KindOf(err) != domain.KindUpstream {
		t.Errorf("expected upstream error from embedder, got %v", err)
	}

	a = NewAnswerer(&fakeEmbedder{}, &fakeGenerator{fail: true}, corpus, 3, 200)
	if _, err := a.Answer("q"); domain.KindOf(err) != domain.KindUpstream {
		t.Errorf("expected upstream error from generator, got %v", err)
	}
}

// Guard against the chunker and answerer disagreeing about snippet
// semantics when chunks come out of the real splitter.
func TestAnswerWithRealChunkerOutput(t *testing.T) {
	c, err := chunker.NewRecursiveChunker(50, 10)
	if err != nil {
		t.Fatal(err)
	}
	doc := domain.Document{
		Filename: "doc.pdf",
		Pages: []domain.Page{
			{Number: 1, Text: "A first sentence. A second sentence. A third one for good measure."},
		},
	}
	chunks := c.Chunk(doc)
	if len(chunks) == 0 {
		t.Fatal("expected chunks from the splitter")
	}
	entries := make([]index.Entry, len(chunks))
	for i, ch := range chunks {
		entries[i] = index.Entry{Vector: []float32{float32(len(ch.Text)), 1}, Chunk: ch}
	}
	idx, err := index.Build(entries)
	if err != nil {
		t.Fatal(err)
	}
	corpus := NewCorpus()
	corpus.Replace(idx, "doc.pdf", 1, len(chunks))

	a := NewAnswerer(&fakeEmbedder{}, &fakeGenerator{}, corpus, 3, 200)
	ans, err := a.Answer("what are the sentences?")
	if err != nil {
		t.Fatal(err)
	}
	for _, src := range ans.Sources {
		if !strings.HasSuffix(src.Content, "...") {
			t.Errorf("source %q missing ellipsis marker", src.Content)
		}
		if src.Page != "1" {
			t.Errorf("expected page 1, got %q", src.Page)
		}
	}
}
