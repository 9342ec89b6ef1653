package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/config"
	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/adapter/chunker"
	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/adapter/embedding"
	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/adapter/extractor"
	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/adapter/llm"
	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/port"
	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/usecase"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "pdfqa",
	Short: "PDF Q&A backend - upload a PDF and ask questions about it",
	Long: `pdfqa answers natural-language questions about an uploaded PDF using
retrieval-augmented generation: the document is split into overlapping
chunks, embedded into a vector index, and the nearest chunks are fed to
a language model to synthesize an answer.

Example usage:
  pdfqa serve                              # Start the HTTP API
  pdfqa ask report.pdf -q "key findings?"  # One-shot local Q&A`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "pdfqa.yaml", "config file")
}

// pipeline bundles the assembled components of the RAG pipeline.
type pipeline struct {
	corpus   *usecase.Corpus
	ingestor *usecase.Ingestor
	answerer *usecase.Answerer
}

// buildPipeline wires the adapters selected by the config into the use
// cases. Both serve and ask go through the same assembly.
func buildPipeline(cfg *config.Config) (*pipeline, error) {
	chk, err := chunker.NewRecursiveChunker(cfg.Chunker.ChunkSize, cfg.Chunker.ChunkOverlap)
	if err != nil {
		return nil, err
	}

	var emb port.Embedder
	switch cfg.Embedding.Provider {
	case "openai", "":
		emb, err = embedding.NewOpenAIEmbedder(embedding.Config{
			BaseURL:   cfg.Embedding.BaseURL,
			APIKeyEnv: cfg.Embedding.APIKeyEnv,
			Model:     cfg.Embedding.Model,
			Timeout:   time.Duration(cfg.Embedding.TimeoutSecs) * time.Second,
			BatchSize: cfg.Embedding.BatchSize,
		})
		if err != nil {
			return nil, err
		}
	case "mock":
		emb = embedding.NewMockEmbedder(cfg.Embedding.Dimension)
	default:
		return nil, fmt.Errorf("unknown embedding provider: %s", cfg.Embedding.Provider)
	}

	gen, err := llm.NewOpenAIGenerator(llm.Config{
		BaseURL:   cfg.LLM.BaseURL,
		APIKeyEnv: cfg.LLM.APIKeyEnv,
		Model:     cfg.LLM.Model,
		Timeout:   time.Duration(cfg.LLM.TimeoutSecs) * time.Second,
	})
	if err != nil {
		return nil, err
	}

	corpus := usecase.NewCorpus()
	ingestor := usecase.NewIngestor(extractor.NewPDFExtractor(), chk, emb, corpus)
	if cfg.Embedding.BatchSize > 0 {
		ingestor.BatchSize = cfg.Embedding.BatchSize
	}
	answerer := usecase.NewAnswerer(emb, gen, corpus, cfg.Retrieve.TopK, cfg.Retrieve.SnippetChars)

	return &pipeline{corpus: corpus, ingestor: ingestor, answerer: answerer}, nil
}
