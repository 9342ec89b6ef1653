package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/httpapi"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the PDF Q&A HTTP API",
	Long: `Start the HTTP API exposing /health, /upload, /ask and /reset.

Examples:
  pdfqa serve                 # Listen on the configured address
  pdfqa serve --addr :8080    # Override the listen address`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	p, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	logger.Info("starting PDF Q&A backend",
		"addr", addr,
		"embedding_model", cfg.Embedding.Model,
		"llm_model", cfg.LLM.Model,
		"api_key_configured", os.Getenv(cfg.Embedding.APIKeyEnv) != "",
	)

	server := httpapi.New(p.ingestor, p.answerer, p.corpus, httpapi.Options{
		MaxUploadBytes: cfg.Server.MaxUploadMiB << 20,
		AllowOrigins:   cfg.Server.CORSOrigins,
		Logger:         logger,
	})
	return server.Run(addr)
}
