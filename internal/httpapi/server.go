// Package httpapi exposes the retrieval pipeline over JSON HTTP:
// /health, /upload, /ask and /reset.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/usecase"
)

// DefaultMaxUploadBytes caps uploads at 16 MiB.
const DefaultMaxUploadBytes = 16 << 20

// Options tunes the HTTP surface.
type Options struct {
	// MaxUploadBytes caps the upload body size. Zero means the default.
	MaxUploadBytes int64
	// AllowOrigins restricts CORS. Empty means all origins are allowed.
	AllowOrigins []string
	Logger       *slog.Logger
}

type Server struct {
	router    *gin.Engine
	ingestor  *usecase.Ingestor
	answerer  *usecase.Answerer
	corpus    *usecase.Corpus
	maxUpload int64
	log       *slog.Logger
}

func New(ingestor *usecase.Ingestor, answerer *usecase.Answerer, corpus *usecase.Corpus, opts Options) *Server {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(opts.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = opts.AllowOrigins
	}
	router.Use(cors.New(corsCfg))

	s := &Server{
		router:    router,
		ingestor:  ingestor,
		answerer:  answerer,
		corpus:    corpus,
		maxUpload: opts.MaxUploadBytes,
		log:       opts.Logger,
	}

	router.GET("/health", s.handleHealth)
	router.POST("/upload", s.handleUpload)
	router.POST("/ask", s.handleAsk)
	router.POST("/reset", s.handleReset)

	return s
}

// Handler returns the router for mounting or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.Info("PDF Q&A backend listening", "addr", addr)
	return s.router.Run(addr)
}
