package httpapi

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/domain"
)

type askRequest struct {
	Question string `json:"question"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":             "healthy",
		"message":            "PDF Q&A Chatbot API is running",
		"vectorstore_loaded": s.corpus.Ready(),
	})
}

func (s *Server) handleUpload(c *gin.Context) {
	if c.Request.ContentLength > s.maxUpload {
		s.writeError(c, domain.Errorf(domain.KindPayloadTooLarge,
			"file too large, maximum size is %d MiB", s.maxUpload>>20))
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUpload)

	file, err := c.FormFile("file")
	if err != nil {
		if isBodyTooLarge(err) {
			s.writeError(c, domain.Errorf(domain.KindPayloadTooLarge,
				"file too large, maximum size is %d MiB", s.maxUpload>>20))
			return
		}
		s.writeError(c, domain.Errorf(domain.KindValidation, "no file provided"))
		return
	}
	if file.Filename == "" {
		s.writeError(c, domain.Errorf(domain.KindValidation, "no file selected"))
		return
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		s.writeError(c, domain.Errorf(domain.KindValidation, "only PDF files are allowed"))
		return
	}

	// The PDF reader wants a file path, so spool the upload to a temp
	// file that is removed once the build finishes.
	tmp, err := os.CreateTemp("", "upload-*.pdf")
	if err != nil {
		s.writeError(c, err)
		return
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		s.writeError(c, err)
		return
	}

	res, err := s.ingestor.Ingest(tmpPath, file.Filename)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.log.Info("document indexed", "filename", res.Filename, "pages", res.Pages, "chunks", res.Chunks)
	c.JSON(http.StatusOK, gin.H{
		"message":  "PDF processed successfully",
		"filename": res.Filename,
		"chunks":   res.Chunks,
		"pages":    res.Pages,
	})
}

func (s *Server) handleAsk(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, domain.Errorf(domain.KindValidation, "no question provided"))
		return
	}

	answer, err := s.answerer.Answer(req.Question)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"answer":   answer.Text,
		"sources":  answer.Sources,
		"question": req.Question,
	})
}

func (s *Server) handleReset(c *gin.Context) {
	s.corpus.Reset()
	s.log.Info("corpus reset")
	c.JSON(http.StatusOK, gin.H{"message": "System reset successfully"})
}

// writeError maps the error taxonomy onto HTTP statuses and always emits
// the {"error": message} envelope with the message surfaced verbatim.
func (s *Server) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch domain.KindOf(err) {
	case domain.KindValidation, domain.KindNotReady:
		status = http.StatusBadRequest
	case domain.KindPayloadTooLarge:
		status = http.StatusRequestEntityTooLarge
	}
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", "error", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}
