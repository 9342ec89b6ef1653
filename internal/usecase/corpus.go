package usecase

import (
	"sync"

	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/domain"
	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/port"
)

// Corpus owns the lifecycle of the one resident index. It starts empty,
// becomes ready only after a full successful build, and goes back to
// empty on reset. A failed build never touches the previous state.
//
// The mutex guards only the state transition; built indexes are immutable,
// so readers capture the reference and search without holding the lock.
type Corpus struct {
	mu       sync.Mutex
	index    port.VectorIndex
	filename string
	pages    int
	chunks   int
}

func NewCorpus() *Corpus {
	return &Corpus{}
}

// Ready reports whether a corpus is resident.
func (c *Corpus) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index != nil
}

// Replace atomically publishes a freshly built index, discarding any prior
// one.
func (c *Corpus) Replace(idx port.VectorIndex, filename string, pages, chunks int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = idx
	c.filename = filename
	c.pages = pages
	c.chunks = chunks
}

// Reset unconditionally returns the corpus to the empty state.
func (c *Corpus) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = nil
	c.filename = ""
	c.pages = 0
	c.chunks = 0
}

// Index returns the current index reference, or a not-ready error when no
// corpus has been built.
func (c *Corpus) Index() (port.VectorIndex, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index == nil {
		return nil, domain.Errorf(domain.KindNotReady, "no document has been uploaded yet")
	}
	return c.index, nil
}

// Filename returns the name of the resident document, if any.
func (c *Corpus) Filename() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filename
}
