package embedding

// MockEmbedder produces deterministic vectors from rune values. Useful in
// tests and offline runs where no embedding provider is available.
type MockEmbedder struct {
	dimension int
}

func NewMockEmbedder(dimension int) *MockEmbedder {
	if dimension <= 0 {
		dimension = 1536
	}
	return &MockEmbedder{dimension: dimension}
}

func (e *MockEmbedder) Embed(texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = e.vector(texts[i])
	}
	return vectors, nil
}

func (e *MockEmbedder) EmbedQuery(text string) ([]float32, error) {
	return e.vector(text), nil
}

func (e *MockEmbedder) vector(text string) []float32 {
	v := make([]float32, e.dimension)
	for j, r := range text {
		if j >= e.dimension {
			break
		}
		v[j] = float32(r) / 1000.0
	}
	return v
}

func (e *MockEmbedder) ModelName() string {
	return "mock"
}
