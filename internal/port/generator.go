package port

// Generator produces a natural-language answer from retrieved context and
// a question.
type Generator interface {
	// Generate answers the question using only the supplied context block.
	Generate(contextBlock, question string) (string, error)

	// ModelName returns the name of the generation model.
	ModelName() string
}
