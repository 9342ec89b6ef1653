package main

import (
	"github.com/joho/godotenv"

	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/cli"
)

func main() {
	// API keys commonly live in a .env next to the binary; missing files
	// are fine, the environment may already be set.
	_ = godotenv.Load()

	cli.Execute()
}
