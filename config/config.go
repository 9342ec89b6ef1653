package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udaykumar1307/pdf-qa-chatbot-rag-faiss/internal/domain"
)

// Config holds all configuration for the PDF Q&A backend.
type Config struct {
	Server    ServerConfig   `yaml:"server"`
	Chunker   ChunkerConfig  `yaml:"chunker"`
	Retrieve  RetrieveConfig `yaml:"retrieve"`
	Embedding ProviderConfig `yaml:"embedding"`
	LLM       ProviderConfig `yaml:"llm"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr         string   `yaml:"addr"`
	MaxUploadMiB int64    `yaml:"max_upload_mib"`
	CORSOrigins  []string `yaml:"cors_origins"` // empty = allow all
}

// ChunkerConfig configures how document text is split.
type ChunkerConfig struct {
	ChunkSize    int `yaml:"chunk_size"`
	ChunkOverlap int `yaml:"chunk_overlap"`
}

// RetrieveConfig holds retrieval configuration.
type RetrieveConfig struct {
	TopK         int `yaml:"top_k"`
	SnippetChars int `yaml:"snippet_chars"`
}

// ProviderConfig configures an OpenAI-compatible API client. Provider
// "mock" (embedding only) selects the deterministic offline embedder.
type ProviderConfig struct {
	Provider    string `yaml:"provider"`
	BaseURL     string `yaml:"base_url"`
	Model       string `yaml:"model"`
	APIKeyEnv   string `yaml:"api_key_env"`
	TimeoutSecs int    `yaml:"timeout_secs"`
	BatchSize   int    `yaml:"batch_size"`
	Dimension   int    `yaml:"dimension"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":5000",
			MaxUploadMiB: 16,
		},
		Chunker: ChunkerConfig{
			ChunkSize:    1000,
			ChunkOverlap: 200,
		},
		Retrieve: RetrieveConfig{
			TopK:         3,
			SnippetChars: 200,
		},
		Embedding: ProviderConfig{
			Provider:    "openai",
			BaseURL:     "https://api.openai.com/v1",
			Model:       "text-embedding-3-small",
			APIKeyEnv:   "OPENAI_API_KEY",
			TimeoutSecs: 60,
			BatchSize:   100,
			Dimension:   1536,
		},
		LLM: ProviderConfig{
			Provider:    "openai",
			BaseURL:     "https://api.openai.com/v1",
			Model:       "gpt-3.5-turbo",
			APIKeyEnv:   "OPENAI_API_KEY",
			TimeoutSecs: 120,
		},
	}
}

// Load loads configuration from a YAML file. A missing file returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects parameter combinations the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Chunker.ChunkSize <= 0 {
		return domain.Errorf(domain.KindConfiguration, "chunker.chunk_size must be positive, got %d", c.Chunker.ChunkSize)
	}
	if c.Chunker.ChunkOverlap < 0 || c.Chunker.ChunkOverlap >= c.Chunker.ChunkSize {
		return domain.Errorf(domain.KindConfiguration,
			"chunker.chunk_overlap must be in [0, %d), got %d", c.Chunker.ChunkSize, c.Chunker.ChunkOverlap)
	}
	if c.Retrieve.TopK <= 0 {
		return domain.Errorf(domain.KindConfiguration, "retrieve.top_k must be positive, got %d", c.Retrieve.TopK)
	}
	if c.Server.MaxUploadMiB <= 0 {
		return domain.Errorf(domain.KindConfiguration, "server.max_upload_mib must be positive, got %d", c.Server.MaxUploadMiB)
	}
	return nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
