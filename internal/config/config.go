package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Hurricane2010/polygot-code-translator/internal/chunker"
)

// Config holds all configuration for the translator tool
type Config struct {
	Chunking ChunkingConfig `yaml:"chunking"`
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// ChunkingConfig holds the chunking size knobs
type ChunkingConfig struct {
	MaxLines        int `yaml:"max_lines"`         // structural split line budget
	ClusterMaxLines int `yaml:"cluster_max_lines"` // merged-cluster threshold
	MaxTokens       int `yaml:"max_tokens"`        // token budget per chunk
	CharsPerToken   int `yaml:"chars_per_token"`   // chars-per-token estimate
}

// PipelineConfig holds translation pipeline configuration
type PipelineConfig struct {
	Workers int    `yaml:"workers"` // concurrent chunk workers
	Target  string `yaml:"target"`  // default target language
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Chunking: ChunkingConfig{
			MaxLines:        chunker.DefaultMaxLines,
			ClusterMaxLines: chunker.DefaultClusterMaxLines,
			MaxTokens:       chunker.DefaultMaxTokens,
			CharsPerToken:   chunker.DefaultCharsPerToken,
		},
		Pipeline: PipelineConfig{
			Workers: 5,
			Target:  "java",
		},
	}
}

// Load reads a YAML config file, overlaying it onto the defaults.
// A missing path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// ChunkerConfig maps the chunking section onto the chunker's own config
func (c *Config) ChunkerConfig() chunker.Config {
	return chunker.Config{
		MaxLines:        c.Chunking.MaxLines,
		ClusterMaxLines: c.Chunking.ClusterMaxLines,
		MaxTokens:       c.Chunking.MaxTokens,
		CharsPerToken:   c.Chunking.CharsPerToken,
	}
}
