package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Hurricane2010/polygot-code-translator/internal/chunker"
	"github.com/Hurricane2010/polygot-code-translator/internal/config"
	"github.com/Hurricane2010/polygot-code-translator/pkg/types"
)

// fileChunks is the JSON output shape for one chunked file
type fileChunks struct {
	File   string      `json:"file"`
	Chunks []chunkInfo `json:"chunks"`
}

type chunkInfo struct {
	Index      int    `json:"index"`
	Kind       string `json:"kind"`
	TokenCount int    `json:"token_count"`
	Content    string `json:"content"`
}

func newChunkCmd(cfg *config.Config) *cobra.Command {
	var jsonOut bool
	var maxLines, clusterMaxLines, maxTokens, charsPerToken int

	cmd := &cobra.Command{
		Use:   "chunk [file|glob|-]...",
		Short: "Partition Python files into translation chunks",
		Long: `Chunk one or more Python files. Arguments may be file paths,
doublestar globs such as 'src/**/*.py', or '-' for stdin.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expandPatterns(args)
			if err != nil {
				return err
			}

			ccfg := cfg.ChunkerConfig()
			if maxLines > 0 {
				ccfg.MaxLines = maxLines
			}
			if clusterMaxLines > 0 {
				ccfg.ClusterMaxLines = clusterMaxLines
			}
			if maxTokens > 0 {
				ccfg.MaxTokens = maxTokens
			}
			if charsPerToken > 0 {
				ccfg.CharsPerToken = charsPerToken
			}
			c := chunker.New(ccfg)

			var bar *progressbar.ProgressBar
			if !jsonOut && len(files) > 1 {
				bar = progressbar.Default(int64(len(files)), "chunking")
			}

			var output []fileChunks
			for _, file := range files {
				source, err := readSource(file)
				if err != nil {
					return err
				}

				chunks, err := c.ChunkSource(context.Background(), source)
				if err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}

				if jsonOut {
					output = append(output, toFileChunks(file, chunks))
				} else {
					printChunks(file, chunks)
				}
				if bar != nil {
					_ = bar.Add(1)
				}
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(output)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit JSON instead of annotated text")
	cmd.Flags().IntVar(&maxLines, "max-lines", 0, "structural split line budget (default 50)")
	cmd.Flags().IntVar(&clusterMaxLines, "cluster-max-lines", 0, "cluster fallback threshold (default 100)")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "token budget per chunk (default 4000)")
	cmd.Flags().IntVar(&charsPerToken, "chars-per-token", 0, "chars-per-token estimate (default 4)")

	return cmd
}

// expandPatterns resolves arguments to a deterministic file list.
// Non-matching patterns pass through as literal paths so missing files
// fail with a readable error later.
func expandPatterns(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, arg := range args {
		if arg == "-" {
			if !seen[arg] {
				seen[arg] = true
				files = append(files, arg)
			}
			continue
		}

		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			matches = []string{arg}
		}
		sort.Strings(matches)

		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	return files, nil
}

func toFileChunks(file string, chunks []*types.Chunk) fileChunks {
	fc := fileChunks{File: file, Chunks: make([]chunkInfo, len(chunks))}
	for i, chunk := range chunks {
		fc.Chunks[i] = chunkInfo{
			Index:      chunk.Index,
			Kind:       string(chunk.Kind),
			TokenCount: chunk.TokenCount,
			Content:    chunk.Content,
		}
	}
	return fc
}

func printChunks(file string, chunks []*types.Chunk) {
	for _, chunk := range chunks {
		fmt.Printf("== %s chunk %d/%d (%s, ~%d tokens) ==\n",
			file, chunk.Index+1, len(chunks), chunk.Kind, chunk.TokenCount)
		fmt.Println(chunk.Content)
		fmt.Println()
	}
}
