package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Hurricane2010/polygot-code-translator/internal/callgraph"
	"github.com/Hurricane2010/polygot-code-translator/internal/parser"
)

func newGraphCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "graph [file|-]",
		Short: "Show the call graph and clusters of a Python module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				return err
			}

			res, err := parser.New().Parse(context.Background(), source)
			if err != nil {
				return err
			}
			graph := callgraph.Build(res)

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]interface{}{
					"nodes":    graph.Nodes(),
					"edges":    graph.Edges(),
					"clusters": graph.Components(),
				})
			}

			fmt.Println("nodes:")
			for _, node := range graph.Nodes() {
				fmt.Printf("  %s\n", node)
			}

			fmt.Println("edges:")
			for _, edge := range graph.Edges() {
				fmt.Printf("  %s -> %s\n", edge.Caller, edge.Callee)
			}

			fmt.Println("clusters:")
			for _, cluster := range graph.Components() {
				fmt.Printf("  {%s}\n", strings.Join(cluster, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit JSON instead of text")

	return cmd
}
