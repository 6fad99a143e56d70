package main

import (
	"log"
	"os"
)

func main() {
	// Log to stderr; stdout carries command output and MCP protocol traffic
	log.SetOutput(os.Stderr)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
