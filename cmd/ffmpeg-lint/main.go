// Command ffmpeg-lint analyzes an FFmpeg command line read from stdin (or
// passed as arguments) and prints its diagnostics as JSON. Thin wiring only,
// grounded on the teacher's cmd/api/main.go shape: construct dependencies,
// no logic in main.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/chicogong/ffmpeg-lint/pkg/kb"
	"github.com/chicogong/ffmpeg-lint/pkg/service"
)

var (
	kbFile       = flag.String("kb-file", "", "optional YAML knowledge-base override file")
	lineOffset   = flag.Int("line-offset", 1, "1-based absolute line of the command's first line")
	columnOffset = flag.Int("column-offset", 0, "0-based column offset applied to the command's first line")
)

func main() {
	flag.Parse()

	registry := kb.Default()
	if *kbFile != "" {
		registry = kb.NewRegistry()
		log.Printf("loading knowledge-base overrides from %s", *kbFile)
		if err := service.LoadKnowledgeBaseFile(registry, *kbFile); err != nil {
			log.Fatalf("failed to load knowledge-base file: %v", err)
		}
	}

	svc := service.New(service.WithRegistry(registry))
	handle := service.Chain(svc.Handle, service.RecoveryMiddleware, service.LoggingMiddleware)

	command, err := readCommand()
	if err != nil {
		log.Fatalf("failed to read command: %v", err)
	}

	resp := handle(service.Request{
		Command:      command,
		LineOffset:   *lineOffset,
		ColumnOffset: *columnOffset,
	})

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		log.Fatalf("failed to encode response: %v", err)
	}
}

// readCommand takes the command line from the remaining CLI arguments if
// any were given, falling back to reading all of stdin.
func readCommand() (string, error) {
	if args := flag.Args(); len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(raw), nil
}
