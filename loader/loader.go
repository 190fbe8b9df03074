// Package loader acquires raw program text for analysis.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Type selects where program text comes from.
type Type string

const (
	TypeFile   Type = "file"   // first argument is a path to an assembly file
	TypeStdin  Type = "stdin"  // instructions are read from standard input
	TypeInline Type = "inline" // each argument is one instruction
)

// Loader yields the raw instruction lines of a program.
type Loader interface {
	Load(args []string) ([]string, error)
}

// New returns the loader for the given source type.
func New(typ Type) (Loader, error) {
	switch typ {
	case TypeFile:
		return &fileLoader{}, nil
	case TypeStdin:
		return &streamLoader{in: os.Stdin}, nil
	case TypeInline:
		return &inlineLoader{}, nil
	default:
		return nil, fmt.Errorf("program source not supported: %s", typ)
	}
}

type fileLoader struct{}

// Load reads the program at args[0], one instruction per line. Blank lines
// and comment lines are dropped.
func (l *fileLoader) Load(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, errors.New("no program file given")
	}
	fpath, err := filepath.Abs(args[0])
	if err != nil {
		return nil, fmt.Errorf("error resolving absolute filepath: %w", err)
	}

	codefile, err := os.Open(fpath)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer func() {
		_ = codefile.Close()
	}()
	return readLines(codefile)
}

type streamLoader struct {
	in io.Reader
}

func (l *streamLoader) Load(_ []string) ([]string, error) {
	return readLines(l.in)
}

type inlineLoader struct{}

// Load treats each argument as one instruction, kept as given so instruction
// indices match the argument positions.
func (l *inlineLoader) Load(args []string) ([]string, error) {
	return args, nil
}

func readLines(r io.Reader) ([]string, error) {
	lines := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if isSkippable(line) {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading program: %w", err)
	}
	return lines, nil
}

// isSkippable reports whether a scanned line carries no instruction.
func isSkippable(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//")
}
