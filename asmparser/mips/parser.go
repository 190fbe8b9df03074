// Package mips provides the implementation of the asmparser interfaces for
// MIPS-style textual assembly.
package mips

import (
	"strings"

	"github.com/asmlab/hazardscan/asmparser"
	"github.com/asmlab/hazardscan/loader"
)

// Characters that separate operands in MIPS-style syntax, including the
// parentheses of offset(base) memory operands. Each is treated as whitespace.
const delimiters = ",;()"

// parserImpl implements the asmparser.Parser interface.
type parserImpl struct{}

// NewParser returns a new instance of a MIPS-style assembly parser.
func NewParser() asmparser.Parser {
	return &parserImpl{}
}

// Parse reads and parses an assembly file into a Program. Blank lines and
// comment lines are skipped, so instruction indices count instructions only.
func (p *parserImpl) Parse(path string) (asmparser.Program, error) {
	src, err := loader.New(loader.TypeFile)
	if err != nil {
		return nil, err
	}
	lines, err := src.Load([]string{path})
	if err != nil {
		return nil, err
	}
	return p.ParseLines(lines), nil
}

// ParseLines builds a program from the given instruction lines. Every line
// is kept, including blank ones, so indices match the caller's slice.
func (p *parserImpl) ParseLines(lines []string) asmparser.Program {
	prog := &program{instructions: make([]*instruction, 0, len(lines))}
	for _, line := range lines {
		prog.instructions = append(prog.instructions, &instruction{
			text:   line,
			tokens: tokenize(line),
		})
	}
	return prog
}

// tokenize normalizes one raw instruction line into its token sequence:
// delimiters become spaces, the result is split on runs of whitespace and
// empty tokens are dropped. Tokenization never fails.
func tokenize(line string) []string {
	normalized := strings.Map(func(r rune) rune {
		if strings.ContainsRune(delimiters, r) {
			return ' '
		}
		return r
	}, line)
	return strings.Fields(normalized)
}

// instruction represents one parsed line implementing asmparser.Instruction.
type instruction struct {
	text   string
	tokens []string
}

func (i *instruction) Text() string {
	return i.text
}

func (i *instruction) Tokens() []string {
	return i.tokens
}

func (i *instruction) Mnemonic() string {
	if len(i.tokens) == 0 {
		return ""
	}
	return i.tokens[0]
}

// Operand returns the token at the given 1-based position. Position 0 is the
// mnemonic and is never a valid operand.
func (i *instruction) Operand(index int) (string, bool) {
	if index <= 0 || index >= len(i.tokens) {
		return "", false
	}
	return i.tokens[index], true
}

// program represents an ordered instruction sequence implementing the
// asmparser.Program interface.
type program struct {
	instructions []*instruction
}

func (p *program) Instructions() []asmparser.Instruction {
	instrs := make([]asmparser.Instruction, len(p.instructions))
	for i, ins := range p.instructions {
		instrs[i] = ins
	}
	return instrs
}

func (p *program) Len() int {
	return len(p.instructions)
}
