// Package asmparser defines the interfaces for turning raw assembly text
// into an analyzable instruction sequence.
package asmparser

// Parser holds interface for parsing assembly code
type Parser interface {
	// Parse reads a program from a file, one instruction per line.
	Parse(path string) (Program, error)

	// ParseLines builds a program from already-acquired instruction lines,
	// preserving their order so instruction indices match the input slice.
	ParseLines(lines []string) Program
}

// Instruction is a single instruction line together with its tokenized form.
type Instruction interface {
	// Text returns the raw instruction line as written.
	Text() string

	// Tokens returns the normalized token sequence. Token 0 is the mnemonic,
	// the rest are operands in source order. May be empty.
	Tokens() []string

	// Mnemonic returns token 0, or the empty string for an empty instruction.
	Mnemonic() string

	// Operand returns the token at the given 1-based position, reporting
	// whether the position is in range.
	Operand(index int) (string, bool)
}

// Program is an ordered, read-only instruction sequence.
type Program interface {
	Instructions() []Instruction
	Len() int
}
