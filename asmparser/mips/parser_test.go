package mips

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := map[string]struct {
		line     string
		expected []string
	}{
		"three operand": {
			line:     "ADD R1, R2, R3",
			expected: []string{"ADD", "R1", "R2", "R3"},
		},
		"offset base memory operand": {
			line:     "LD R1, 0(R2)",
			expected: []string{"LD", "R1", "0", "R2"},
		},
		"trailing semicolon": {
			line:     "SUB R4, R1, R5;",
			expected: []string{"SUB", "R4", "R1", "R5"},
		},
		"irregular whitespace": {
			line:     "  ADDI   R1 ,R2,   10  ",
			expected: []string{"ADDI", "R1", "R2", "10"},
		},
		"single token is kept as written": {
			line:     "R1",
			expected: []string{"R1"},
		},
		"empty line": {
			line:     "",
			expected: []string{},
		},
		"separators only": {
			line:     " ,;() ",
			expected: []string{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tokenize(tc.line))
		})
	}
}

func TestParseLines(t *testing.T) {
	lines := []string{
		"ADD R1, R2, R3",
		"",
		"SD R4, 8(R5)",
	}

	program := NewParser().ParseLines(lines)
	require.Equal(t, 3, program.Len())

	instrs := program.Instructions()
	assert.Equal(t, "ADD R1, R2, R3", instrs[0].Text())
	assert.Equal(t, "ADD", instrs[0].Mnemonic())
	assert.Equal(t, []string{"ADD", "R1", "R2", "R3"}, instrs[0].Tokens())

	// Blank lines are kept so indices match the input slice.
	assert.Equal(t, "", instrs[1].Mnemonic())
	assert.Empty(t, instrs[1].Tokens())

	assert.Equal(t, []string{"SD", "R4", "8", "R5"}, instrs[2].Tokens())
}

func TestInstructionOperand(t *testing.T) {
	program := NewParser().ParseLines([]string{"ADD R1, R2, R3"})
	instr := program.Instructions()[0]

	reg, ok := instr.Operand(1)
	assert.True(t, ok)
	assert.Equal(t, "R1", reg)

	reg, ok = instr.Operand(3)
	assert.True(t, ok)
	assert.Equal(t, "R3", reg)

	// Position 0 is the mnemonic, never an operand.
	_, ok = instr.Operand(0)
	assert.False(t, ok)

	_, ok = instr.Operand(4)
	assert.False(t, ok)

	_, ok = instr.Operand(-1)
	assert.False(t, ok)
}

func TestParseFile(t *testing.T) {
	tempFile, err := os.CreateTemp("", "sample.asm")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tempFile.Name())

	content := `# register shuffle
ADD R1, R2, R3

// comment styles are both skipped
SUB R4, R1, R5
SD R4, 0(R6)
`
	if _, err := tempFile.WriteString(content); err != nil {
		t.Fatal(err)
	}
	tempFile.Close()

	program, err := NewParser().Parse(tempFile.Name())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	require.Equal(t, 3, program.Len())

	instrs := program.Instructions()
	assert.Equal(t, "ADD", instrs[0].Mnemonic())
	assert.Equal(t, "SUB", instrs[1].Mnemonic())
	assert.Equal(t, "SD", instrs[2].Mnemonic())
}

func TestParseMissingFile(t *testing.T) {
	_, err := NewParser().Parse("does-not-exist.asm")
	assert.Error(t, err)
}
