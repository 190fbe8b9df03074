// Package profile defines the ISA operand profile consumed by the hazard
// analyzer: which token position an instruction writes and which it reads.
package profile

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultProfile []byte

// OperandSpec describes where an instruction's register operands live in its
// token sequence. Positions are 1-based; token 0 is the mnemonic. A
// Destination of 0 means the instruction writes no register.
type OperandSpec struct {
	Destination int
	Sources     []int
}

// InstructionSpec is the YAML form of one operand table entry.
type InstructionSpec struct {
	Mnemonic    string `yaml:"mnemonic"`
	Destination int    `yaml:"destination"`
	Sources     []int  `yaml:"sources"`
}

// ISAProfile represents the operand configuration for a specific ISA.
// It is immutable after load.
type ISAProfile struct {
	ISA          string            `yaml:"isa"`
	Description  string            `yaml:"description"`
	Instructions []InstructionSpec `yaml:"instructions"`

	operands map[string]OperandSpec // keyed by upper-cased mnemonic
}

// Default returns the built-in operand profile.
func Default() *ISAProfile {
	prof, err := parse(defaultProfile)
	if err != nil {
		panic(fmt.Sprintf("invalid embedded profile: %v", err))
	}
	return prof
}

// LoadProfile loads an ISA profile from a YAML file.
func LoadProfile(filename string) (*ISAProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	prof, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return prof, nil
}

func parse(data []byte) (*ISAProfile, error) {
	var prof ISAProfile
	if err := yaml.Unmarshal(data, &prof); err != nil {
		return nil, err
	}
	prof.operands = make(map[string]OperandSpec, len(prof.Instructions))
	for _, instr := range prof.Instructions {
		if instr.Mnemonic == "" {
			return nil, fmt.Errorf("profile entry without mnemonic")
		}
		prof.operands[strings.ToUpper(instr.Mnemonic)] = OperandSpec{
			Destination: instr.Destination,
			Sources:     instr.Sources,
		}
	}
	return &prof, nil
}

// Lookup resolves a mnemonic to its operand shape. Matching is
// case-insensitive. The returned spec is a copy; mutating it does not affect
// the profile.
func (p *ISAProfile) Lookup(mnemonic string) (OperandSpec, bool) {
	spec, ok := p.operands[strings.ToUpper(mnemonic)]
	if !ok {
		return OperandSpec{}, false
	}
	return OperandSpec{
		Destination: spec.Destination,
		Sources:     append([]int(nil), spec.Sources...),
	}, true
}

// Mnemonics returns the known mnemonics in sorted order.
func (p *ISAProfile) Mnemonics() []string {
	mnemonics := make([]string, 0, len(p.operands))
	for mnemonic := range p.operands {
		mnemonics = append(mnemonics, mnemonic)
	}
	sort.Strings(mnemonics)
	return mnemonics
}
