// Package hazard implements analyzer.Analyzer for detecting RAW, WAR and
// WAW data hazards between instruction pairs.
package hazard

import (
	"fmt"
	"strings"

	"github.com/asmlab/hazardscan/analyzer"
	"github.com/asmlab/hazardscan/asmparser"
	"github.com/asmlab/hazardscan/profile"
)

type hazardAnalyzer struct {
	profile      *profile.ISAProfile
	instructions []asmparser.Instruction
	texts        []string
}

// NewAnalyzer builds an analyzer over a parsed program. The program is read
// once here and treated as immutable; detection passes share no mutable
// state and are safe to run concurrently.
func NewAnalyzer(prof *profile.ISAProfile, program asmparser.Program) analyzer.Analyzer {
	instructions := program.Instructions()
	texts := make([]string, len(instructions))
	for i, instr := range instructions {
		texts[i] = instr.Text()
	}
	return &hazardAnalyzer{
		profile:      prof,
		instructions: instructions,
		texts:        texts,
	}
}

// Analyze runs one detection pass. The three kinds differ only in which
// register sets of the earlier and later instruction are compared.
func (a *hazardAnalyzer) Analyze(kind analyzer.HazardKind) (*analyzer.Report, error) {
	var hazards []*analyzer.Hazard
	switch kind {
	case analyzer.HazardRAW:
		hazards = a.scanPairs(kind, a.destinationOf, a.sourcesOf)
	case analyzer.HazardWAR:
		hazards = a.scanPairs(kind, a.sourcesOf, a.destinationOf)
	case analyzer.HazardWAW:
		hazards = a.scanPairs(kind, a.destinationOf, a.destinationOf)
	default:
		return nil, fmt.Errorf("unsupported hazard kind: %s", kind)
	}
	return &analyzer.Report{Kind: kind, Instructions: a.texts, Hazards: hazards}, nil
}

// AnalyzeAll runs the RAW, WAR and WAW passes in order.
func (a *hazardAnalyzer) AnalyzeAll() ([]*analyzer.Report, error) {
	kinds := analyzer.Kinds()
	reports := make([]*analyzer.Report, 0, len(kinds))
	for _, kind := range kinds {
		report, err := a.Analyze(kind)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// UnknownMnemonics returns the distinct unmodeled mnemonics in
// first-appearance order.
func (a *hazardAnalyzer) UnknownMnemonics() []string {
	seen := make(map[string]bool)
	unknown := make([]string, 0)
	for _, instr := range a.instructions {
		mnemonic := instr.Mnemonic()
		if mnemonic == "" {
			continue
		}
		if _, ok := a.profile.Lookup(mnemonic); ok {
			continue
		}
		key := strings.ToUpper(mnemonic)
		if seen[key] {
			continue
		}
		seen[key] = true
		unknown = append(unknown, mnemonic)
	}
	return unknown
}

// registersFunc extracts the register names an instruction contributes to
// one side of a pairwise comparison.
type registersFunc func(index int) []string

// scanPairs is the shared forward pairwise scan: for every earlier
// instruction i and every later instruction j, emit one hazard per matching
// (earlier register, later register) slot pair. Registers compare as exact
// raw-token text; mnemonic case never enters the comparison.
func (a *hazardAnalyzer) scanPairs(kind analyzer.HazardKind, earlier, later registersFunc) []*analyzer.Hazard {
	hazards := make([]*analyzer.Hazard, 0)
	for i := range a.instructions {
		earlierRegs := earlier(i)
		if len(earlierRegs) == 0 {
			continue
		}
		for j := i + 1; j < len(a.instructions); j++ {
			laterRegs := later(j)
			if len(laterRegs) == 0 {
				continue
			}
			for _, earlierReg := range earlierRegs {
				for _, laterReg := range laterRegs {
					if earlierReg == laterReg {
						hazards = append(hazards, &analyzer.Hazard{
							Kind:     kind,
							Earlier:  i,
							Later:    j,
							Register: earlierReg,
						})
					}
				}
			}
		}
	}
	return hazards
}

// destinationOf returns the register the instruction at index writes, as a
// zero- or one-element list.
func (a *hazardAnalyzer) destinationOf(index int) []string {
	reg, ok := Destination(a.profile, a.instructions[index])
	if !ok {
		return nil
	}
	return []string{reg}
}

// sourcesOf returns the registers the instruction at index reads.
func (a *hazardAnalyzer) sourcesOf(index int) []string {
	return Sources(a.profile, a.instructions[index])
}

// Destination resolves the register an instruction writes under the given
// profile. Unknown mnemonics, write-free instructions and out-of-range
// destination positions all resolve to no destination.
func Destination(prof *profile.ISAProfile, instr asmparser.Instruction) (string, bool) {
	spec, ok := prof.Lookup(instr.Mnemonic())
	if !ok || spec.Destination <= 0 {
		return "", false
	}
	return instr.Operand(spec.Destination)
}

// Sources resolves the registers an instruction reads under the given
// profile, in the order the profile declares them. Out-of-range positions
// are omitted; unknown mnemonics read nothing.
func Sources(prof *profile.ISAProfile, instr asmparser.Instruction) []string {
	spec, ok := prof.Lookup(instr.Mnemonic())
	if !ok {
		return nil
	}
	sources := make([]string, 0, len(spec.Sources))
	for _, index := range spec.Sources {
		if reg, ok := instr.Operand(index); ok {
			sources = append(sources, reg)
		}
	}
	return sources
}
