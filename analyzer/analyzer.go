// Package analyzer provides the interface and record types for data-hazard
// analysis over an instruction sequence.
package analyzer

// HazardKind identifies the dependency class of a detected hazard.
type HazardKind string

const (
	HazardRAW HazardKind = "RAW" // read after write
	HazardWAR HazardKind = "WAR" // write after read
	HazardWAW HazardKind = "WAW" // write after write
)

// Kinds returns the hazard kinds in canonical analysis order.
func Kinds() []HazardKind {
	return []HazardKind{HazardRAW, HazardWAR, HazardWAW}
}

// Hazard is a single detected dependency between two instructions.
// Earlier is always strictly less than Later; detection is forward-only in
// program order.
type Hazard struct {
	Kind     HazardKind `json:"kind"`
	Earlier  int        `json:"earlier"`  // index of the earlier instruction
	Later    int        `json:"later"`    // index of the later instruction
	Register string     `json:"register"` // register name in contention
}

// Report is the result of one detection pass over a program.
type Report struct {
	Kind         HazardKind `json:"kind"`
	Instructions []string   `json:"instructions"` // raw text, by index
	Hazards      []*Hazard  `json:"hazards"`
}

// Analyzer represents the interface for a hazard analyzer. Detection passes
// are read-only and may be invoked any number of times, in any order.
type Analyzer interface {
	// Analyze runs one detection pass and returns its report.
	Analyze(kind HazardKind) (*Report, error)

	// AnalyzeAll runs every detection pass in canonical order.
	AnalyzeAll() ([]*Report, error)

	// UnknownMnemonics returns the distinct mnemonics the operand profile
	// does not model, in first-appearance order. Such instructions take no
	// part in detection.
	UnknownMnemonics() []string
}
