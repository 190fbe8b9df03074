// Package cmd defines all the commands for the cli
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/asmlab/hazardscan/analyzer"
	"github.com/asmlab/hazardscan/analyzer/hazard"
	"github.com/asmlab/hazardscan/asmparser"
	"github.com/asmlab/hazardscan/asmparser/mips"
	"github.com/asmlab/hazardscan/loader"
	"github.com/asmlab/hazardscan/profile"
	"github.com/asmlab/hazardscan/renderer"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	ISAProfileFlag = &cli.PathFlag{
		Name:     "isa-profile",
		Usage:    "Path to an ISA operand profile file. Default: built-in table",
		Required: false,
	}
	HazardTypeFlag = &cli.StringFlag{
		Name:     "hazard-type",
		Usage:    "Type of hazard to detect. Options: raw, war, waw. Default: all three",
		Required: false,
	}
	FormatFlag = &cli.StringFlag{
		Name:     "format",
		Usage:    "format of the output. Options: json, text",
		Required: false,
		Value:    "text",
	}
	ReportOutputPathFlag = &cli.PathFlag{
		Name:     "report-output-path",
		Usage:    "output file path for report. Default: stdout",
		Required: false,
	}
	SourceTypeFlag = &cli.StringFlag{
		Name:     "source-type",
		Usage:    "Where the program comes from. Options: file, stdin, inline",
		Required: false,
		Value:    "file",
	}
	VerboseFlag = &cli.BoolFlag{
		Name:     "verbose",
		Usage:    "enable debug logging",
		Required: false,
		Value:    false,
	}
)

func CreateAnalyzeCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "analyze",
		Usage:       "Detects data hazards between instruction pairs of a program",
		Description: "Detects RAW, WAR and WAW data hazards between instruction pairs of a program",
		Action:      action,
		Flags: []cli.Flag{
			ISAProfileFlag,
			HazardTypeFlag,
			FormatFlag,
			ReportOutputPathFlag,
			SourceTypeFlag,
			VerboseFlag,
		},
	}
}

var AnalyzeCommand = CreateAnalyzeCommand(AnalyzeHazards)

func AnalyzeHazards(ctx *cli.Context) error {
	if ctx.Bool(VerboseFlag.Name) {
		log.SetLevel(log.DebugLevel)
	}

	prof, err := loadProfile(ctx)
	if err != nil {
		return err
	}

	program, err := loadProgram(ctx)
	if err != nil {
		return err
	}
	log.Debugf("loaded %d instructions", program.Len())

	hazardAnalyzer := hazard.NewAnalyzer(prof, program)
	for _, mnemonic := range hazardAnalyzer.UnknownMnemonics() {
		log.Warnf("unknown mnemonic %q: treated as reading and writing no registers", mnemonic)
	}

	reports, err := runAnalyses(hazardAnalyzer, ctx.String(HazardTypeFlag.Name))
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	format := ctx.String(FormatFlag.Name)
	reportOutputPath := ctx.Path(ReportOutputPathFlag.Name)
	if err := writeReport(reports, format, reportOutputPath); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}
	return nil
}

// loadProfile selects the operand profile: the built-in table unless an
// override file is given.
func loadProfile(ctx *cli.Context) (*profile.ISAProfile, error) {
	path := ctx.Path(ISAProfileFlag.Name)
	if path == "" {
		return profile.Default(), nil
	}
	prof, err := profile.LoadProfile(path)
	if err != nil {
		return nil, fmt.Errorf("error loading profile: %w", err)
	}
	return prof, nil
}

// loadProgram acquires the raw instruction lines per the selected source
// type and parses them into a program.
func loadProgram(ctx *cli.Context) (asmparser.Program, error) {
	src, err := loader.New(loader.Type(ctx.String(SourceTypeFlag.Name)))
	if err != nil {
		return nil, err
	}
	lines, err := src.Load(ctx.Args().Slice())
	if err != nil {
		return nil, fmt.Errorf("error loading program: %w", err)
	}
	return mips.NewParser().ParseLines(lines), nil
}

// runAnalyses runs the selected detection pass, or all of them.
func runAnalyses(a analyzer.Analyzer, hazardType string) ([]*analyzer.Report, error) {
	var kind analyzer.HazardKind
	switch strings.ToLower(hazardType) {
	case "":
		return a.AnalyzeAll()
	case "raw":
		kind = analyzer.HazardRAW
	case "war":
		kind = analyzer.HazardWAR
	case "waw":
		kind = analyzer.HazardWAW
	default:
		return nil, fmt.Errorf("invalid hazard type: %s", hazardType)
	}
	report, err := a.Analyze(kind)
	if err != nil {
		return nil, err
	}
	return []*analyzer.Report{report}, nil
}

// writeReport outputs the results in the specified format.
func writeReport(reports []*analyzer.Report, format, outputPath string) error {
	var output *os.File
	if outputPath == "" {
		output = os.Stdout
	} else {
		absPath, err := filepath.Abs(outputPath)
		if err != nil {
			return fmt.Errorf("unable to determine absolute path: %w", err)
		}
		output, err = os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("unable to open output file: %w", err)
		}
		defer func() {
			_ = output.Close()
		}()
	}

	var rendererInstance renderer.Renderer
	switch format {
	case "text":
		rendererInstance = renderer.NewTextRenderer()
	case "json":
		rendererInstance = renderer.NewJSONRenderer()
	default:
		return fmt.Errorf("invalid format: %s", format)
	}

	return rendererInstance.Render(reports, output)
}
