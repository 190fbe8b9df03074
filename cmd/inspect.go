package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/asmlab/hazardscan/analyzer/hazard"
	"github.com/urfave/cli/v2"
)

func CreateInspectCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "inspect",
		Usage:       "Shows the tokenized form and operand roles of each instruction",
		Description: "Shows how each instruction tokenizes and which registers it reads and writes",
		Action:      action,
		Flags: []cli.Flag{
			ISAProfileFlag,
			SourceTypeFlag,
		},
	}
}

var InspectCommand = CreateInspectCommand(InspectProgram)

func InspectProgram(ctx *cli.Context) error {
	prof, err := loadProfile(ctx)
	if err != nil {
		return err
	}

	program, err := loadProgram(ctx)
	if err != nil {
		return err
	}

	var out strings.Builder
	for i, instr := range program.Instructions() {
		out.WriteString(fmt.Sprintf("%d: %s\n", i, instr.Text()))
		out.WriteString(fmt.Sprintf("\ttokens: %s\n", strings.Join(instr.Tokens(), " ")))
		if _, ok := prof.Lookup(instr.Mnemonic()); !ok {
			out.WriteString("\tunknown mnemonic: no modeled operands\n")
			continue
		}
		if dest, ok := hazard.Destination(prof, instr); ok {
			out.WriteString(fmt.Sprintf("\twrites: %s\n", dest))
		} else {
			out.WriteString("\twrites: none\n")
		}
		sources := hazard.Sources(prof, instr)
		if len(sources) == 0 {
			out.WriteString("\treads: none\n")
		} else {
			out.WriteString(fmt.Sprintf("\treads: %s\n", strings.Join(sources, " ")))
		}
	}
	_, err = os.Stdout.WriteString(out.String())
	return err
}
