package main

import (
	"context"
	"os"

	"github.com/asmlab/hazardscan/cmd"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = os.Args[0]
	app.Usage = "Assembly Data-Hazard Analyzer"
	app.Description = "Detects RAW, WAR and WAW data hazards in assembly instruction sequences"
	app.Commands = []*cli.Command{
		cmd.AnalyzeCommand,
		cmd.InspectCommand,
	}
	err := app.RunContext(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
