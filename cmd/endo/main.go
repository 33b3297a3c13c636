/*
endo runs the DNA->RNA rewrite engine over a DNA file (optionally
prefixed by a second file) and streams the resulting RNA to stdout.

Initial arg parsing and app definition is done through
"github.com/urfave/cli/v2":

https://github.com/urfave/cli/blob/master/docs/v2/manual.md
*/
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	run(os.Args)
}

// run is separated from main for testing's sake.
func run(args []string) {
	app := application()
	if err := app.Run(args); err != nil {
		log.Fatal(err)
	}
}

// application defines the endo command line app.
func application() *cli.App {
	return &cli.App{
		Name:  "endo",
		Usage: "Execute the Endo DNA rewrite engine and stream its RNA.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "prefix",
				Usage: "Optional file whose bases are inserted before the DNA at position 0.",
			},
			&cli.BoolFlag{
				Name:  "source",
				Usage: "Track source provenance and record coverage (slower, larger bases).",
			},
			&cli.StringFlag{
				Name:  "coverage-out",
				Usage: "Write a coverage report to this path (requires --source).",
			},
			&cli.BoolFlag{
				Name:  "debug-rna",
				Usage: "Append iteration and origin metadata to each RNA line (requires --source).",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "Print iteration/RNA/match-failure counts to stderr on completion.",
			},
		},
		Action: runEndo,
	}
}
