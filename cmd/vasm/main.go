// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func newApp() (app *cli.App) {
	app = cli.NewApp()
	app.Name = "vasm"
	app.Usage = "word machine assembler"
	app.Description = "Assembles .data/.text pseudo-assembly into annotated machine code listings"
	app.Commands = []*cli.Command{
		AssembleCommand,
		BlocksCommand,
		SymbolsCommand,
	}
	return
}

func main() {
	err := newApp().RunContext(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
