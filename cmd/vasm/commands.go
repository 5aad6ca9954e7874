package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ezrec/vasm/asm"
	"github.com/ezrec/vasm/isa"
	"github.com/ezrec/vasm/memory"
	"github.com/ezrec/vasm/translate"
)

var f = translate.From

var (
	IsaFlag = &cli.PathFlag{
		Name:     "isa",
		Usage:    "YAML instruction set definition. Default: the built-in word machine",
		Required: false,
	}
	OutputFlag = &cli.PathFlag{
		Name:     "output",
		Aliases:  []string{"o"},
		Usage:    "output file path. Default: stdout",
		Required: false,
	}
	VerboseFlag = &cli.BoolFlag{
		Name:     "verbose",
		Aliases:  []string{"v"},
		Usage:    "log each source line as it is assembled",
		Required: false,
		Value:    false,
	}
	FirstFlag = &cli.IntFlag{
		Name:  "first",
		Usage: "first memory block to show",
		Value: 0,
	}
	CountFlag = &cli.IntFlag{
		Name:  "count",
		Usage: "number of memory blocks to show",
		Value: 1,
	}
)

var AssembleCommand = &cli.Command{
	Name:      "assemble",
	Usage:     "Assembles a source file into a listing",
	ArgsUsage: "SOURCE",
	Action:    Assemble,
	Flags: []cli.Flag{
		IsaFlag,
		OutputFlag,
		VerboseFlag,
	},
}

var BlocksCommand = &cli.Command{
	Name:      "blocks",
	Usage:     "Shows the memory blocks of an assembled source file",
	ArgsUsage: "SOURCE",
	Action:    Blocks,
	Flags: []cli.Flag{
		IsaFlag,
		OutputFlag,
		FirstFlag,
		CountFlag,
	},
}

var SymbolsCommand = &cli.Command{
	Name:      "symbols",
	Usage:     "Lists the addresses of variables and labels",
	ArgsUsage: "SOURCE",
	Action:    Symbols,
	Flags: []cli.Flag{
		IsaFlag,
		OutputFlag,
	},
}

// Assemble writes the listing of the source file.
func Assemble(ctx *cli.Context) error {
	prog, err := assemble(ctx)
	if err != nil {
		return err
	}

	return output(ctx, func(w io.Writer) (err error) {
		_, err = fmt.Fprintln(w, prog.Listing.String())
		return
	})
}

// Blocks writes memory blocks of the source file, one word per line.
func Blocks(ctx *cli.Context) error {
	prog, err := assemble(ctx)
	if err != nil {
		return err
	}

	img := memory.NewImage(prog)
	first := ctx.Int(FirstFlag.Name)

	return output(ctx, func(w io.Writer) (err error) {
		for n, block := range img.Blocks(first, ctx.Int(CountFlag.Name)) {
			_, err = fmt.Fprintf(w, "; block %d\n", first+n)
			if err != nil {
				return
			}
			if block == nil {
				_, err = fmt.Fprintln(w, "; not found")
				if err != nil {
					return
				}
				continue
			}
			var text []string
			text, err = img.BlockText(first + n)
			if err != nil {
				return
			}
			_, err = fmt.Fprintln(w, strings.Join(text, "\n"))
			if err != nil {
				return
			}
		}
		return
	})
}

// Symbols writes the symbol addresses of the source file.
func Symbols(ctx *cli.Context) error {
	prog, err := assemble(ctx)
	if err != nil {
		return err
	}

	return output(ctx, func(w io.Writer) (err error) {
		for name, addr := range prog.Symbols() {
			_, err = fmt.Fprintf(w, "%s %d\n", name, addr)
			if err != nil {
				return
			}
		}
		return
	})
}

// assemble reads the instruction set and the source named by the command.
func assemble(ctx *cli.Context) (prog *asm.Program, err error) {
	if ctx.NArg() != 1 {
		err = errors.New(f("expected one source file, got %v", ctx.NArg()))
		return
	}

	table := isa.Builtin()
	if path := ctx.Path(IsaFlag.Name); len(path) != 0 {
		var inf *os.File
		inf, err = os.Open(path)
		if err != nil {
			return
		}
		defer inf.Close()

		table, err = isa.Load(inf)
		if err != nil {
			err = fmt.Errorf("%v: %w", path, err)
			return
		}
	}

	source := ctx.Args().First()
	input := io.Reader(os.Stdin)
	if source != "-" {
		var inf *os.File
		inf, err = os.Open(source)
		if err != nil {
			return
		}
		defer inf.Close()
		input = inf
	}

	assembler := table.Assembler()
	assembler.Verbose = ctx.Bool(VerboseFlag.Name)

	prog, err = assembler.Parse(input)
	if err != nil {
		err = fmt.Errorf("%v: %w", source, err)
	}

	return
}

// output runs write on the output file of the command.
func output(ctx *cli.Context, write func(w io.Writer) error) (err error) {
	path := ctx.Path(OutputFlag.Name)
	if len(path) == 0 {
		return write(ctx.App.Writer)
	}

	ouf, err := os.Create(path)
	if err != nil {
		return
	}

	err = write(ouf)
	cerr := ouf.Close()
	if err == nil {
		err = cerr
	}

	return
}
