/*
File    : kira/cmd/kira/main.go

Package main is the entry point for the Kira interpreter. It exposes three
modes through a single `urfave/cli/v2` command: an interactive REPL (no
arguments), file execution (a positional path argument), and one-shot
string evaluation (`-e`/`--eval`).
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/kira-lang/kira/eval"
	"github.com/kira-lang/kira/objects"
	"github.com/kira-lang/kira/parser"
	"github.com/kira-lang/kira/repl"
)

const (
	version = "v1.0.0"
	author  = "kira-lang"
	license = "MIT"
	prompt  = "kira> "
	line    = "----------------------------------------------------------------"
)

const banner = `
  _  ___
 | |/ (_)_ __ __ _
 | ' /| | '__/ _` + "`" + ` |
 | . \| | | | (_| |
 |_|\_\_|_|  \__,_|
`

var redColor = color.New(color.FgRed)

func main() {
	app := &cli.App{
		Name:                   "kira",
		Usage:                  "a small dynamically-typed, expression-oriented language",
		Version:                version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "eval",
				Aliases: []string{"e"},
				Usage:   "evaluate `SOURCE` as a program and print its final value",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if src := c.String("eval"); src != "" {
		os.Exit(runSource(src, os.Stdout))
	}

	if path := c.Args().First(); path != "" {
		os.Exit(runFile(path))
	}

	repler := repl.New(banner, version, author, line, license, prompt)
	repler.Start(os.Stdin, os.Stdout)
	return nil
}

// runFile reads path, then runs it with the same diagnostics and exit-code
// convention as -e, additionally mapping an unreadable path to exit 2 since
// it is a precondition for even lexing.
func runFile(path string) int {
	content, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return 2
	}
	return runSourceNamed(path, string(content), os.Stdout)
}

func runSource(src string, out *os.File) int {
	return runSourceNamed("<eval>", src, out)
}

// runSourceNamed lexes, parses and evaluates src, printing the final
// expression's value (unless Null) and returning the process exit code:
// 0 on success, 1 on a runtime error, 2 on a parse/lex error.
func runSourceNamed(name, src string, out *os.File) (code int) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(os.Stderr, "%s: internal error: %v\n", name, rec)
			code = 1
		}
	}()

	p := parser.New(src)
	prog := p.Parse()

	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(os.Stderr, "%s:%d:%d: ParseError: %s\n", name, e.Line, e.Column, e.Message)
		}
		return 2
	}

	evaluator := eval.New(out, os.Stdin)
	result := evaluator.Run(prog)

	if errObj, ok := result.(*objects.Error); ok {
		redColor.Fprintf(os.Stderr, "%s:%d:%d: %s: %s\n", name, errObj.Line, errObj.Column, errObj.Kind, errObj.Message)
		return 1
	}
	if _, isNull := result.(*objects.Null); !isNull {
		fmt.Fprintf(out, "%s\n", result.ToObject())
	}
	return 0
}
