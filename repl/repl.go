/*
File    : kira/repl/repl.go

Package repl implements Kira's interactive Read-Eval-Print Loop. It keeps
one *eval.Evaluator alive across lines so `let`/`const`/`fn` bindings
persist between prompts, and buffers input across lines whenever a
statement is left syntactically incomplete (unbalanced brackets, or a
trailing binary/assignment operator or keyword) so a multi-line construct
can be typed one line at a time.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/kira-lang/kira/eval"
	"github.com/kira-lang/kira/objects"
	"github.com/kira-lang/kira/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string // e.g. "kira> "
}

// New creates a Repl instance with the given chrome.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Kira!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// continuationPrompt is shown while a statement spans multiple lines.
const continuationPrompt = "...  "

// Start runs the REPL loop until '.exit', Ctrl-D, or a readline error.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.New(writer, reader)

	var buffer []string
	for {
		prompt := r.Prompt
		if len(buffer) > 0 {
			prompt = continuationPrompt
		}
		rl.SetPrompt(prompt)

		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		if len(buffer) == 0 {
			trimmed := strings.Trim(line, " \t\r\n")
			if trimmed == "" {
				continue
			}
			if trimmed == ".exit" {
				writer.Write([]byte("Good Bye!\n"))
				break
			}
		}

		rl.SaveHistory(line)
		buffer = append(buffer, line)

		source := strings.Join(buffer, "\n")
		if needsContinuation(source) {
			continue
		}
		buffer = nil

		r.evalLine(writer, source, evaluator)
	}
}

// evalLine parses and evaluates one buffered statement, recovering from any
// host panic so a single bad line never kills the session.
func (r *Repl) evalLine(writer io.Writer, source string, evaluator *eval.Evaluator) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(writer, "[internal error] %v\n", rec)
		}
	}()

	p := parser.New(source)
	prog := p.Parse()

	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(writer, "%s\n", e.Error())
		}
		return
	}

	result := evaluator.Run(prog)
	if result == nil {
		return
	}
	if errObj, ok := result.(*objects.Error); ok {
		redColor.Fprintf(writer, "%d:%d: %s: %s\n", errObj.Line, errObj.Column, errObj.Kind, errObj.Message)
		return
	}
	if _, isNull := result.(*objects.Null); isNull {
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.ToObject())
}

// needsContinuation reports whether source is an incomplete statement: an
// unbalanced `(`, `[`, `{`, or a trailing binary/assignment operator or one
// of the `and`/`or`/`not` keywords that can only be followed by more input.
func needsContinuation(source string) bool {
	if bracketDepth(source) > 0 {
		return true
	}
	return endsWithContinuationToken(source)
}

func bracketDepth(source string) int {
	depth := 0
	inString := false
	escaped := false
	for _, r := range source {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		}
	}
	return depth
}

var continuationOperators = []string{
	"**", "==", "!=", "<=", ">=", "+", "-", "*", "/", "%", "=", "<", ">",
}
var continuationKeywords = []string{"and", "or", "not"}

func endsWithContinuationToken(source string) bool {
	trimmed := strings.TrimRight(source, " \t\r\n")
	if trimmed == "" {
		return false
	}
	for _, kw := range continuationKeywords {
		if strings.HasSuffix(trimmed, kw) && endsOnWordBoundary(trimmed, kw) {
			return true
		}
	}
	for _, op := range continuationOperators {
		if strings.HasSuffix(trimmed, op) {
			return true
		}
	}
	return false
}

func endsOnWordBoundary(s, suffix string) bool {
	if len(s) == len(suffix) {
		return true
	}
	before := s[len(s)-len(suffix)-1]
	return before == ' ' || before == '\t'
}
