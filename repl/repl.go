/*
File    : symstatic/repl/repl.go

Package repl implements komodo's interactive Read-Eval-Print Loop. It
is grounded on the teacher interpreter's repl.Repl: a readline-backed
prompt loop with a colored banner and colored inline output, holding a
single long-lived Evaluator so bindings persist across inputs. Step
implements the specification's external prompt contract — a single
call returns (output_string, status) where status is Continue, Error,
or Break — as a thin wrapper around the same read-eval-print body
Start uses, so the CLI's interactive loop and the TCP server path in
cmd/komodo share one implementation.
*/
package repl

import (
	"bytes"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/danilopedraza/symstatic/eval"
	"github.com/danilopedraza/symstatic/object"
	"github.com/danilopedraza/symstatic/parser"
	"github.com/danilopedraza/symstatic/weeder"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Status is the outcome of one Step call.
type Status int

const (
	// Continue means the loop should read another line.
	Continue Status = iota
	// Error means the line produced a reported error; the loop stays
	// alive so the user can correct the mistake.
	Error
	// Break means the session should end (e.g. the exit command).
	Break
)

const exitCommand = ".exit"

// Repl is one interactive komodo session: a banner, a prompt string,
// and a persistent Evaluator whose environment survives across Step
// calls.
type Repl struct {
	Banner  string
	Version string
	Prompt  string

	evaluator *eval.Evaluator
}

// New creates a Repl with a fresh Evaluator.
func New(banner, version, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Prompt: prompt, evaluator: eval.New()}
}

// PrintBanner writes the startup banner to w, in the same
// blue/green/yellow/cyan register as the teacher interpreter's
// PrintBannerInfo.
func (r *Repl) PrintBanner(w io.Writer) {
	line := strings.Repeat("-", 60)
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", line)
	yellowColor.Fprintf(w, "komodo %s\n", r.Version)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "Type an expression and press enter.")
	cyanColor.Fprintf(w, "Type %q to quit.\n", exitCommand)
	blueColor.Fprintf(w, "%s\n", line)
}

// Step evaluates a single line of input against the session's
// persistent environment and reports what the caller should do next.
// Output (the evaluated result or an error message, uncolored) is
// returned as a string rather than printed, so a caller can color or
// redirect it as it sees fit.
func (r *Repl) Step(line string) (string, Status) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", Continue
	}
	if line == exitCommand {
		return "Goodbye.", Break
	}

	p := parser.New(line)
	nodes, err := p.Program()
	if err != nil {
		return err.Error(), Error
	}

	var last object.Object
	for _, node := range nodes {
		woven, err := weeder.Weed(node)
		if err != nil {
			return err.Error(), Error
		}
		v, err := r.evaluator.Eval(woven)
		if err != nil {
			return err.Error(), Error
		}
		last = v
	}

	if last == nil {
		return "", Continue
	}
	return last.String(), Continue
}

// Start runs the interactive loop, reading lines via readline (history,
// cursor movement) and writing colored output to w. A non-nil reader is
// the input for both readline and getln; the TCP server path passes the
// same net.Conn as both reader and writer.
func (r *Repl) Start(reader io.Reader, w io.Writer) error {
	r.PrintBanner(w)
	r.evaluator.SetWriter(w)
	if reader != nil {
		r.evaluator.SetReader(reader)
	}

	cfg := &readline.Config{Prompt: r.Prompt, Stdout: w}
	if reader != nil {
		cfg.Stdin = io.NopCloser(reader)
	}
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			io.WriteString(w, "Goodbye.\n")
			return nil
		}

		out, status := r.Step(line)
		switch status {
		case Break:
			greenColor.Fprintf(w, "%s\n", out)
			return nil
		case Error:
			redColor.Fprintf(w, "%s\n", out)
		case Continue:
			if out != "" {
				yellowColor.Fprintf(w, "%s\n", out)
			}
		}
	}
}

// CaptureOutput runs Step while temporarily redirecting println/print
// output into a buffer, returning both the Step result and whatever
// was written — used by the test harness and by callers that want the
// printed side effects alongside the expression's value.
func (r *Repl) CaptureOutput(line string) (result string, printed string, status Status) {
	var buf bytes.Buffer
	r.evaluator.SetWriter(&buf)
	result, status = r.Step(line)
	return result, buf.String(), status
}
