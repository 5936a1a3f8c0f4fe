package execute

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/rpncalc/internal/calc"
	"github.com/jacoelho/rpncalc/internal/config"
	"github.com/jacoelho/rpncalc/internal/exit"
	"github.com/jacoelho/rpncalc/internal/input"
	"github.com/jacoelho/rpncalc/internal/output"
)

type Runner struct {
	input     input.LineSource
	prompt    string
	options   output.Options
	output    io.Writer
	errOutput io.Writer
}

func New(cfg *config.Config) *Runner {
	var source input.LineSource
	if cfg.FromArgs {
		source = input.NewString(cfg.Expression)
	}

	return &Runner{
		input:     source,
		prompt:    cfg.Prompt,
		options:   cfg.OutputOptions(os.Stderr),
		output:    os.Stdout,
		errOutput: os.Stderr,
	}
}

func (r *Runner) SetInput(source input.LineSource) {
	r.input = source
}

func (r *Runner) SetOutput(w io.Writer) {
	r.output = w
}

func (r *Runner) SetErrorOutput(w io.Writer) {
	r.errOutput = w
}

// lineSource opens stdin on first use unless the line came from the command line.
func (r *Runner) lineSource() input.LineSource {
	if r.input == nil {
		r.input = input.Open(os.Stdin, r.prompt)
	}
	return r.input
}

func (r *Runner) payloadWriter() io.Writer {
	if r.output == nil {
		return io.Discard
	}
	return r.output
}

func (r *Runner) errorWriter() io.Writer {
	if r.errOutput == nil {
		return io.Discard
	}
	return r.errOutput
}

func (r *Runner) logf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.errorWriter(), format, args...)
}

// Run reads one line, evaluates it and writes the report. It returns the process exit code.
func (r *Runner) Run(ctx context.Context) int {
	source := r.lineSource()
	defer source.Close()

	line, err := readLine(ctx, source)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, input.ErrAborted):
		r.logf("Interrupted\n")
		return exit.CodeFailure
	case err != nil:
		r.logf("Error: failed to read line: %v\n", err)
		return exit.CodeFailure
	}

	report := Evaluate(line)
	if err := report.Write(r.payloadWriter(), r.errorWriter(), r.options); err != nil {
		r.logf("Error: failed to write result: %v\n", err)
		return exit.CodeFailure
	}

	if report.Err != nil {
		return exit.CodeFailure
	}
	return exit.CodeOK
}

type lineResult struct {
	line string
	err  error
}

// readLine stops waiting when ctx is done; the pending read is abandoned with the process.
func readLine(ctx context.Context, source input.LineSource) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	done := make(chan lineResult, 1)
	go func() {
		line, err := source.ReadLine()
		done <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result := <-done:
		return result.line, result.err
	}
}

// Evaluate compiles and evaluates line, keeping every intermediate stage on the report.
func Evaluate(line string) *output.Report {
	report := output.NewReport(line)

	expression, err := calc.Compile(line)
	if err != nil {
		report.Err = err
		return report
	}

	report.Tokens = expression.Tokens
	report.Postfix = expression.Postfix
	report.Result, report.Err = expression.Eval()

	return report
}
