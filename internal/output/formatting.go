package output

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"

	"github.com/jacoelho/rpncalc/internal/calc"
)

// OutputFormat represents the output format for a report.
type OutputFormat int

const (
	FormatText OutputFormat = iota
	FormatJSON
	FormatYAML
)

func (f OutputFormat) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "text"
	}
}

// ParseFormat accepts text, json or yaml in any case.
func ParseFormat(value string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatText, fmt.Errorf("unknown output format %q (expected text, json or yaml)", value)
	}
}

// Options controls how a report is rendered.
type Options struct {
	Format OutputFormat
	// Precision is the number of decimals; -1 selects the shortest exact form.
	Precision int
	Color     bool
	Debug     bool
}

// Report is the outcome of evaluating one line.
type Report struct {
	ID         string
	Expression string
	Tokens     []calc.Token
	Postfix    []calc.Token
	Result     float64
	Err        error
}

func NewReport(expression string) *Report {
	return &Report{
		ID:         uuid.NewString(),
		Expression: expression,
	}
}

// Write renders the report. Text results go to stdout while errors and the debug trace go
// to stderr; structured formats write a single document to stdout.
func (r *Report) Write(stdout, stderr io.Writer, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return r.formatJSON(stdout, opts)
	case FormatYAML:
		return r.formatYAML(stdout, opts)
	case FormatText:
		fallthrough
	default:
		return r.formatText(stdout, stderr, opts)
	}
}

// FormatValue renders a result with the requested number of decimals.
func FormatValue(value float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func (r *Report) formatText(stdout, stderr io.Writer, opts Options) error {
	if opts.Debug {
		if err := r.formatDebugText(stderr, opts); err != nil {
			return err
		}
	}

	if r.Err != nil {
		errColor := newColor(opts.Color, color.FgRed, color.Bold)
		_, err := errColor.Fprintf(stderr, "Error: %v\n", r.Err)
		return err
	}

	_, err := fmt.Fprintf(stdout, "= %s\n", FormatValue(r.Result, opts.Precision))
	return err
}

func (r *Report) formatDebugText(w io.Writer, opts Options) error {
	label := newColor(opts.Color, color.FgCyan)

	if _, err := label.Fprint(w, "tokens: "); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, " "+calc.Join(r.Tokens)); err != nil {
		return err
	}

	if _, err := label.Fprint(w, "postfix:"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, " "+calc.Join(r.Postfix)); err != nil {
		return err
	}

	return nil
}

func newColor(enabled bool, attributes ...color.Attribute) *color.Color {
	c := color.New(attributes...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

type reportDocument struct {
	ID         string   `json:"id" yaml:"id"`
	Expression string   `json:"expression" yaml:"expression"`
	Tokens     []string `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	Postfix    []string `json:"postfix,omitempty" yaml:"postfix,omitempty"`
	Result     *float64 `json:"result,omitempty" yaml:"result,omitempty"`
	Display    string   `json:"display,omitempty" yaml:"display,omitempty"`
	Error      string   `json:"error,omitempty" yaml:"error,omitempty"`
}

func (r *Report) toDocument(opts Options) reportDocument {
	doc := reportDocument{
		ID:         r.ID,
		Expression: r.Expression,
	}

	if opts.Debug {
		doc.Tokens = tokenStrings(r.Tokens)
		doc.Postfix = tokenStrings(r.Postfix)
	}

	if r.Err != nil {
		doc.Error = r.Err.Error()
		return doc
	}

	doc.Display = "= " + FormatValue(r.Result, opts.Precision)
	// JSON has no representation for infinities or NaN.
	if !math.IsInf(r.Result, 0) && !math.IsNaN(r.Result) {
		result := r.Result
		doc.Result = &result
	}

	return doc
}

func tokenStrings(tokens []calc.Token) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, token.String())
	}
	return out
}

func (r *Report) formatJSON(w io.Writer, opts Options) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r.toDocument(opts))
}

func (r *Report) formatYAML(w io.Writer, opts Options) error {
	payload, err := yaml.Marshal(r.toDocument(opts))
	if err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}

	_, err = w.Write(payload)
	return err
}
