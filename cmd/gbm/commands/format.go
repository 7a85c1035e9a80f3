package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/wonny/brownian/internal/stats"
)

// ═══════════════════════════════════════════════════════════
// Common Formatting Utilities
// Every stage prints through it so the output format stays uniform
// ═══════════════════════════════════════════════════════════

const (
	singleLine = "───────────────────────────────────────────────────────────"
	doubleLine = "═══════════════════════════════════════════════════════════"
)

// StageMetadata holds stage execution metadata
type StageMetadata struct {
	Number    int
	Name      string
	RunID     string
	StageDir  string
	Workers   int
	Timestamp string
}

// Printer writes the human-readable stage report
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) println(args ...interface{}) {
	fmt.Fprintln(p.w, args...)
}

// StageHeader prints a formatted stage header
func (p *Printer) StageHeader(meta StageMetadata) {
	p.println()
	p.println(doubleLine)
	p.printf("  Stage %d: %s\n", meta.Number, meta.Name)
	p.println(singleLine)
	p.printf("  Run ID    : %s\n", meta.RunID)
	p.printf("  Stage dir : %s\n", meta.StageDir)
	p.printf("  Workers   : %d\n", meta.Workers)
	p.println(singleLine)
	p.printf("[Stage %d] Started at %s\n", meta.Number, meta.Timestamp)
}

// Prompt prints an input prompt without a newline
func (p *Printer) Prompt(message string) {
	p.printf("%s", message)
}

// Completion prints the stage completion line
func (p *Printer) Completion(stage int, elapsed time.Duration) {
	p.println()
	p.printf("✅ Stage %d completed in %.3fs\n", stage, elapsed.Seconds())
}

// Separator prints a visual separator
func (p *Printer) Separator() {
	p.println(singleLine)
}

// Success prints a success message
func (p *Printer) Success(message string) {
	p.printf("✅ %s\n", message)
}

// Error prints an error message
func (p *Printer) Error(message string) {
	p.printf("❌ %s\n", message)
}

// Warning prints a warning message
func (p *Printer) Warning(message string) {
	p.printf("⚠️  %s\n", message)
}

// Info prints an info message
func (p *Printer) Info(message string) {
	p.printf("ℹ️  %s\n", message)
}

// KeyValue prints key-value pairs
func (p *Printer) KeyValue(key string, value string, keyWidth int) {
	p.printf("   %-*s : %s\n", keyWidth, key, value)
}

// Series prints the head and tail of a series.
// label renders one row, e.g. "[3]: 1.234567" or "Day 3: $101.20".
func (p *Printer) Series(title string, values []float64, preview int, label func(i int, v float64) string) {
	head, tail, gap := stats.Preview(len(values), preview)
	if len(head) == 0 {
		return
	}

	p.println()
	p.printf("%s:\n", title)
	for _, i := range head {
		p.printf("  %s\n", label(i, values[i]))
	}
	if gap {
		skipped := len(values) - len(head) - len(tail)
		p.printf("  ... (%s more)\n", humanize.Comma(int64(skipped)))
	}
	for _, i := range tail {
		p.printf("  %s\n", label(i, values[i]))
	}
}

// Head prints the first n values of a series and how many were left out
func (p *Printer) Head(title string, values []float64, n int, label func(i int, v float64) string) {
	head, rest := stats.Head(len(values), n)
	if len(head) == 0 {
		return
	}

	p.println()
	p.printf("%s:\n", title)
	for _, i := range head {
		p.printf("  %s\n", label(i, values[i]))
	}
	if rest > 0 {
		p.printf("  ... (%d more)\n", rest)
	}
}

// Summary prints descriptive statistics of a series
func (p *Printer) Summary(s stats.Summary) {
	p.println()
	p.println("Summary:")
	p.KeyValue("Count", humanize.Comma(int64(s.Count)), 8)
	p.KeyValue("Min", fmt.Sprintf("%.6e", s.Min), 8)
	p.KeyValue("Max", fmt.Sprintf("%.6e", s.Max), 8)
	p.KeyValue("Mean", fmt.Sprintf("%.6e", s.Mean), 8)
	p.KeyValue("Std dev", fmt.Sprintf("%.6e", s.StdDev), 8)
}

// TableHeader prints a table header
func (p *Printer) TableHeader(columns []string, widths []int) {
	p.TableRow(columns, widths)

	totalWidth := 0
	for i, width := range widths {
		totalWidth += width
		if i < len(widths)-1 {
			totalWidth += 2 // spacing
		}
	}
	p.println(strings.Repeat("─", totalWidth))
}

// TableRow prints a table row
func (p *Printer) TableRow(values []string, widths []int) {
	for i, val := range values {
		p.printf("%-*s", widths[i], val)
		if i < len(values)-1 {
			p.printf("  ")
		}
	}
	p.println()
}
