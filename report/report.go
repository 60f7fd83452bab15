// Package report renders simulation tables and results for the command line.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"crapsim/dice"
	"crapsim/models"

	"gopkg.in/yaml.v3"
)

// Format selects how results are written
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat converts a config value to a Format. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatText:
		return FormatText, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// SumCount is one row of the per-sum frequency listing
type SumCount struct {
	Sum   int `yaml:"sum" json:"sum"`
	Count int `yaml:"count" json:"count"`
}

// TablesDocument is the structured form of the verbose tables
type TablesDocument struct {
	Dice         models.DiceConfig `yaml:"dice" json:"dice"`
	Weighting    models.Weighting  `yaml:"weighting" json:"weighting"`
	Combinations [][]int           `yaml:"combinations" json:"combinations"`
	Frequencies  []SumCount        `yaml:"frequencies" json:"frequencies"`
	Total        int               `yaml:"total" json:"total"`
	Intervals    []models.Interval `yaml:"intervals" json:"intervals"`
}

// Document is what the structured formats write
type Document struct {
	Tables *TablesDocument         `yaml:"tables,omitempty" json:"tables,omitempty"`
	Result models.SimulationResult `yaml:"result" json:"result"`
}

// NewTablesDocument flattens built tables into a serializable document
func NewTablesDocument(t *dice.Tables) *TablesDocument {
	freq, total := t.Enumeration.Weighted(t.Weighting)

	doc := &TablesDocument{
		Dice:         t.Enumeration.Config,
		Weighting:    t.Weighting,
		Combinations: make([][]int, 0, len(t.Enumeration.Unique)),
		Frequencies:  make([]SumCount, 0, len(freq.Counts)),
		Total:        total,
		Intervals:    append([]models.Interval(nil), t.Intervals...),
	}
	for _, c := range t.Enumeration.Unique {
		doc.Combinations = append(doc.Combinations, []int(c))
	}
	for _, sum := range freq.Sums() {
		doc.Frequencies = append(doc.Frequencies, SumCount{Sum: sum, Count: freq.Count(sum)})
	}
	return doc
}

// Printer writes tables and results in one format.
//
// Text output is streamed: tables print as soon as they are known so they
// appear before the simulation runs. Structured formats hold the tables
// back and write a single document alongside the result.
type Printer struct {
	w      io.Writer
	format Format
	tables *TablesDocument
}

// NewPrinter creates a printer writing to w
func NewPrinter(w io.Writer, format Format) *Printer {
	if format == "" {
		format = FormatText
	}
	return &Printer{w: w, format: format}
}

// Tables reports the enumerated combinations, sum frequencies and intervals
func (p *Printer) Tables(t *dice.Tables) error {
	p.tables = NewTablesDocument(t)
	if p.format != FormatText {
		return nil
	}
	return writeTablesText(p.w, p.tables)
}

// Result reports the outcome of a simulation
func (p *Printer) Result(r *models.SimulationResult) error {
	switch p.format {
	case FormatText:
		return writeResultText(p.w, r, p.tables != nil)
	case FormatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(Document{Tables: p.tables, Result: *r}); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(Document{Tables: p.tables, Result: *r}); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", p.format)
	}
}

func writeTablesText(w io.Writer, doc *TablesDocument) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\nUnique combinations (%d):\n\t", len(doc.Combinations))
	for i, c := range doc.Combinations {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, c)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "\nCombinations per sum (%s weighting, %d total):\n", doc.Weighting, doc.Total)
	for _, f := range doc.Frequencies {
		fmt.Fprintf(&b, "\t%d: %d combinations\n", f.Sum, f.Count)
	}

	b.WriteString("\nCumulative intervals:\n")
	for _, iv := range doc.Intervals {
		fmt.Fprintf(&b, "\t%d: [%.4f - %.4f)\n", iv.Sum, iv.Lower, iv.Upper)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeResultText(w io.Writer, r *models.SimulationResult, verbose bool) error {
	var b strings.Builder
	if verbose {
		fmt.Fprintf(&b, "\nExpected win probability: %.2f %%\n\n", r.ExpectedWinRate*100)
	}
	fmt.Fprintf(&b, "Total plays: %d\n", r.Plays)
	fmt.Fprintf(&b, "Win probability: %.2f %%\n", r.WinRate*100)
	fmt.Fprintf(&b, "Loss probability: %.2f %%\n", r.LossRate*100)

	_, err := io.WriteString(w, b.String())
	return err
}

// UnmarshalText lets env decoding parse a Format
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
