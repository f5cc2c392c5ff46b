package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexprengere/FormalSystems/pkg/formalsystems"
)

var (
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	yesStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	noStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Printer renders the engine's line-oriented output onto w, implementing
// formalsystems.Trace for the per-turn and per-production lines. Styling is
// applied with lipgloss but never changes line content, only color/weight,
// so piping the output through another program still sees the plain text.
type Printer struct {
	w      io.Writer
	Quiet  bool
	Bucket bool
}

// NewPrinter builds a Printer writing to w. bucket selects the "=== BUCKET
// t: ..." summary shape over "STEP i: ...".
func NewPrinter(w io.Writer, bucket bool) *Printer {
	return &Printer{w: w, Bucket: bucket}
}

// Banner prints a "> ..." line announcing driver mode or a derivation
// request.
func (p *Printer) Banner(format string, args ...interface{}) {
	fmt.Fprintln(p.w, bannerStyle.Render("> "+fmt.Sprintf(format, args...)))
}

// Turn implements formalsystems.Trace: the step/bucket summary line.
func (p *Printer) Turn(index int, introduced []*formalsystems.Theorem) {
	body := strings.Join(theoremStrings(introduced), "/")
	var line string
	if p.Bucket {
		line = fmt.Sprintf("=== BUCKET %d: %s", index, body)
	} else {
		line = fmt.Sprintf("STEP %d: %s", index, body)
	}
	fmt.Fprintln(p.w, summaryStyle.Render(line))
}

// Production implements formalsystems.Trace: a successful application.
func (p *Printer) Production(rule *formalsystems.Rule, tuple, produced []*formalsystems.Theorem) {
	if p.Quiet {
		return
	}
	fmt.Fprintf(p.w, "P %s for [%s] gives %s\n",
		rule.Body, strings.Join(theoremStrings(tuple), "/"), strings.Join(theoremStrings(produced), "/"))
}

// FailedAttempt implements formalsystems.Trace: a tuple that matched no
// antecedent or whose bindings could not be joined.
func (p *Printer) FailedAttempt(rule *formalsystems.Rule, tuple []*formalsystems.Theorem) {
	if p.Quiet {
		return
	}
	fmt.Fprintf(p.w, ". %s for [%s]\n", rule.Body, strings.Join(theoremStrings(tuple), "/"))
}

// AxiomCheck prints the -a flag's result line: which schema (and binding)
// witnesses target, or that no schema does.
func (p *Printer) AxiomCheck(target string, schemas []*formalsystems.AxiomSchema) {
	for _, s := range schemas {
		if b, ok := s.IsAxiom(target); ok {
			fmt.Fprintln(p.w, yesStyle.Render(fmt.Sprintf("Y %s is an axiom [%s with %s]", target, s.Name, formatBinding(b))))
			return
		}
	}
	names := make([]string, len(schemas))
	for i, s := range schemas {
		names[i] = s.Name
	}
	fmt.Fprintln(p.w, noStyle.Render(fmt.Sprintf("N %s is not an axiom [%s]", target, strings.Join(names, "/"))))
}

// Derivation prints the derivation banner and one "[k] ..." line per node,
// or a not-found line if target was never derived.
func (p *Printer) Derivation(target string, lines []formalsystems.DerivationLine, found bool) {
	if !found {
		fmt.Fprintln(p.w, noStyle.Render(fmt.Sprintf("N %s not found", target)))
		return
	}
	p.Banner("derivation of %s", target)
	for _, l := range lines {
		if l.Theorem.IsAxiom() {
			fmt.Fprintf(p.w, "[%d] Axiom gives %s\n", l.Gen, l.Theorem.String())
			continue
		}
		fmt.Fprintf(p.w, "[%d] %s for [%s] gives %s\n",
			l.Gen, l.Producer, strings.Join(theoremStrings(l.Parents), "/"), l.Theorem.String())
	}
}

func theoremStrings(ts []*formalsystems.Theorem) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.String()
	}
	return out
}

func formatBinding(b formalsystems.Binding) string {
	if len(b) == 0 {
		return "{}"
	}
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%s", name, b[name])
	}
	return strings.Join(parts, ", ")
}
