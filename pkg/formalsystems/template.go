package formalsystems

import "strings"

// tmplSeg is one piece of a compiled instantiation template: a literal run
// of text, or a placeholder referencing a wildcard's original name (never
// an alias — the template walk uses the name, so
// that two occurrences of the same wildcard in one schema substitute the
// same bound value).
type tmplSeg struct {
	literal string
	name    string
}

// Template is the compiled instantiation form of a schema body or a rule
// consequent: a named-placeholder substitution, built by the same
// character-by-character walk that builds the matcher.
type Template struct {
	segs []tmplSeg
}

// Instantiate substitutes b into the template, producing a ground string.
// A nil or empty Binding is valid for a template with no placeholders
// (a wildcard-free axiom schema).
func (t *Template) Instantiate(b Binding) string {
	var sb strings.Builder
	for _, seg := range t.segs {
		if seg.literal != "" {
			sb.WriteString(seg.literal)
			continue
		}
		sb.WriteString(b[seg.name])
	}
	return sb.String()
}

// Names returns the wildcard names this template references, in the order
// they first appear. Used by the rule compiler to check that every
// consequent placeholder is bound by some antecedent.
func (t *Template) Names() []string {
	var names []string
	seen := make(map[string]bool)
	for _, seg := range t.segs {
		if seg.name != "" && !seen[seg.name] {
			seen[seg.name] = true
			names = append(names, seg.name)
		}
	}
	return names
}
