package formalsystems

import "strings"

// splitTopLevel splits a raw schema/rule string on its condition commas,
// returning the trailing body unchanged. The grammar never puts a
// comma inside a body — a schema body is a single expression and a rule
// body separates its clauses with "and"/"=>" — so a plain comma split is
// unambiguous: everything but the last field is a condition clause.
func splitTopLevel(raw string) (conditions []string, body string) {
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts[:len(parts)-1], parts[len(parts)-1]
}

// parseCondition parses one "x is a+" / "x are a+" / "x a+" / "x y a+"
// clause into the names it binds and the regex they share.
func parseCondition(raw, cond string) (names []string, base byte, kind RepKind, err error) {
	fields := strings.Fields(cond)
	if len(fields) < 2 {
		return nil, 0, 0, newDefinitionError(raw, "malformed wildcard condition %q", cond)
	}
	regex := fields[len(fields)-1]
	for _, f := range fields[:len(fields)-1] {
		if f == "is" || f == "are" {
			continue
		}
		names = append(names, f)
	}
	if len(names) == 0 {
		return nil, 0, 0, newDefinitionError(raw, "wildcard condition %q declares no name", cond)
	}
	for _, n := range names {
		if len(n) != 1 || !isWildcardChar(n[0]) {
			return nil, 0, 0, newDefinitionError(raw, "wildcard name %q must be a single lowercase letter", n)
		}
	}
	base, kind, rerr := parseRepetitionRegex(regex)
	if rerr != nil {
		return nil, 0, 0, newDefinitionError(raw, "%s", rerr.Error())
	}
	return names, base, kind, nil
}

// wildcardTable collects the declared wildcards of a schema or rule: their
// specs, their declaration order (the AliasMap) and a name->spec lookup.
type wildcardTable struct {
	aliases *AliasMap
	specs   map[string]WildcardSpec
}

func parseWildcardTable(raw string, conditions []string) (*wildcardTable, error) {
	wt := &wildcardTable{aliases: newAliasMap(), specs: make(map[string]WildcardSpec)}
	for _, cond := range conditions {
		names, base, kind, err := parseCondition(raw, cond)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			if wt.aliases.declared(name) {
				return nil, newDefinitionError(raw, "wildcard %q declared more than once", name)
			}
			wt.aliases.declare(name)
			wt.specs[name] = WildcardSpec{Name: name, Base: base, Kind: kind}
		}
	}
	return wt, nil
}

// compileExpr walks one body expression character by character, building
// both the matcher and the template for it in lockstep: a lowercase
// letter is a wildcard occurrence (it must be declared), anything else is
// a literal.
func compileExpr(raw, expr string, wt *wildcardTable) (*Matcher, *Template, error) {
	var mSegs []matchSeg
	var tSegs []tmplSeg
	var litRun strings.Builder

	flushLiteral := func() {
		if litRun.Len() == 0 {
			return
		}
		s := litRun.String()
		mSegs = append(mSegs, matchSeg{literal: s})
		tSegs = append(tSegs, tmplSeg{literal: s})
		litRun.Reset()
	}

	for i := 0; i < len(expr); i++ {
		c := expr[i]
		if !isWildcardChar(c) {
			litRun.WriteByte(c)
			continue
		}
		name := string(c)
		spec, ok := wt.specs[name]
		if !ok {
			return nil, nil, newDefinitionError(raw, "undeclared wildcard %q in %q", name, expr)
		}
		flushLiteral()
		alias := wt.aliases.alias(name)
		mSegs = append(mSegs, matchSeg{alias: alias, base: spec.Base, kind: spec.Kind})
		tSegs = append(tSegs, tmplSeg{name: name})
	}
	flushLiteral()

	return &Matcher{segs: mSegs}, &Template{segs: tSegs}, nil
}

// isRuleBody reports whether a body expresses a rule ("lhs => rhs") rather
// than a bare schema expression.
func isRuleBody(body string) bool {
	return strings.Contains(body, "=>")
}

func splitAnd(expr string) []string {
	parts := strings.Split(expr, " and ")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// CompileSchema compiles a raw axiom schema string into an [AxiomSchema].
func CompileSchema(name, raw string) (*AxiomSchema, error) {
	conditions, body := splitTopLevel(raw)
	if isRuleBody(body) {
		return nil, newDefinitionError(raw, "axiom schema body must not contain '=>'")
	}
	wt, err := parseWildcardTable(raw, conditions)
	if err != nil {
		return nil, err
	}
	matcher, template, err := compileExpr(raw, body, wt)
	if err != nil {
		return nil, err
	}
	return &AxiomSchema{
		Name:      name,
		Raw:       raw,
		Wildcards: wt.specs,
		order:     wt.aliases.Names(),
		aliases:   wt.aliases,
		Matcher:   matcher,
		Template:  template,
	}, nil
}

// CompileRule compiles a raw rule string ("cond, ..., lhs and lhs => rhs
// and rhs") into a [Rule].
func CompileRule(name, raw string) (*Rule, error) {
	conditions, body := splitTopLevel(raw)
	if !isRuleBody(body) {
		return nil, newDefinitionError(raw, "rule body must contain '=>'")
	}
	wt, err := parseWildcardTable(raw, conditions)
	if err != nil {
		return nil, err
	}

	arrow := strings.SplitN(body, "=>", 2)
	lhsExprs := splitAnd(arrow[0])
	rhsExprs := splitAnd(arrow[1])

	antecedents := make([]*Matcher, 0, len(lhsExprs))
	usedNames := make(map[string]bool)
	for _, expr := range lhsExprs {
		m, _, err := compileExpr(raw, expr, wt)
		if err != nil {
			return nil, err
		}
		antecedents = append(antecedents, m)
		for _, seg := range m.segs {
			if seg.alias != "" {
				usedNames[wt.aliases.nameOf[seg.alias]] = true
			}
		}
	}

	consequents := make([]*Template, 0, len(rhsExprs))
	for _, expr := range rhsExprs {
		_, t, err := compileExpr(raw, expr, wt)
		if err != nil {
			return nil, err
		}
		for _, n := range t.Names() {
			if !usedNames[n] {
				return nil, newDefinitionError(raw, "consequent wildcard %q has no antecedent occurrence", n)
			}
		}
		consequents = append(consequents, t)
	}

	return &Rule{
		Name:        name,
		Raw:         raw,
		Body:        body,
		aliases:     wt.aliases,
		Antecedents: antecedents,
		Consequents: consequents,
	}, nil
}
