package formalsystems

// DerivationLine is one entry of a printed derivation: theorem th was
// produced by rule Producer from Parents (empty for an axiom), at
// generation Gen turns away from the target theorem Derive was asked
// about (the target itself is generation 0).
type DerivationLine struct {
	Gen      int
	Theorem  *Theorem
	Producer string
	Parents  []*Theorem
}

// Derive walks the Parents chain back from the theorem named target (looked
// up in registry) to the axioms that ultimately produced it, by breadth-
// first traversal, numbering each theorem by its distance from target
// (target itself is generation 0, its parents generation 1, and so on). The
// returned lines are in reverse generation order — axioms first, target
// last — matching the "read forward" genealogy printed by the CLI.
// A theorem reachable through more than one path is reported once, at the
// smallest generation it is reached by; Derive does not deduplicate
// ancestors beyond that (an axiom used twice over appears twice, as a
// parent of two different lines).
func Derive(target string, registry *TheoremSet) ([]DerivationLine, bool) {
	th, ok := registry.Get(target)
	if !ok {
		return nil, false
	}

	visited := make(map[string]bool)
	type queued struct {
		th  *Theorem
		gen int
	}
	queue := []queued{{th, 0}}
	visited[th.String()] = true

	var lines []DerivationLine
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		lines = append(lines, DerivationLine{
			Gen:      cur.gen,
			Theorem:  cur.th,
			Producer: cur.th.Producer,
			Parents:  cur.th.Parents,
		})

		for _, p := range cur.th.Parents {
			if visited[p.String()] {
				continue
			}
			visited[p.String()] = true
			queue = append(queue, queued{p, cur.gen + 1})
		}
	}

	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return lines, true
}
