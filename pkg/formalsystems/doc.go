// Package formalsystems enumerates theorems of a user-defined formal system
// in the style of Hofstadter's Gödel, Escher, Bach — a finite set of axiom
// schemas and production rules over strings with typed placeholders — and
// searches for derivations of target theorems from those axioms.
//
// The package is organized around four pieces that mirror how a formal
// system is actually worked with on paper:
//
//   - A pattern compiler ([CompileSchema], [CompileRule]) turns a raw schema
//     or rule string into a [Matcher], a [Template], and an [AliasMap]
//     recording which aliased occurrences belong to which wildcard name.
//   - A fair, lazy enumerator ([AxiomSchema.Enumerate]) walks the (possibly
//     infinite) set of ground theorems an axiom schema denotes.
//   - A rule engine ([Produce], [ApplyAll]) matches rule antecedents
//     against an accumulated corpus of [Theorem] values, unifies bindings
//     across antecedents, and instantiates consequents.
//   - Two search drivers ([RunStep], [RunBucket]) repeatedly invoke the
//     rule engine over growing corpora, and [Derive] walks a theorem's
//     parent links back to the axioms that produced it.
//
// Everything here is single-threaded and synchronous, with no goroutines.
// Schema enumeration is a pull stream that computes one theorem at a time.
// Matching and production are not lazy: [Matcher.Match] computes every
// binding before its iterator is returned, and [Produce] returns all of a
// turn's productions as one slice. Enumeration being lazy mirrors the
// system's own fairness requirements — a round-robin merge over several
// infinite axiom enumerators, for instance, only advances one step per
// source per round, so no schema can starve another by itself.
package formalsystems
