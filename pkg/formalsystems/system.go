package formalsystems

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	multierror "github.com/hashicorp/go-multierror"
)

// Definition is the raw, uncompiled shape of a formal system: the axiom
// schema strings and rule strings a definition document supplies, in
// declaration order. It is the one data-model type that crosses the YAML
// boundary — a loader decodes a document straight into a Definition and
// hands it to [Compile].
type Definition struct {
	Axioms []string `yaml:"axioms"`
	Rules  []string `yaml:"rules"`
}

// System is a fully compiled formal system: every axiom schema and rule a
// [Definition] declared, ready for a search driver.
type System struct {
	Schemas []*AxiomSchema
	Rules   []*Rule
}

// Compile compiles every schema and rule in def, in declaration order. It
// does not stop at the first malformed entry: every DefinitionError raised
// while compiling def is collected and returned together as a single
// *multierror.Error, so a malformed document reports all of its offending
// schemas and rules in one pass rather than one compiler invocation at a
// time.
func Compile(def Definition, logger hclog.Logger) (*System, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	var errs *multierror.Error
	sys := &System{}

	for i, raw := range def.Axioms {
		name := fmt.Sprintf("axiom%d", i)
		s, err := CompileSchema(name, raw)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		logger.Debug("compiled schema", "name", name, "wildcards", s.Dim())
		if hasAnySymbolWildcard(s) {
			logger.Debug("schema instantiates '.' as a literal repeated character", "name", name)
		}
		sys.Schemas = append(sys.Schemas, s)
	}

	for i, raw := range def.Rules {
		name := fmt.Sprintf("rule%d", i)
		r, err := CompileRule(name, raw)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		logger.Debug("compiled rule", "name", name, "arity", r.Arity())
		sys.Rules = append(sys.Rules, r)
	}

	if errs != nil {
		return nil, errs.ErrorOrNil()
	}
	return sys, nil
}

func hasAnySymbolWildcard(s *AxiomSchema) bool {
	for _, spec := range s.Wildcards {
		if spec.Base == anySymbol {
			return true
		}
	}
	return false
}
