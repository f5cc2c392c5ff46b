package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexprengere/FormalSystems/pkg/formalsystems"
)

// LoadDefinition reads a formal-system definition document from path: a
// YAML document with two ordered sequences of strings, "axioms" and
// "rules". A failure to read or find the file is returned as an
// *formalsystems.IOError, distinguishable from the *formalsystems.DefinitionError
// a malformed document's contents produce once compiled.
func LoadDefinition(path string) (formalsystems.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return formalsystems.Definition{}, &formalsystems.IOError{Path: path, Err: err}
	}

	var def formalsystems.Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return formalsystems.Definition{}, &formalsystems.IOError{Path: path, Err: err}
	}
	return def, nil
}
