package workbook

import (
	"fmt"
	"sort"

	"github.com/ukaji3/officegen-go/pkg/officegen"
)

var problems = map[string]func(*Book){
	"problem2": BuildProblem2,
	"problem4": BuildProblem4,
}

// Problems returns the known problem names, sorted.
func Problems() []string {
	names := make([]string, 0, len(problems))
	for name := range problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate reports ErrUnknownProblem for a name with no builder.
func Validate(problem string) error {
	if _, ok := problems[problem]; !ok {
		return fmt.Errorf("%w: %q (want one of %v)", officegen.ErrUnknownProblem, problem, Problems())
	}
	return nil
}

// Build lays out the named problem in a new workbook.
func Build(problem string) (*Book, error) {
	if err := Validate(problem); err != nil {
		return nil, err
	}
	build := problems[problem]

	b := NewBook()
	build(b)
	if err := b.Finish(); err != nil {
		b.Close()
		return nil, officegen.NewGenerationError(problem, "cells", err)
	}
	return b, nil
}

// Generate builds the named problem and saves it to path.
func Generate(problem, path string) error {
	b, err := Build(problem)
	if err != nil {
		return err
	}
	defer b.Close()

	if err := b.Save(path); err != nil {
		return officegen.NewGenerationError(problem, "save", err)
	}
	return nil
}
