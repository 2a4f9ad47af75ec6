package main

import (
	"fmt"

	"github.com/fwojciec/enrzones/yaml"
)

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
	rows := [][]string{{"SECTION", "PARSED"}}
	for _, n := range deps.Config.SectionNumbers() {
		parsed := "no"
		if deps.Config.Sections[n] {
			parsed = "yes"
		}
		rows = append(rows, []string{n, parsed})
	}
	return writeColumns(deps.Stdout, rows)
}

// Run executes the defaults command.
func (c *DefaultsCmd) Run(deps *Dependencies) error {
	data, err := yaml.MarshalConfig(deps.Config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = deps.Stdout.Write(data)
	return err
}
