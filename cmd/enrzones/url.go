package main

import (
	"fmt"

	enrhttp "github.com/fwojciec/enrzones/http"
)

// Run executes the url command.
func (c *URLCmd) Run(deps *Dependencies) error {
	airac, err := cycle(deps, c.AIRAC)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, enrhttp.URLFor(airac, c.Page))
	return nil
}
